package labelschema

import (
	"sort"

	"github.com/tinywasm/fmt"
)

// QB represents a query builder over a config tree.
// Consumers hold a *QB reference in variables for incremental building.
type QB struct {
	root    *Node
	tagName string
	conds   []Condition
	orderBy []Order
	limit   int
	offset  int
}

// Query creates a new QB searching n and its descendants for tagName.
// An empty tagName matches every element.
func (n *Node) Query(tagName string) *QB {
	return &QB{root: n, tagName: tagName}
}

// Where adds conditions to the query.
func (qb *QB) Where(conds ...Condition) *QB {
	qb.conds = append(qb.conds, conds...)
	return qb
}

// Limit sets the limit for the query.
func (qb *QB) Limit(limit int) *QB {
	qb.limit = limit
	return qb
}

// Offset sets the offset for the query.
func (qb *QB) Offset(offset int) *QB {
	qb.offset = offset
	return qb
}

// OrderBy adds an order clause on an attribute. dir is "ASC" or "DESC".
func (qb *QB) OrderBy(attr, dir string) *QB {
	qb.orderBy = append(qb.orderBy, Order{attr: attr, dir: dir})
	return qb
}

// Build returns the query described by qb.
func (qb *QB) Build() Query {
	return Query{
		TagName:    qb.tagName,
		Conditions: qb.conds,
		OrderBy:    qb.orderBy,
		Limit:      qb.limit,
		Offset:     qb.offset,
	}
}

// ReadOne returns the first matching node, or ErrNotFound.
func (qb *QB) ReadOne() (*Node, error) {
	q := qb.Build()
	q.Limit = 1 // Force limit 1
	nodes := run(qb.root, q)
	if len(nodes) == 0 {
		return nil, ErrNotFound
	}
	return nodes[0], nil
}

// ReadAll returns every matching node in document order, unless ordered.
func (qb *QB) ReadAll() []*Node {
	return run(qb.root, qb.Build())
}

func run(root *Node, q Query) []*Node {
	var out []*Node
	if root == nil {
		return out
	}
	root.Walk(func(n *Node) bool {
		if n.Tag == nil {
			return true
		}
		if q.TagName != "" && n.Tag.TagName() != q.TagName {
			return true
		}
		if matchAll(n.Tag, q.Conditions) {
			out = append(out, n)
		}
		return true
	})

	if len(q.OrderBy) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, o := range q.OrderBy {
				a, _ := effective(out[i].Tag, o.attr)
				b, _ := effective(out[j].Tag, o.attr)
				cmp := compare(a, b)
				if cmp == 0 {
					continue
				}
				if fmt.Convert(o.dir).ToUpper().String() == "DESC" {
					return cmp > 0
				}
				return cmp < 0
			}
			return false
		})
	}

	if q.Offset > 0 {
		if q.Offset >= len(out) {
			return nil
		}
		out = out[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out
}
