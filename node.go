package labelschema

import "github.com/tinywasm/fmt"

// Node is an element of a labeling config tree. Text carries character
// data such as the CSS body of a Style tag.
type Node struct {
	Tag      Tag
	Text     string
	Children []*Node
}

// El creates a node for t with the given children.
func El(t Tag, children ...*Node) *Node {
	return &Node{Tag: t, Children: children}
}

// Append adds children to n and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// WithText sets the character data of n and returns n for chaining.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.Children) }

// Find returns the first descendant (or n itself) whose "name" attribute
// equals name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if v, ok := lookupValue(c.Tag, "name"); ok {
			if s, _ := v.(string); s == name {
				found = c
				return false
			}
		}
		return true
	})
	return found
}

// Walk visits n and its descendants depth first. Returning false from fn
// stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Render serialises the tree on a single line. Leaf nodes without text
// self-close exactly like XML().
func Render(n *Node, noDefaults bool) (string, error) {
	buf := fmt.Convert()
	if err := render(buf, n, noDefaults); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Pretty renders the tree and indents it with Format.
func Pretty(n *Node, noDefaults bool, indent int) (string, error) {
	s, err := Render(n, noDefaults)
	if err != nil {
		return "", err
	}
	return Format(s, indent)
}

func render(b *fmt.Conv, n *Node, noDefaults bool) error {
	if n == nil {
		return ErrEmptyTag
	}
	if len(n.Children) == 0 && n.Text == "" {
		s, err := XML(n.Tag, noDefaults)
		if err != nil {
			return err
		}
		b.Write(s)
		return nil
	}

	fields, err := Attributes(n.Tag, noDefaults)
	if err != nil {
		return err
	}
	b.Write(openTag(n.Tag.TagName(), fields))
	b.Write(">")
	if n.Text != "" {
		b.Write(escapeText(n.Text))
	}
	for _, c := range n.Children {
		if err := render(b, c, noDefaults); err != nil {
			return err
		}
	}
	b.Write("</" + n.Tag.TagName() + ">")
	return nil
}
