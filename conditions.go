package labelschema

import "github.com/tinywasm/fmt"

// Condition represents a filter on one attribute of a tag.
// It is a sealed value type constructed via helper functions.
type Condition struct {
	attr     string
	operator string
	value    any
	logic    string
}

func (c Condition) Attr() string     { return c.attr }
func (c Condition) Operator() string { return c.operator }
func (c Condition) Value() any       { return c.value }
func (c Condition) Logic() string    { return c.logic }

// Eq creates a condition for checking equality.
func Eq(attr string, value any) Condition {
	return Condition{attr: attr, operator: "=", value: value, logic: "AND"}
}

// Neq creates a condition for checking inequality.
func Neq(attr string, value any) Condition {
	return Condition{attr: attr, operator: "!=", value: value, logic: "AND"}
}

// Gt creates a condition for checking if a value is greater than another.
func Gt(attr string, value any) Condition {
	return Condition{attr: attr, operator: ">", value: value, logic: "AND"}
}

// Gte creates a condition for checking if a value is greater than or equal to another.
func Gte(attr string, value any) Condition {
	return Condition{attr: attr, operator: ">=", value: value, logic: "AND"}
}

// Lt creates a condition for checking if a value is less than another.
func Lt(attr string, value any) Condition {
	return Condition{attr: attr, operator: "<", value: value, logic: "AND"}
}

// Lte creates a condition for checking if a value is less than or equal to another.
func Lte(attr string, value any) Condition {
	return Condition{attr: attr, operator: "<=", value: value, logic: "AND"}
}

// Like creates a condition matching a pattern where % matches any run of
// characters and _ matches exactly one.
func Like(attr string, pattern string) Condition {
	return Condition{attr: attr, operator: "LIKE", value: pattern, logic: "AND"}
}

// Or creates a condition with OR logic.
func Or(c Condition) Condition {
	c.logic = "OR"
	return c
}

// effective returns the attribute text of t as rendered: the set value,
// else the schema default. ok is false when t has no such attribute.
func effective(t Tag, name string) (string, bool) {
	schema := t.Schema()
	values := t.Values()
	for i, a := range schema {
		if a.Name != name || i >= len(values) {
			continue
		}
		text, set, err := formatValue(values[i])
		if err != nil {
			return "", false
		}
		if !set {
			text = a.Default
		}
		return text, true
	}
	return "", false
}

func (c Condition) match(t Tag) bool {
	got, ok := effective(t, c.attr)
	if !ok {
		return c.operator == "!="
	}
	want, _, err := formatValue(c.value)
	if err != nil {
		return false
	}

	switch c.operator {
	case "=":
		return got == want
	case "!=":
		return got != want
	case "LIKE":
		return like(got, want)
	}

	cmp := compare(got, want)
	switch c.operator {
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	}
	return false
}

// compare orders numerically when both sides parse as numbers and
// lexically otherwise.
func compare(a, b string) int {
	fa, errA := fmt.Convert(a).Float64()
	fb, errB := fmt.Convert(b).Float64()
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// like matches s against pattern rune by rune.
func like(s, pattern string) bool {
	return likeRunes([]rune(s), []rune(pattern))
}

func likeRunes(s, p []rune) bool {
	if len(p) == 0 {
		return len(s) == 0
	}
	switch p[0] {
	case '%':
		for i := 0; i <= len(s); i++ {
			if likeRunes(s[i:], p[1:]) {
				return true
			}
		}
		return false
	case '_':
		return len(s) > 0 && likeRunes(s[1:], p[1:])
	}
	return len(s) > 0 && s[0] == p[0] && likeRunes(s[1:], p[1:])
}

// matchAll folds conds left to right, joining each with its own logic.
func matchAll(t Tag, conds []Condition) bool {
	if len(conds) == 0 {
		return true
	}
	ok := conds[0].match(t)
	for _, c := range conds[1:] {
		if c.logic == "OR" {
			ok = ok || c.match(t)
		} else {
			ok = ok && c.match(t)
		}
	}
	return ok
}
