package labelschema

import "github.com/tinywasm/fmt"

func validateShape(t Tag) error {
	if t == nil || t.TagName() == "" {
		return ErrEmptyTag
	}
	if len(t.Schema()) != len(t.Values()) {
		return fmt.Err(ErrValidation, t.TagName(), "schema and values length mismatch")
	}
	return nil
}

// ValidateTag checks a single tag: required attributes are set and enum
// attributes hold one of their literals.
func ValidateTag(t Tag) error {
	if err := validateShape(t); err != nil {
		return err
	}
	values := t.Values()
	for i, a := range t.Schema() {
		text, set, err := formatValue(values[i])
		if err != nil {
			return fmt.Err(err, t.TagName(), a.Name)
		}
		if !set {
			if a.Required {
				return fmt.Err(ErrRequired, t.TagName(), a.Name)
			}
			continue
		}
		if !a.allows(text) {
			return fmt.Err(ErrEnumValue, t.TagName(), a.Name, text)
		}
	}
	return nil
}

// Validate checks every tag in the tree, then the cross references:
// object and control names are unique, and each control's toName lists
// only object names.
func Validate(root *Node) error {
	if root == nil {
		return ErrEmptyTag
	}
	var err error
	objects := map[string]bool{}
	names := map[string]bool{}
	var controls []*Node

	root.Walk(func(n *Node) bool {
		if err = ValidateTag(n.Tag); err != nil {
			return false
		}
		cat := CategoryOf(n.Tag)
		if cat == CategoryVisual {
			return true
		}
		name := stringValue(n.Tag, "name")
		if name != "" {
			if names[name] {
				err = fmt.Err(ErrDuplicateName, n.Tag.TagName(), name)
				return false
			}
			names[name] = true
		}
		switch cat {
		case CategoryObject:
			if name != "" {
				objects[name] = true
			}
		case CategoryControl:
			controls = append(controls, n)
		}
		return true
	})
	if err != nil {
		return err
	}

	for _, c := range controls {
		target := stringValue(c.Tag, "toName")
		if target == "" {
			continue
		}
		for _, ref := range fmt.Convert(target).Split(",") {
			ref = fmt.Convert(ref).TrimSpace().String()
			if ref != "" && !objects[ref] {
				return fmt.Err(ErrUnknownTarget, c.Tag.TagName(), ref)
			}
		}
	}
	return nil
}

func stringValue(t Tag, name string) string {
	v, ok := lookupValue(t, name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
