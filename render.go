package labelschema

import "github.com/tinywasm/fmt"

// Camel converts a snake_case name to camelCase. The first word is
// lowercased and later words are capitalised: "to_name" -> "toName".
func Camel(s string) string {
	return fmt.Convert(s).Replace("_", " ").CamelLow().String()
}

// formatValue renders v as attribute text. set is false for the zero value
// of strings and numbers and for an unset Bool.
func formatValue(v any) (text string, set bool, err error) {
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, x != "", nil
	case int:
		return fmt.Convert(x).String(), x != 0, nil
	case int64:
		return fmt.Convert(x).String(), x != 0, nil
	case float64:
		return fmt.Convert(x).String(), x != 0, nil
	case float32:
		return fmt.Convert(x).String(), x != 0, nil
	case Bool:
		return x.String(), x.IsSet(), nil
	case bool:
		return fmt.Convert(x).String(), true, nil
	}
	return "", false, fmt.Err(ErrValidation, "unsupported attribute value type")
}

// escapeAttr escapes s for a double-quoted attribute value.
func escapeAttr(s string) string {
	return fmt.Convert(s).EscapeAttr()
}

// escapeText escapes character data. Only & < > are replaced so line
// breaks and quotes survive.
func escapeText(s string) string {
	return fmt.Convert(s).Replace("&", "&amp;").Replace("<", "&lt;").Replace(">", "&gt;").String()
}

// Attributes converts t into a list of `key="value"` strings in schema order.
// Unset values fall back to the schema default; with noDefaults, defaults
// are never emitted and set values equal to their default are dropped.
func Attributes(t Tag, noDefaults bool) ([]string, error) {
	if err := validateShape(t); err != nil {
		return nil, err
	}
	schema := t.Schema()
	values := t.Values()

	res := make([]string, 0, len(schema))
	for i, a := range schema {
		text, set, err := formatValue(values[i])
		if err != nil {
			return nil, fmt.Err(err, t.TagName(), a.Name)
		}
		switch {
		case !set && (noDefaults || a.Default == ""):
			continue
		case !set:
			text = a.Default
		case noDefaults && text == a.Default:
			continue
		}
		name := a.Name
		if fmt.Contains(name, "_") {
			name = Camel(name)
		}
		res = append(res, name+`="`+escapeAttr(text)+`"`)
	}
	return res, nil
}

// XML renders t as a single self-closing element.
func XML(t Tag, noDefaults bool) (string, error) {
	fields, err := Attributes(t, noDefaults)
	if err != nil {
		return "", err
	}
	return openTag(t.TagName(), fields) + " />", nil
}

// String is a convenience wrapper around XML that swallows errors.
func String(t Tag) string {
	s, err := XML(t, false)
	if err != nil {
		return ""
	}
	return s
}

func openTag(name string, fields []string) string {
	if len(fields) == 0 {
		return "<" + name
	}
	return "<" + name + " " + fmt.Convert(fields).Join(" ").String()
}
