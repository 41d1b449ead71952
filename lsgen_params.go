//go:build !wasm

package labelschema

import "github.com/tinywasm/fmt"

// ParamInfo is one @param line of a tag's JSDoc block.
type ParamInfo struct {
	Name        string   // e.g. "toName"
	Types       []string // e.g. ["string"] or ["single", "multiple"]
	Default     string   // e.g. "single"; empty when none
	Optional    bool     // bracketed, defaulted or typed with a trailing "="
	Description string
}

// jsTypes maps JSDoc primitive types onto attribute types. A type union
// made only of these keys is a primitive; anything else is a list of enum
// literals.
var jsTypes = map[string]AttrType{
	"string":   TypeString,
	"number":   TypeInt,
	"float":    TypeFloat,
	"boolean":  TypeBool,
	"array":    TypeString,
	"object":   TypeString,
	"function": TypeString,
	"null":     TypeString,
}

// Attr converts the parameter into its schema entry.
func (p ParamInfo) Attr() Attr {
	a := Attr{
		Name:        p.Name,
		Required:    !p.Optional,
		Description: p.Description,
	}

	primitive := true
	for _, t := range p.Types {
		if _, ok := jsTypes[t]; !ok {
			primitive = false
			break
		}
	}

	if !primitive {
		a.Type = TypeEnum
		a.Enum = append([]string(nil), p.Types...)
		a.Default = p.Default
		return a
	}

	a.Type = TypeString
	if len(p.Types) > 0 {
		a.Type = jsTypes[p.Types[0]]
		for _, t := range p.Types[1:] {
			if jsTypes[t] != a.Type {
				a.Type = TypeString
				break
			}
		}
	}

	a.Default = p.Default
	if a.Type == TypeBool && a.Default != "" && a.Default != "true" {
		a.Default = "false"
	}
	return a
}

// cleanDescription trims list markers, terminates the sentence and swaps
// double quotes for single ones so the text survives as a Go literal.
func cleanDescription(s string) string {
	s = fmt.Convert(s).TrimSpace().String()
	for fmt.HasPrefix(s, "-") || fmt.HasPrefix(s, " ") {
		s = s[1:]
	}
	for fmt.HasSuffix(s, "-") || fmt.HasSuffix(s, " ") {
		s = s[:len(s)-1]
	}
	if !fmt.HasSuffix(s, ".") {
		s += "."
	}
	return fmt.Convert(s).Replace(`"`, "'").String()
}

// splitTypes splits a JSDoc type expression like "single|multiple=".
// The second result reports the trailing "=" optional marker.
func splitTypes(expr string) ([]string, bool) {
	optional := fmt.HasSuffix(expr, "=")
	var out []string
	for _, t := range fmt.Convert(expr).Split("|") {
		t = fmt.Convert(t).Replace("=", "").TrimSpace().String()
		if t != "" {
			out = append(out, t)
		}
	}
	return out, optional
}

// unquote strips one level of matching quotes from a default value.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// goFieldName exports an attribute name as a struct field name.
func goFieldName(name string) string {
	if fmt.Contains(name, "_") {
		name = Camel(name)
	}
	if name == "" {
		return ""
	}
	return fmt.Convert(name[:1]).ToUpper().String() + name[1:]
}
