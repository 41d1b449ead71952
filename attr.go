package labelschema

// AttrType represents the abstract value type of a tag attribute.
type AttrType int

const (
	TypeString AttrType = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeEnum
)

func (t AttrType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeEnum:
		return "enum"
	}
	return "string"
}

// Attr describes a single XML attribute in a tag's schema.
// Schema() and Values() MUST always be in the same attribute order.
type Attr struct {
	Name        string
	Type        AttrType
	Default     string   // textual default; empty = no default
	Required    bool
	Enum        []string // allowed values when Type == TypeEnum
	Description string
}

// allows reports whether v is an accepted value for an enum attribute.
// Non-enum attributes accept anything.
func (a Attr) allows(v string) bool {
	if a.Type != TypeEnum || len(a.Enum) == 0 {
		return true
	}
	for _, e := range a.Enum {
		if e == v {
			return true
		}
	}
	return false
}
