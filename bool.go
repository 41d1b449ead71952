package labelschema

// Bool is a tri-state boolean attribute value. The zero value is unset,
// which lets a tag distinguish "not given" from an explicit false.
type Bool int8

const (
	Unset Bool = iota
	True
	False
)

// BoolOf converts a Go bool into a set Bool.
func BoolOf(v bool) Bool {
	if v {
		return True
	}
	return False
}

// IsSet reports whether b carries a value.
func (b Bool) IsSet() bool { return b == True || b == False }

func (b Bool) String() string {
	switch b {
	case True:
		return "true"
	case False:
		return "false"
	}
	return ""
}
