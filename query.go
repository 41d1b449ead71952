package labelschema

// Order represents a sort order for a query.
// It is a sealed value type constructed via QB.OrderBy().
type Order struct {
	attr string
	dir  string
}

func (o Order) Attr() string { return o.attr }
func (o Order) Dir() string  { return o.dir }

// Query describes a search over a config tree. TagName "" matches every
// element.
type Query struct {
	TagName    string
	Conditions []Condition
	OrderBy    []Order
	Limit      int
	Offset     int
}
