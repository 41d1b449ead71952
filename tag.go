package labelschema

import (
	"sort"
	"sync"
)

// Tag represents a Label Studio labeling-config element.
// Generated tags implement this interface; consumers may add their own.
type Tag interface {
	TagName() string
	Schema() []Attr
	Values() []any
	Pointers() []any
}

// Category groups tags by the role they play in a labeling config.
type Category int

const (
	// CategoryObject tags display task data (Audio, Image, Text...).
	CategoryObject Category = iota
	// CategoryControl tags annotate objects (Choices, Labels, TextArea...).
	CategoryControl
	// CategoryVisual tags only shape the layout (View, Header, Style...).
	CategoryVisual
)

func (c Category) String() string {
	switch c {
	case CategoryObject:
		return "object"
	case CategoryControl:
		return "control"
	}
	return "visual"
}

// CategoryFromString is the inverse of Category.String.
func CategoryFromString(s string) (Category, bool) {
	switch s {
	case "object":
		return CategoryObject, true
	case "control":
		return CategoryControl, true
	case "visual":
		return CategoryVisual, true
	}
	return CategoryVisual, false
}

// TagInfo is a registry entry describing a known tag.
type TagInfo struct {
	Name        string
	Category    Category
	Title       string
	Description string
	New         func() Tag
}

var (
	registryMu sync.RWMutex
	registry   = map[string]TagInfo{}
)

// Register adds tags to the registry used by Parse and Lookup.
// A later registration with the same name replaces the earlier one.
func Register(infos ...TagInfo) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, info := range infos {
		registry[info.Name] = info
	}
}

// Lookup returns the registered tag with the given element name.
func Lookup(name string) (TagInfo, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	info, ok := registry[name]
	return info, ok
}

// Tags returns every registered tag sorted by name.
func Tags() []TagInfo {
	registryMu.RLock()
	out := make([]TagInfo, 0, len(registry))
	for _, info := range registry {
		out = append(out, info)
	}
	registryMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CategoryOf returns the registered category of t.
// Unregistered tags are reported as visual.
func CategoryOf(t Tag) Category {
	if t == nil {
		return CategoryVisual
	}
	if info, ok := Lookup(t.TagName()); ok {
		return info.Category
	}
	return CategoryVisual
}

// lookupValue returns the value of the named attribute and whether the
// schema declares it.
func lookupValue(t Tag, name string) (any, bool) {
	if t == nil {
		return nil, false
	}
	schema := t.Schema()
	values := t.Values()
	for i, a := range schema {
		if a.Name == name && i < len(values) {
			return values[i], true
		}
	}
	return nil, false
}
