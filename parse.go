package labelschema

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/tinywasm/fmt"
)

// Parse decodes a labeling config into a Node tree. Every element must be
// a registered tag; attributes are matched case-insensitively against the
// tag schema and assigned through Pointers().
func Parse(src string) (*Node, error) {
	return ParseReader(strings.NewReader(src))
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Err(ErrParse, err.Error())
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n, err := newNode(t)
			if err != nil {
				return nil, err
			}
			if len(stack) > 0 {
				stack[len(stack)-1].Append(n)
			} else if root != nil {
				return nil, fmt.Err(ErrParse, "junk after document element")
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = CleanLines(n.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].Text += string(t)
		}
	}

	if root == nil {
		return nil, fmt.Err(ErrParse, "no element found")
	}
	return root, nil
}

func newNode(el xml.StartElement) (*Node, error) {
	info, ok := Lookup(el.Name.Local)
	if !ok {
		return nil, fmt.Err(ErrUnknownTag, el.Name.Local)
	}
	t := info.New()
	schema := t.Schema()
	ptrs := t.Pointers()
	if len(schema) != len(ptrs) {
		return nil, fmt.Err(ErrValidation, t.TagName(), "schema and pointers length mismatch")
	}

	for _, a := range el.Attr {
		idx := attrIndex(schema, a.Name.Local)
		if idx < 0 {
			return nil, fmt.Err(ErrUnknownAttr, t.TagName(), a.Name.Local)
		}
		if err := assign(ptrs[idx], a.Value); err != nil {
			return nil, fmt.Err(err, t.TagName(), a.Name.Local)
		}
	}
	return &Node{Tag: t}, nil
}

func attrIndex(schema []Attr, name string) int {
	name = fmt.Convert(name).ToLower().String()
	for i, a := range schema {
		if fmt.Convert(a.Name).ToLower().String() == name || fmt.Convert(Camel(a.Name)).ToLower().String() == name {
			return i
		}
	}
	return -1
}

// assign converts raw attribute text into the value behind ptr.
func assign(ptr any, raw string) error {
	text := fmt.Convert(raw).TrimSpace().String()
	switch p := ptr.(type) {
	case *string:
		*p = raw
	case *int:
		v, err := fmt.Convert(text).Int()
		if err != nil {
			return fmt.Err(ErrValidation, "invalid integer", raw)
		}
		*p = v
	case *int64:
		v, err := fmt.Convert(text).Int64()
		if err != nil {
			return fmt.Err(ErrValidation, "invalid integer", raw)
		}
		*p = v
	case *float64:
		v, err := fmt.Convert(text).Float64()
		if err != nil {
			return fmt.Err(ErrValidation, "invalid number", raw)
		}
		*p = v
	case *Bool:
		switch fmt.Convert(text).ToLower().String() {
		case "true":
			*p = True
		case "false":
			*p = False
		case "":
			*p = Unset
		default:
			return fmt.Err(ErrValidation, "invalid boolean", raw)
		}
	case *bool:
		switch fmt.Convert(text).ToLower().String() {
		case "true":
			*p = true
		case "false":
			*p = false
		default:
			return fmt.Err(ErrValidation, "invalid boolean", raw)
		}
	default:
		return fmt.Err(ErrValidation, "unsupported attribute pointer")
	}
	return nil
}
