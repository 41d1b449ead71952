package labelschema

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/tinywasm/fmt"
)

// CleanLines strips every line and drops the empty ones.
func CleanLines(s string) string {
	var out []string
	for _, line := range fmt.Convert(s).Split("\n") {
		if line = fmt.Convert(line).TrimSpace().String(); line != "" {
			out = append(out, line)
		}
	}
	return fmt.Convert(out).Join("\n").String()
}

type element struct {
	name     string
	attrs    []xml.Attr
	text     string
	comment  bool
	children []*element
}

// Format re-indents an XML document using indent spaces per level
// (4 when indent <= 0). Empty elements self-close and multi-line text
// keeps one line per source line.
func Format(src string, indent int) (string, error) {
	if indent <= 0 {
		indent = 4
	}
	doc, err := decodeTree(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	pad := fmt.Convert(" ").Repeat(indent).String()
	buf := fmt.Convert()
	for _, el := range doc {
		writeElement(buf, el, pad, 0)
	}
	return fmt.Convert(buf.String()).TrimSuffix("\n").String(), nil
}

// decodeTree returns the top-level nodes of the document: the root
// element and any comments around it.
func decodeTree(r io.Reader) ([]*element, error) {
	dec := xml.NewDecoder(r)
	var doc []*element
	var root *element
	var stack []*element

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
			if err := checkLocal(t); err != nil {
				return nil, err
			}
			el := &element{name: t.Name.Local, attrs: t.Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			} else if root != nil {
				return nil, fmt.Err(ErrParse, "junk after document element")
			} else {
				root = el
				doc = append(doc, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			el := stack[len(stack)-1]
			el.text = CleanLines(el.text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		case xml.Comment:
			c := &element{text: string(t), comment: true}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, c)
			} else {
				doc = append(doc, c)
			}
		}
	}

	if root == nil {
		return nil, fmt.Err(ErrParse, "no element found")
	}
	return doc, nil
}

// checkLocal rejects namespaced names. The decoder replaces prefixes with
// namespace URLs, which cannot be written back as names.
func checkLocal(t xml.StartElement) error {
	if t.Name.Space != "" {
		return fmt.Err(ErrParse, "namespaced element not supported", t.Name.Local)
	}
	for _, a := range t.Attr {
		if a.Name.Space != "" || a.Name.Local == "xmlns" {
			return fmt.Err(ErrParse, "namespaced attribute not supported", a.Name.Local)
		}
	}
	return nil
}

func writeElement(b *fmt.Conv, el *element, pad string, depth int) {
	prefix := fmt.Convert(pad).Repeat(depth).String()
	if el.comment {
		b.Write(prefix + "<!--" + el.text + "-->\n")
		return
	}

	b.Write(prefix + "<" + el.name)
	for _, a := range el.attrs {
		b.Write(" " + a.Name.Local + `="` + escapeAttr(a.Value) + `"`)
	}

	var lines []string
	if el.text != "" {
		lines = fmt.Convert(el.text).Split("\n")
	}

	switch {
	case len(el.children) == 0 && len(lines) == 0:
		b.Write("/>\n")
	case len(el.children) == 0 && len(lines) == 1:
		b.Write(">" + escapeText(lines[0]) + "</" + el.name + ">\n")
	default:
		b.Write(">\n")
		for _, line := range lines {
			b.Write(prefix + pad + escapeText(line) + "\n")
		}
		for _, c := range el.children {
			writeElement(b, c, pad, depth+1)
		}
		b.Write(prefix + "</" + el.name + ">\n")
	}
}
