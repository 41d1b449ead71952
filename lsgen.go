//go:build !wasm

package labelschema

import (
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/tinywasm/fmt"
	"golang.org/x/sync/errgroup"
)

// TagDoc is the documentation block of one Label Studio tag source file.
type TagDoc struct {
	Name        string
	Title       string
	Description string
	Category    Category
	Params      []ParamInfo
	SourceFile  string
}

var (
	tagNameRgx   = regexp.MustCompile(`@name(.*)`)
	metaTitleRgx = regexp.MustCompile(`@meta_title(.*)`)
	metaDescRgx  = regexp.MustCompile(`@meta_description(.*)`)
	// @param {type|type=} [name=default] - description
	paramRgx = regexp.MustCompile(`@param\s\{([-a-zA-Z0-9|]+=?)\}\s(\[?)(\w+)(=("[^"]*"|'[^']*'|[^\]\s]+))?\]?(.*)\n`)
	identRgx = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

var tagSourceExt = map[string]bool{".js": true, ".jsx": true, ".ts": true, ".tsx": true}

// ParseDoc extracts the tag documentation from source text. ok is false
// when the text documents neither a tag name nor any parameter.
func ParseDoc(text, fallbackName string) (doc TagDoc, ok bool) {
	text = fmt.Convert(text).Replace("\r\n", "\n").String()

	doc.Name = fallbackName
	if m := tagNameRgx.FindStringSubmatch(text); m != nil {
		if name := fmt.Convert(m[1]).TrimSpace().String(); name != "" {
			doc.Name = name
			ok = true
		}
	}
	doc.Name = identRgx.ReplaceAllString(doc.Name, "")

	if m := metaTitleRgx.FindStringSubmatch(text); m != nil {
		doc.Title = fmt.Convert(m[1]).TrimSpace().String()
		if doc.Title != "" && !fmt.HasSuffix(doc.Title, ".") {
			doc.Title += "."
		}
	}
	if m := metaDescRgx.FindStringSubmatch(text); m != nil {
		doc.Description = fmt.Convert(m[1]).TrimSpace().String()
	}

	seen := map[string]bool{}
	for _, m := range paramRgx.FindAllStringSubmatch(text, -1) {
		types, typeOpt := splitTypes(m[1])
		name := m[3]
		if seen[name] {
			continue
		}
		seen[name] = true

		p := ParamInfo{
			Name:        name,
			Types:       types,
			Default:     unquote(fmt.Convert(m[5]).TrimSpace().String()),
			Optional:    m[2] == "[" || m[4] != "" || typeOpt,
			Description: cleanDescription(m[6]),
		}
		doc.Params = append(doc.Params, p)
	}

	return doc, ok || len(doc.Params) > 0
}

// ParseFile reads one tag source file. The category is the first directory
// below the tags dir (object, control or visual).
func (g *Gen) ParseFile(path string) (TagDoc, bool, error) {
	if path == "" {
		return TagDoc{}, false, fmt.Err("tag source path cannot be empty")
	}
	rel, err := filepath.Rel(g.tagsDir, path)
	if err != nil {
		return TagDoc{}, false, fmt.Err(err, "Failed to resolve tag path")
	}
	parts := fmt.Convert(filepath.ToSlash(rel)).Split("/")
	cat, known := CategoryFromString(parts[0])
	if len(parts) < 2 || !known {
		g.log(fmt.Sprintf("Warning: %s is outside object/control/visual; skipping", path))
		return TagDoc{}, false, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return TagDoc{}, false, fmt.Err(err, "Failed to read tag source")
	}

	stem := fmt.Convert(filepath.Base(path)).TrimSuffix(filepath.Ext(path)).String()
	doc, ok := ParseDoc(string(src), stem)
	if !ok {
		return TagDoc{}, false, nil
	}
	doc.Category = cat
	doc.SourceFile = path
	return doc, true, nil
}

// collectTags walks tagsDir and returns every documented tag keyed by name.
func (g *Gen) collectTags() (map[string]TagDoc, error) {
	all := make(map[string]TagDoc)

	err := filepath.WalkDir(g.tagsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != g.tagsDir && (fmt.Contains(name, "__") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if fmt.Contains(name, "__") || !tagSourceExt[filepath.Ext(name)] {
			return nil
		}

		doc, ok, err := g.ParseFile(path)
		if err != nil {
			g.log(fmt.Sprintf("Skipping %s: %v", path, err))
			return nil
		}
		if !ok {
			return nil
		}
		if prev, dup := all[doc.Name]; dup {
			g.log(fmt.Sprintf("Warning: tag %s documented in %s and %s; keeping the latter", doc.Name, prev.SourceFile, path))
		}
		all[doc.Name] = doc
		return nil
	})

	return all, err
}

// GenerateForFile writes the tag structs, their Tag methods and the
// registry entries for docs into outFile. All docs must share a category.
func (g *Gen) GenerateForFile(docs []TagDoc, outFile string) error {
	if len(docs) == 0 {
		return nil
	}
	q := ""
	if g.pkg != "labelschema" {
		q = "labelschema."
	}

	buf := fmt.Convert()
	buf.Write("// Code generated by lsgen; DO NOT EDIT.\n")
	buf.Write("// NOTE: Schema(), Values() and Pointers() must always be in the same attribute order.\n\n")
	buf.Write(fmt.Sprintf("package %s\n\n", g.pkg))
	if q != "" {
		buf.Write("import \"github.com/tinywasm/labelschema\"\n\n")
	}

	for _, doc := range docs {
		attrs := make([]Attr, len(doc.Params))
		fields := make([]string, len(doc.Params))
		for i, p := range doc.Params {
			attrs[i] = p.Attr()
			fields[i] = goFieldName(p.Name)
		}

		buf.Write(fmt.Sprintf("// %s - %s\n", doc.Name, doc.Title))
		if doc.Description != "" {
			buf.Write("//\n")
			buf.Write(fmt.Sprintf("// %s\n", doc.Description))
		}
		if len(attrs) == 0 {
			buf.Write(fmt.Sprintf("type %s struct{}\n\n", doc.Name))
		} else {
			buf.Write(fmt.Sprintf("type %s struct {\n", doc.Name))
			for i, a := range attrs {
				buf.Write(fmt.Sprintf("\t%s %s\n", fields[i], goType(a.Type, q)))
			}
			buf.Write("}\n\n")
		}

		buf.Write(fmt.Sprintf("func (t *%s) TagName() string { return %s }\n\n", doc.Name, quote(doc.Name)))

		buf.Write(fmt.Sprintf("func (t *%s) Schema() []%sAttr {\n", doc.Name, q))
		if len(attrs) == 0 {
			buf.Write(fmt.Sprintf("\treturn []%sAttr{}\n", q))
		} else {
			buf.Write(fmt.Sprintf("\treturn []%sAttr{\n", q))
			for _, a := range attrs {
				buf.Write("\t\t" + attrLiteral(a, q) + ",\n")
			}
			buf.Write("\t}\n")
		}
		buf.Write("}\n\n")

		for _, m := range []struct{ name, prefix string }{{"Values", ""}, {"Pointers", "&"}} {
			buf.Write(fmt.Sprintf("func (t *%s) %s() []any {\n", doc.Name, m.name))
			if len(fields) == 0 {
				buf.Write("\treturn []any{}\n")
			} else {
				buf.Write("\treturn []any{\n")
				for _, f := range fields {
					buf.Write(fmt.Sprintf("\t\t%st.%s,\n", m.prefix, f))
				}
				buf.Write("\t}\n")
			}
			buf.Write("}\n\n")
		}
	}

	cat := docs[0].Category.String()
	catConst := q + "Category" + goFieldName(cat)
	buf.Write(fmt.Sprintf("var %sTags = []%sTagInfo{\n", cat, q))
	for _, doc := range docs {
		buf.Write(fmt.Sprintf("\t{Name: %s, Category: %s, Title: %s, Description: %s, New: func() %sTag { return &%s{} }},\n",
			quote(doc.Name), catConst, quote(doc.Title), quote(doc.Description), q, doc.Name))
	}
	buf.Write("}\n\n")
	buf.Write(fmt.Sprintf("func init() { %sRegister(%sTags...) }\n", q, cat))

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Err(err, "generated source does not compile")
	}
	return os.WriteFile(outFile, out, 0644)
}

func goType(t AttrType, q string) string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float64"
	case TypeBool:
		return q + "Bool"
	}
	return "string"
}

func quote(s string) string {
	return fmt.Convert(s).Quote().String()
}

func typeConst(t AttrType, q string) string {
	switch t {
	case TypeInt:
		return q + "TypeInt"
	case TypeFloat:
		return q + "TypeFloat"
	case TypeBool:
		return q + "TypeBool"
	case TypeEnum:
		return q + "TypeEnum"
	}
	return q + "TypeString"
}

func attrLiteral(a Attr, q string) string {
	s := "{Name: " + quote(a.Name) + ", Type: " + typeConst(a.Type, q)
	if a.Default != "" {
		s += ", Default: " + quote(a.Default)
	}
	if a.Required {
		s += ", Required: true"
	}
	if len(a.Enum) > 0 {
		quoted := make([]string, len(a.Enum))
		for i, e := range a.Enum {
			quoted[i] = quote(e)
		}
		s += ", Enum: []string{" + fmt.Convert(quoted).Join(", ").String() + "}"
	}
	return s + ", Description: " + quote(a.Description) + "}"
}

// Run is the entry point for the CLI tool. It writes one file per
// category: object_ls.go, control_ls.go and visual_ls.go.
func (g *Gen) Run() error {
	all, err := g.collectTags()
	if err != nil {
		return fmt.Err(err, "error walking directory")
	}
	if len(all) == 0 {
		return fmt.Err("no tags found")
	}

	byCat := make(map[Category][]TagDoc)
	for _, doc := range all {
		byCat[doc.Category] = append(byCat[doc.Category], doc)
	}

	if err := os.MkdirAll(g.outDir, 0755); err != nil {
		return fmt.Err(err, "Failed to create output dir")
	}
	cats := []Category{CategoryObject, CategoryControl, CategoryVisual}
	outFiles := make([]string, len(cats))

	var eg errgroup.Group
	for i, cat := range cats {
		docs := byCat[cat]
		sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
		outFiles[i] = filepath.Join(g.outDir, cat.String()+"_ls.go")
		outFile := outFiles[i]
		eg.Go(func() error {
			if err := g.GenerateForFile(docs, outFile); err != nil {
				return fmt.Err(err, "Failed to write", outFile)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	// logged after Wait so the sink is never called concurrently
	for i, cat := range cats {
		if n := len(byCat[cat]); n > 0 {
			g.log(fmt.Sprintf("wrote %s (%s tags)", outFiles[i], fmt.Convert(n).String()))
		}
	}
	return nil
}
