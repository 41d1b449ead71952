//go:build !wasm

package labelschema_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ls "github.com/tinywasm/labelschema"
)

func TestParseDoc(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "tags", "object", "Image.js"))
	require.NoError(t, err)

	doc, ok := ls.ParseDoc(string(src), "fallback")
	require.True(t, ok)
	assert.Equal(t, "Image", doc.Name)
	assert.Equal(t, "Image Tags for Images.", doc.Title)
	assert.Equal(t, "Customize Label Studio with the Image tag to annotate images.", doc.Description)
	require.Len(t, doc.Params, 7)

	byName := map[string]ls.ParamInfo{}
	for _, p := range doc.Params {
		byName[p.Name] = p
	}

	name := byName["name"]
	assert.False(t, name.Optional)
	assert.Equal(t, []string{"string"}, name.Types)
	assert.Equal(t, "Name of the element.", name.Description)

	width := byName["width"]
	assert.True(t, width.Optional)
	assert.Equal(t, "100%", width.Default)

	align := byName["horizontalAlignment"]
	assert.Equal(t, []string{"left", "center", "right"}, align.Types)
	assert.Equal(t, "left", align.Default)

	t.Run("Fallback name and quoted defaults", func(t *testing.T) {
		doc, ok := ls.ParseDoc("/**\n * @param {string} [sep=\",\"] - Separator\n * @param {string} [sep] - duplicate\n */\n", "Time-Series")
		require.True(t, ok)
		assert.Equal(t, "TimeSeries", doc.Name)
		require.Len(t, doc.Params, 1)
		assert.Equal(t, ",", doc.Params[0].Default)
	})

	t.Run("Nothing documented", func(t *testing.T) {
		_, ok := ls.ParseDoc("export const x = 1;\n", "x")
		assert.False(t, ok)
	})
}

func TestParamAttr(t *testing.T) {
	cases := []struct {
		name string
		in   ls.ParamInfo
		want ls.Attr
	}{
		{
			"required string",
			ls.ParamInfo{Name: "name", Types: []string{"string"}, Description: "Name."},
			ls.Attr{Name: "name", Type: ls.TypeString, Required: true, Description: "Name."},
		},
		{
			"number",
			ls.ParamInfo{Name: "size", Types: []string{"number"}, Default: "4", Optional: true},
			ls.Attr{Name: "size", Type: ls.TypeInt, Default: "4"},
		},
		{
			"float",
			ls.ParamInfo{Name: "zoomBy", Types: []string{"float"}, Default: "1.1", Optional: true},
			ls.Attr{Name: "zoomBy", Type: ls.TypeFloat, Default: "1.1"},
		},
		{
			"boolean with odd default",
			ls.ParamInfo{Name: "grid", Types: []string{"boolean"}, Default: "no", Optional: true},
			ls.Attr{Name: "grid", Type: ls.TypeBool, Default: "false"},
		},
		{
			"mixed primitives fall back to string",
			ls.ParamInfo{Name: "value", Types: []string{"number", "string"}, Optional: true},
			ls.Attr{Name: "value", Type: ls.TypeString},
		},
		{
			"enum",
			ls.ParamInfo{Name: "choice", Types: []string{"single", "multiple"}, Default: "single", Optional: true},
			ls.Attr{Name: "choice", Type: ls.TypeEnum, Default: "single", Enum: []string{"single", "multiple"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Attr())
		})
	}
}

func TestGenRun(t *testing.T) {
	t.Run("Run() writes one file per category", func(t *testing.T) {
		out := t.TempDir()
		var logs []string

		g := ls.NewGen()
		g.SetTagsDir(filepath.Join("testdata", "tags"))
		g.SetOutDir(out)
		g.SetPackage("fixture")
		g.SetLog(func(messages ...any) {
			for _, m := range messages {
				logs = append(logs, m.(string))
			}
		})
		require.NoError(t, g.Run())

		for _, name := range []string{"object_ls.go", "control_ls.go", "visual_ls.go"} {
			path := filepath.Join(out, name)
			_, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.AllErrors)
			require.NoError(t, err, name)
		}

		object := readFile(t, filepath.Join(out, "object_ls.go"))
		assert.Contains(t, object, "// Code generated by lsgen; DO NOT EDIT.")
		assert.Contains(t, object, "package fixture")
		assert.Contains(t, object, `import "github.com/tinywasm/labelschema"`)
		assert.Contains(t, object, "type Image struct {")
		assert.Contains(t, object, "ZoomBy              float64")
		assert.Contains(t, object, "Zoom                labelschema.Bool")
		assert.Contains(t, object, "GridSize            int")
		assert.Contains(t, object, `{Name: "width", Type: labelschema.TypeString, Default: "100%", Description: "Image width."}`)
		assert.Contains(t, object, `Enum: []string{"left", "center", "right"}`)
		assert.Contains(t, object, "labelschema.Register(objectTags...)")
		assert.Contains(t, object, "&t.HorizontalAlignment,")

		control := readFile(t, filepath.Join(out, "control_ls.go"))
		assert.Contains(t, control, `{Name: "toName", Type: labelschema.TypeString, Required: true`)
		assert.Contains(t, control, `{Name: "hotkey", Type: labelschema.TypeString, Description: "Hotkey for the group."}`)
		assert.Contains(t, control, "labelschema.CategoryControl")
		assert.NotContains(t, control, "Broken")
		assert.NotContains(t, control, "Area")

		visual := readFile(t, filepath.Join(out, "visual_ls.go"))
		assert.Contains(t, visual, "type Style struct{}")
		assert.Less(t, strings.Index(visual, "type Style"), strings.Index(visual, "type View"))

		joined := strings.Join(logs, "\n")
		assert.Contains(t, joined, "Warning: ")
		assert.Contains(t, joined, "Area.js")
		assert.Contains(t, joined, "wrote ")
	})

	t.Run("Default package is unqualified", func(t *testing.T) {
		out := t.TempDir()
		g := ls.NewGen()
		g.SetTagsDir(filepath.Join("testdata", "tags"))
		g.SetOutDir(out)
		require.NoError(t, g.Run())

		visual := readFile(t, filepath.Join(out, "visual_ls.go"))
		assert.Contains(t, visual, "package labelschema")
		assert.NotContains(t, visual, "import")
		assert.Contains(t, visual, "func init() { Register(visualTags...) }")
	})

	t.Run("No tags found", func(t *testing.T) {
		g := ls.NewGen()
		g.SetTagsDir(t.TempDir())
		g.SetOutDir(t.TempDir())
		assert.ErrorContains(t, g.Run(), "no tags found")
	})

	t.Run("ParseFile rejects an empty path", func(t *testing.T) {
		_, _, err := ls.NewGen().ParseFile("")
		assert.Error(t, err)
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}
