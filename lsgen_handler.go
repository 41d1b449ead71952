//go:build !wasm

package labelschema

// Gen is the code generator handler for the lsgen tool.
type Gen struct {
	logFn   func(messages ...any)
	tagsDir string
	outDir  string
	pkg     string
}

// NewGen creates a new Gen handler reading from "tags" and writing the
// labelschema package into ".".
func NewGen() *Gen {
	return &Gen{tagsDir: "tags", outDir: ".", pkg: "labelschema"}
}

// SetLog sets the log function for warnings and informational messages.
// If not set, messages are silently discarded.
func (g *Gen) SetLog(fn func(messages ...any)) {
	g.logFn = fn
}

// SetTagsDir sets the Label Studio tags directory that Run() will scan,
// usually <label-studio>/web/libs/editor/src/tags.
func (g *Gen) SetTagsDir(dir string) {
	g.tagsDir = dir
}

// SetOutDir sets the directory that receives the generated files.
func (g *Gen) SetOutDir(dir string) {
	g.outDir = dir
}

// SetPackage sets the package name of the generated files. Any name other
// than labelschema imports the catalogue types from this module.
func (g *Gen) SetPackage(name string) {
	if name != "" {
		g.pkg = name
	}
}

// log emits a message via the configured log function, if any.
func (g *Gen) log(messages ...any) {
	if g.logFn != nil {
		g.logFn(messages...)
	}
}
