//go:build !wasm

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tinywasm/labelschema"
	"github.com/tinywasm/labelschema/internal/log"
)

func newGenerateCommand(a *app) *cobra.Command {
	var tagsDir, outDir, pkg string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go tag models from Label Studio tag sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := labelschema.NewGen()
			g.SetLog(log.Sink(a.logger))
			g.SetTagsDir(pick(tagsDir, a.cfg.Gen.TagsDir))
			g.SetOutDir(pick(outDir, a.cfg.Gen.OutDir))
			g.SetPackage(pick(pkg, a.cfg.Gen.Package))
			return g.Run()
		},
	}

	cmd.Flags().StringVar(&tagsDir, "tags-dir", "", "Label Studio tags directory (default from config)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")
	cmd.Flags().StringVar(&pkg, "package", "", "package name of the generated files")
	return cmd
}
