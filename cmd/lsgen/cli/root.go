//go:build !wasm

// Package cli implements the lsgen command-line interface using Cobra.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tinywasm/labelschema/internal/config"
	"github.com/tinywasm/labelschema/internal/log"
)

// app carries the global flags and the state PersistentPreRunE builds.
type app struct {
	cfgFile string
	verbose bool
	jsonOut bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the lsgen root command and its subcommands.
func NewRootCommand(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lsgen",
		Short: "Typed Label Studio labeling-config schema tools",
		Long: `lsgen fetches the Label Studio sources, generates typed Go tag models
from the JSDoc of every tag, and formats or validates labeling configs.`,
		Example: `  # Partial clone of Label Studio (blobs over 20k are skipped)
  lsgen fetch

  # Regenerate object_ls.go, control_ls.go and visual_ls.go
  lsgen generate --out .

  # Pretty-print and check a labeling config
  lsgen format config.xml
  lsgen validate config.xml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = log.Init(log.Options{
				Verbose:    a.verbose,
				JSONFormat: a.jsonOut,
				Stderr:     cmd.ErrOrStderr(),
			})
			cfg, err := config.LoadFile(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", config.FileName, "config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "log in JSON format")

	root.AddCommand(
		newFetchCommand(a),
		newGenerateCommand(a),
		newFormatCommand(a),
		newValidateCommand(a),
		newTagsCommand(a),
	)
	return root
}
