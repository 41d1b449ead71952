//go:build !wasm

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinywasm/labelschema"
)

func newFormatCommand(a *app) *cobra.Command {
	var (
		indent int
		write  bool
	)

	cmd := &cobra.Command{
		Use:   "format <file|->",
		Short: "Pretty-print a labeling config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("indent") {
				indent = a.cfg.Format.Indent
			}
			out, err := labelschema.Format(string(src), indent)
			if err != nil {
				return err
			}
			if write && args[0] != "-" {
				return os.WriteFile(args[0], []byte(out+"\n"), 0644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&indent, "indent", 4, "spaces per indentation level")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	return cmd
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->",
		Short: "Check a labeling config against the tag schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			root, err := labelschema.Parse(string(src))
			if err != nil {
				return err
			}
			if err := labelschema.Validate(root); err != nil {
				return err
			}
			a.logger.Debug("config valid", "file", args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

// readInput reads a file argument, or stdin for "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
