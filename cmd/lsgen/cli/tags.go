//go:build !wasm

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tinywasm/labelschema"
)

func newTagsCommand(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "tags [name]",
		Short: "List known tags, or the attributes of one tag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			if len(args) == 1 {
				info, ok := labelschema.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", labelschema.ErrUnknownTag, args[0])
				}
				fmt.Fprintln(w, "ATTRIBUTE\tTYPE\tDEFAULT\tREQUIRED\tDESCRIPTION")
				for _, attr := range info.New().Schema() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", attr.Name, attr.Type, attr.Default, attr.Required, attr.Description)
				}
				return nil
			}

			var filter *labelschema.Category
			if category != "" {
				c, ok := labelschema.CategoryFromString(category)
				if !ok {
					return fmt.Errorf("unknown category %q: must be object, control or visual", category)
				}
				filter = &c
			}
			fmt.Fprintln(w, "TAG\tCATEGORY\tTITLE")
			for _, info := range labelschema.Tags() {
				if filter != nil && info.Category != *filter {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Category, info.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list object, control or visual tags")
	return cmd
}
