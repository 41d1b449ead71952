//go:build !wasm

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinywasm/labelschema/internal/repo"
)

func newFetchCommand(a *app) *cobra.Command {
	var (
		url, dir, blobLimit, branch string
		depth                       int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Clone the Label Studio repository without large blobs",
		Long: `Runs the equivalent of

  git clone --filter=blob:limit=20k https://github.com/HumanSignal/label-studio.git

into the configured directory. Without a git binary, falls back to a
shallow go-git clone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := repo.Options{
				URL:       pick(url, a.cfg.Repo.URL),
				Dir:       pick(dir, a.cfg.Repo.Dir),
				BlobLimit: pick(blobLimit, a.cfg.Repo.BlobLimit),
				Branch:    pick(branch, a.cfg.Repo.Branch),
				Depth:     a.cfg.Repo.Depth,
			}
			if cmd.Flags().Changed("depth") {
				opts.Depth = depth
			}
			if a.verbose {
				opts.Progress = cmd.ErrOrStderr()
			}

			a.logger.Info("cloning", "url", opts.URL, "dir", opts.Dir, "blob_limit", opts.BlobLimit)
			if err := repo.Clone(cmd.Context(), opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cloned %s into %s\n", opts.URL, opts.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "repository URL (default from config)")
	cmd.Flags().StringVar(&dir, "dir", "", "target directory (default from config)")
	cmd.Flags().StringVar(&blobLimit, "blob-limit", "", "omit blobs of at least this size, e.g. 20k")
	cmd.Flags().StringVar(&branch, "branch", "", "branch to clone")
	cmd.Flags().IntVar(&depth, "depth", 0, "history depth for the go-git fallback")
	return cmd
}

// pick returns flag when set, otherwise the configured value.
func pick(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}
