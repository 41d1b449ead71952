// Package repo fetches the Label Studio sources that lsgen reads tag docs from.
package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrTargetExists is returned when the clone target is a non-empty directory.
var ErrTargetExists = errors.New("clone target already exists and is not empty")

// Options describes a clone.
type Options struct {
	URL string
	Dir string
	// BlobLimit omits blobs at or above this size, e.g. "20k".
	// Empty clones every blob.
	BlobLimit string
	// Depth limits history for the go-git backend; 0 clones everything.
	Depth  int
	Branch string
	// Progress receives the human readable transfer output, if set.
	Progress io.Writer
}

// Cloner clones a remote repository into a local directory.
type Cloner interface {
	Clone(ctx context.Context, opts Options) error
}

// GitCLI clones with the git binary, which supports partial clone filters.
type GitCLI struct {
	// Binary defaults to "git".
	Binary string
}

// Args returns the git arguments for opts:
// clone [--filter=blob:limit=N] [--branch B] <url> <dir>.
func (g GitCLI) Args(opts Options) []string {
	args := []string{"clone"}
	if opts.BlobLimit != "" {
		args = append(args, "--filter=blob:limit="+opts.BlobLimit)
	}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	return append(args, opts.URL, opts.Dir)
}

// Clone implements Cloner.
func (g GitCLI) Clone(ctx context.Context, opts Options) error {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, g.Args(opts)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if opts.Progress != nil {
		cmd.Stdout = opts.Progress
		cmd.Stderr = io.MultiWriter(opts.Progress, &stderr)
	}
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git clone %s: %w: %s", opts.URL, err, msg)
		}
		return fmt.Errorf("git clone %s: %w", opts.URL, err)
	}
	return nil
}

// GoGit clones in-process with go-git. go-git v5 does not expose partial
// clone filters, so BlobLimit is ignored and Depth keeps the download small.
type GoGit struct{}

// Clone implements Cloner.
func (GoGit) Clone(ctx context.Context, opts Options) error {
	co := &git.CloneOptions{
		URL:          opts.URL,
		Depth:        opts.Depth,
		SingleBranch: true,
		Tags:         git.NoTags,
	}
	if opts.Branch != "" {
		co.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
	}
	if opts.Progress != nil {
		co.Progress = opts.Progress
	}
	if _, err := git.PlainCloneContext(ctx, opts.Dir, false, co); err != nil {
		return fmt.Errorf("go-git clone %s: %w", opts.URL, err)
	}
	return nil
}

// Clone fetches opts.URL into opts.Dir. It runs the git binary when one is
// on PATH and falls back to a shallow go-git clone otherwise.
func Clone(ctx context.Context, opts Options) error {
	if err := checkTarget(opts.Dir); err != nil {
		return err
	}
	return pick().Clone(ctx, withDefaults(opts))
}

// pick chooses the clone backend.
func pick() Cloner {
	if path, err := exec.LookPath("git"); err == nil {
		slog.Debug("cloning with git binary", "path", path)
		return GitCLI{Binary: path}
	}
	slog.Debug("git binary not found, cloning with go-git")
	return GoGit{}
}

func withDefaults(opts Options) Options {
	if opts.Depth == 0 {
		opts.Depth = 1
	}
	return opts
}

// checkTarget rejects an existing non-empty directory, matching git's own
// refusal, before any network traffic happens.
func checkTarget(dir string) error {
	if dir == "" {
		return errors.New("clone target directory is empty")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading clone target: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%s: %w", dir, ErrTargetExists)
	}
	return nil
}
