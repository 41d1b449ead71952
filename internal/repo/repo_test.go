package repo

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitCLIArgs(t *testing.T) {
	opts := Options{
		URL:       "https://github.com/HumanSignal/label-studio.git",
		Dir:       "ls-files/label-studio",
		BlobLimit: "20k",
	}
	assert.Equal(t, []string{
		"clone", "--filter=blob:limit=20k",
		"https://github.com/HumanSignal/label-studio.git", "ls-files/label-studio",
	}, GitCLI{}.Args(opts))

	opts.BlobLimit = ""
	opts.Branch = "develop"
	assert.Equal(t, []string{"clone", "--branch", "develop", opts.URL, opts.Dir}, GitCLI{}.Args(opts))
}

func TestCheckTarget(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, checkTarget(filepath.Join(dir, "missing")))
	assert.NoError(t, checkTarget(dir), "empty dir is a valid target")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644))
	assert.ErrorIs(t, checkTarget(dir), ErrTargetExists)

	assert.Error(t, checkTarget(""))
}

func TestCloneRejectsNonEmptyTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep"), nil, 0644))

	err := Clone(context.Background(), Options{URL: "https://invalid.example/repo.git", Dir: dir})
	assert.ErrorIs(t, err, ErrTargetExists)
}

// sourceRepo creates a local repository with a single tag source file.
func sourceRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	r, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	rel := filepath.Join("web", "libs", "editor", "src", "tags", "object", "Audio.js")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.Dir(rel)), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, rel), []byte("/** @name Audio */\n"), 0644))

	wt, err := r.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(filepath.ToSlash(rel))
	require.NoError(t, err)
	_, err = wt.Commit("add audio tag", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestGoGitClone(t *testing.T) {
	// go-git's file transport shells out to git-upload-pack.
	requireGit(t)
	src := sourceRepo(t)
	dst := filepath.Join(t.TempDir(), "label-studio")

	err := GoGit{}.Clone(context.Background(), Options{URL: src, Dir: dst})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dst, "web", "libs", "editor", "src", "tags", "object", "Audio.js"))
}

func TestGitCLIClone(t *testing.T) {
	requireGit(t)
	src := sourceRepo(t)
	dst := filepath.Join(t.TempDir(), "label-studio")

	err := GitCLI{}.Clone(context.Background(), Options{URL: "file://" + filepath.ToSlash(src), Dir: dst, BlobLimit: "20k"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dst, "web", "libs", "editor", "src", "tags", "object", "Audio.js"))
}

func TestGitCLICloneReportsFailure(t *testing.T) {
	requireGit(t)
	dst := filepath.Join(t.TempDir(), "out")

	err := GitCLI{}.Clone(context.Background(), Options{URL: filepath.Join(t.TempDir(), "nope"), Dir: dst})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git clone")
	// git's own diagnostic, e.g. "fatal: repository '...' does not exist"
	assert.Contains(t, err.Error(), "fatal:")

	var progress bytes.Buffer
	err = GitCLI{}.Clone(context.Background(), Options{URL: filepath.Join(t.TempDir(), "nope"), Dir: dst, Progress: &progress})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal:")
	assert.Contains(t, progress.String(), "fatal:")
}
