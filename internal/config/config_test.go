package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultRepoURL, cfg.Repo.URL)
	assert.Equal(t, DefaultRepoDir, cfg.Repo.Dir)
	assert.Equal(t, "20k", cfg.Repo.BlobLimit)
	assert.Equal(t, filepath.Join(DefaultRepoDir, TagsSubdir), cfg.Gen.TagsDir)
	assert.Equal(t, ".", cfg.Gen.OutDir)
	assert.Equal(t, "labelschema", cfg.Gen.Package)
	assert.Equal(t, 4, cfg.Format.Indent)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
repo:
  url: https://example.com/label-studio.git
  dir: vendor/ls
  blob_limit: 1m
  depth: 3
generate:
  out_dir: gen
  package: lstags
format:
  indent: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/label-studio.git", cfg.Repo.URL)
	assert.Equal(t, "1m", cfg.Repo.BlobLimit)
	assert.Equal(t, 3, cfg.Repo.Depth)
	assert.Equal(t, filepath.Join("vendor/ls", TagsSubdir), cfg.Gen.TagsDir, "tags dir follows repo dir")
	assert.Equal(t, "gen", cfg.Gen.OutDir)
	assert.Equal(t, "lstags", cfg.Gen.Package)
	assert.Equal(t, 2, cfg.Format.Indent)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"blob limit unit", "repo:\n  blob_limit: 20kb\n", "blob_limit"},
		{"negative depth", "repo:\n  depth: -1\n", "depth"},
		{"negative indent", "format:\n  indent: -2\n", "indent"},
		{"malformed yaml", "repo: [\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(tt.content), 0644))

			_, err := Load(dir)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
