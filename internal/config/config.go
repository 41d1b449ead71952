// Package config handles lsgen.yaml parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "lsgen.yaml"

const (
	DefaultRepoURL   = "https://github.com/HumanSignal/label-studio.git"
	DefaultRepoDir   = "ls-files/label-studio"
	DefaultBlobLimit = "20k"
	// TagsSubdir is where Label Studio keeps its tag sources.
	TagsSubdir = "web/libs/editor/src/tags"
)

// Config represents an lsgen.yaml file.
type Config struct {
	Repo   RepoConfig   `yaml:"repo,omitempty"`
	Gen    GenConfig    `yaml:"generate,omitempty"`
	Format FormatConfig `yaml:"format,omitempty"`
}

// RepoConfig configures the Label Studio checkout.
type RepoConfig struct {
	URL string `yaml:"url,omitempty"`
	Dir string `yaml:"dir,omitempty"`
	// BlobLimit is passed to git as --filter=blob:limit=<BlobLimit>.
	// Accepts a byte count with an optional k, m or g suffix.
	BlobLimit string `yaml:"blob_limit,omitempty"`
	// Depth only applies to the go-git fallback; 0 keeps its default of 1.
	Depth  int    `yaml:"depth,omitempty"`
	Branch string `yaml:"branch,omitempty"`
}

// GenConfig configures the code generator.
type GenConfig struct {
	// TagsDir defaults to <repo.dir>/web/libs/editor/src/tags.
	TagsDir string `yaml:"tags_dir,omitempty"`
	OutDir  string `yaml:"out_dir,omitempty"`
	Package string `yaml:"package,omitempty"`
}

// FormatConfig configures XML pretty printing.
type FormatConfig struct {
	Indent int `yaml:"indent,omitempty"`
}

var blobLimitPattern = regexp.MustCompile(`^[0-9]+[kmg]?$`)

// Default returns the configuration used when no lsgen.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads lsgen.yaml from dir. A missing file yields Default().
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads a config from an explicit path. A missing file yields
// Default().
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values after defaults have been applied.
func (c *Config) Validate() error {
	if !blobLimitPattern.MatchString(c.Repo.BlobLimit) {
		return fmt.Errorf("invalid repo.blob_limit %q: must be a number with an optional k, m or g suffix", c.Repo.BlobLimit)
	}
	if c.Repo.Depth < 0 {
		return fmt.Errorf("invalid repo.depth %d: must not be negative", c.Repo.Depth)
	}
	if c.Format.Indent < 0 {
		return fmt.Errorf("invalid format.indent %d: must not be negative", c.Format.Indent)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Repo.URL == "" {
		c.Repo.URL = DefaultRepoURL
	}
	if c.Repo.Dir == "" {
		c.Repo.Dir = DefaultRepoDir
	}
	if c.Repo.BlobLimit == "" {
		c.Repo.BlobLimit = DefaultBlobLimit
	}
	if c.Gen.TagsDir == "" {
		c.Gen.TagsDir = filepath.Join(c.Repo.Dir, TagsSubdir)
	}
	if c.Gen.OutDir == "" {
		c.Gen.OutDir = "."
	}
	if c.Gen.Package == "" {
		c.Gen.Package = "labelschema"
	}
	if c.Format.Indent == 0 {
		c.Format.Indent = 4
	}
}
