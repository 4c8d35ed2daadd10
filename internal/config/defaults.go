package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Dir:    "docs",
			Index:  "index.md",
			Ignore: []string{"**/node_modules/**", "**/README.md"},
		},
		Output: OutputConfig{Directory: "."},
		Links:  LinksConfig{Extension: ".md"},
	}
}

// starterConfig is what `llmstxt init` writes.
const starterConfig = `# llmstxt configuration
source:
  dir: docs
  index: index.md
  ignore:
    - "**/node_modules/**"
    - "**/README.md"

output:
  directory: .

site:
  title: My Documentation
  description: ""

links:
  # domain: https://example.com
  extension: .md
  clean_urls: false

# template:
#   path: llms-template.md
#   variables:
#     details: Extended notes for LLM consumers.
#     toc: true
`

// Init writes a starter configuration file. Existing files are preserved
// unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(configPath, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IndexPath resolves the configured index document relative to the source
// dir; "" when no index is configured.
func (c *Config) IndexPath() string {
	if c.Source.Index == "" {
		return ""
	}
	return filepath.Join(c.Source.Dir, c.Source.Index)
}
