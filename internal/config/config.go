package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/llmstxt/internal/llms"
)

// Config represents the application configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Output   OutputConfig   `yaml:"output"`
	Site     SiteConfig     `yaml:"site"`
	Links    LinksConfig    `yaml:"links"`
	Template TemplateConfig `yaml:"template,omitempty"`
}

// SourceConfig describes where documentation pages come from.
type SourceConfig struct {
	Dir    string   `yaml:"dir"`
	Index  string   `yaml:"index,omitempty"`  // primary document relative to dir
	Ignore []string `yaml:"ignore,omitempty"` // doublestar glob patterns
}

// OutputConfig describes where llms.txt and llms-full.txt are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// SiteConfig carries the site-level fallback metadata.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// LinksConfig controls link rendering in generated documents.
type LinksConfig struct {
	Domain    string `yaml:"domain,omitempty"`
	Extension string `yaml:"extension,omitempty"`
	CleanURLs bool   `yaml:"clean_urls,omitempty"`
}

// TemplateConfig customizes llms.txt template expansion.
type TemplateConfig struct {
	Path      string         `yaml:"path,omitempty"`      // custom template file
	Variables map[string]any `yaml:"variables,omitempty"` // explicit overrides, scalars
}

// Load loads configuration from the specified file. A .env/.env.local file,
// when present, is loaded first and `${VAR}` references in the YAML are
// expanded from the environment.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Source.Dir == "" {
		return fmt.Errorf("source.dir must not be empty")
	}
	if c.Output.Directory == "" {
		return fmt.Errorf("output.directory must not be empty")
	}
	return nil
}

// LinkOptions converts the link configuration into core options.
func (c *Config) LinkOptions() llms.LinkOptions {
	return llms.LinkOptions{
		Domain:         c.Links.Domain,
		LinksExtension: c.Links.Extension,
		CleanURLs:      c.Links.CleanURLs,
	}
}

// GenerateOptions converts the configuration into core generation options.
func (c *Config) GenerateOptions() llms.GenerateOptions {
	return llms.GenerateOptions{SrcDir: c.Source.Dir, LinkOptions: c.LinkOptions()}
}

// TemplateVariables converts the template variable mapping into the core's
// typed form. `title`, `description` and `details` map onto the fixed
// fields; `toc` supports `false` (disable) or a literal string; any other
// scalar becomes a custom variable, stringified.
func (c *Config) TemplateVariables() llms.TemplateVariables {
	vars := llms.TemplateVariables{Extra: map[string]string{}}
	for key, value := range c.Template.Variables {
		switch key {
		case "title":
			vars.Title = stringify(value)
		case "description":
			vars.Description = stringify(value)
		case "details":
			vars.Details = stringify(value)
		case "toc":
			switch v := value.(type) {
			case bool:
				if v {
					vars.TOC = llms.AutoTOC()
				} else {
					vars.TOC = llms.DisabledTOC()
				}
			default:
				vars.TOC = llms.LiteralTOC(stringify(value))
			}
		default:
			vars.Extra[key] = stringify(value)
		}
	}
	return vars
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
