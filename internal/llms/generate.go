package llms

import (
	"context"
	"os"

	"git.home.luguber.info/inful/llmstxt/internal/frontmatter"
	"git.home.luguber.info/inful/llmstxt/internal/logfields"
	"git.home.luguber.info/inful/llmstxt/internal/observability"
)

// LLMsTxtOptions parameterizes llms.txt generation.
type LLMsTxtOptions struct {
	GenerateOptions

	// IndexPath optionally points at the primary document whose front-matter
	// backfills title/description when the caller supplied none.
	IndexPath string

	// Site-level fallbacks, lowest precedence.
	SiteTitle       string
	SiteDescription string

	// Template is the llms.txt layout; "" means DefaultTemplate.
	Template string

	// Variables are explicit overrides; explicit values always win.
	Variables TemplateVariables
}

// GenerateLLMsTxt renders the llms.txt table-of-contents document.
//
// Variables are layered: site-level fallbacks, then the index document's
// front-matter, then explicit overrides. Unless the TOC is explicitly
// disabled or supplied verbatim, it is regenerated from the page set before
// template expansion. An unreadable or unparsable index document is a
// warning, never an abort.
func GenerateLLMsTxt(ctx context.Context, files []PreparedFile, opts LLMsTxtOptions) string {
	vars := map[string]string{}
	if opts.SiteTitle != "" {
		vars["title"] = opts.SiteTitle
	}
	if opts.SiteDescription != "" {
		vars["description"] = opts.SiteDescription
	}
	vars["toc"] = ""

	explicitTitle := opts.Variables.Title != ""
	explicitDescription := opts.Variables.Description != ""
	if explicitTitle {
		vars["title"] = opts.Variables.Title
	}
	if explicitDescription {
		vars["description"] = opts.Variables.Description
	}
	if opts.Variables.Details != "" {
		vars["details"] = opts.Variables.Details
	}
	for k, v := range opts.Variables.Extra {
		vars[k] = v
	}

	if opts.IndexPath != "" {
		fields, err := readIndexFrontmatter(opts.IndexPath)
		if err != nil {
			observability.WarnContext(ctx, "Reading index document failed, using defaults",
				logfields.Path(opts.IndexPath), logfields.Error(err))
		} else {
			if t, ok := fields["title"].(string); ok && t != "" && !explicitTitle {
				vars["title"] = t
			}
			if d, ok := fields["description"].(string); ok && d != "" && !explicitDescription {
				vars["description"] = d
			}
		}
	}

	switch {
	case opts.Variables.TOC.Disabled():
		vars["toc"] = ""
	default:
		if literal, ok := opts.Variables.TOC.Literal(); ok {
			vars["toc"] = literal
		} else {
			vars["toc"] = GenerateTOC(files, opts.GenerateOptions)
		}
	}

	template := opts.Template
	if template == "" {
		template = DefaultTemplate
	}
	return ExpandTemplate(template, vars)
}

func readIndexFrontmatter(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fm, _, _, err := frontmatter.Split(raw)
	if err != nil {
		return nil, err
	}
	return frontmatter.ParseYAML(fm)
}
