// Package llms derives LLM-oriented artifacts (llms.txt and llms-full.txt)
// from an already-prepared set of Markdown documentation pages.
package llms

// PreparedFile is a documentation page resolved by the host: path, extracted
// title, Markdown body and parsed front-matter. Instances are never mutated
// by this package; input order is preserved through TOC generation and
// full-content assembly.
type PreparedFile struct {
	Path        string
	Title       string
	Content     string
	Frontmatter map[string]any
}

// LinkOptions controls how source paths are rendered as public links.
// Pure configuration, passed through call chains, never mutated.
type LinkOptions struct {
	Domain         string
	LinksExtension string // defaults to ".md"
	CleanURLs      bool
}

// GenerateOptions is LinkOptions plus the source root used for computing
// relative paths. No filesystem traversal happens on SrcDir.
type GenerateOptions struct {
	SrcDir string
	LinkOptions
}

// extension returns the configured link extension, defaulted.
func (o LinkOptions) extension() string {
	if o.LinksExtension == "" {
		return ".md"
	}
	return o.LinksExtension
}

// TOCValue states how the {toc} placeholder is filled. The zero value is
// AutoTOC: the table of contents is regenerated from the page set. A literal
// value (even "") is used verbatim; Disabled suppresses generation entirely
// and the placeholder expands to nothing.
type TOCValue struct {
	disabled bool
	literal  *string
}

// AutoTOC regenerates the table of contents from the page set.
func AutoTOC() TOCValue { return TOCValue{} }

// DisabledTOC suppresses TOC generation entirely.
func DisabledTOC() TOCValue { return TOCValue{disabled: true} }

// LiteralTOC uses s as the {toc} value without regeneration.
func LiteralTOC(s string) TOCValue { return TOCValue{literal: &s} }

// Disabled reports whether TOC generation is suppressed.
func (t TOCValue) Disabled() bool { return t.disabled }

// Literal returns the verbatim TOC value, if one was supplied.
func (t TOCValue) Literal() (string, bool) {
	if t.disabled || t.literal == nil {
		return "", false
	}
	return *t.literal, true
}

// TemplateVariables are explicit overrides for template expansion. Explicit
// values always win over derived ones; an empty fixed field means unset.
// Extra carries arbitrary custom placeholder values.
type TemplateVariables struct {
	Title       string
	Description string
	Details     string
	TOC         TOCValue
	Extra       map[string]string
}

// DefaultTemplate is the llms.txt layout used when no template is supplied.
const DefaultTemplate = `# {title}

> {description}

{details}

## Table of Contents

{toc}
`
