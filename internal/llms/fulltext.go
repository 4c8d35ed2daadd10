package llms

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/iter"

	"git.home.luguber.info/inful/llmstxt/internal/logfields"
	"git.home.luguber.info/inful/llmstxt/internal/markdown"
	"git.home.luguber.info/inful/llmstxt/internal/observability"
)

// SectionDivider separates per-page sections in llms-full.txt.
const SectionDivider = "\n\n---\n\n"

// Section is the rendered llms-full.txt segment for one page. FellBack is
// true when normalization failed and the raw content was used instead.
type Section struct {
	Path     string
	Text     string
	FellBack bool
}

// AssembleSections renders every page to a full-text section: a metadata
// header (title + source link) followed by the normalized body. Pages are
// processed concurrently but the returned slice keeps input order. A page
// whose normalization fails is downgraded to its raw content with a warning;
// one bad page never aborts the batch.
func AssembleSections(ctx context.Context, files []PreparedFile, opts GenerateOptions) []Section {
	return iter.Map(files, func(file *PreparedFile) Section {
		return renderSection(ctx, *file, opts)
	})
}

// GenerateFullText assembles all pages into the llms-full.txt blob, joined
// with section dividers in input order.
func GenerateFullText(ctx context.Context, files []PreparedFile, opts GenerateOptions) string {
	sections := AssembleSections(ctx, files, opts)
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, SectionDivider)
}

func renderSection(ctx context.Context, file PreparedFile, opts GenerateOptions) Section {
	link := NormalizePath(relativeTo(opts.SrcDir, file.Path), opts.LinkOptions)
	header := fmt.Sprintf("# %s\n\nSource: %s", file.Title, link)

	body, err := markdown.ToText([]byte(file.Content))
	fellBack := false
	if err != nil {
		observability.WarnContext(ctx, "Page normalization failed, falling back to raw content",
			logfields.File(file.Path), logfields.Error(err))
		body = file.Content
		fellBack = true
	}

	return Section{
		Path:     file.Path,
		Text:     header + "\n\n" + body,
		FellBack: fellBack,
	}
}
