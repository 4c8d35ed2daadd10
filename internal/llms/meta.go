package llms

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/llmstxt/internal/markdown"
)

// h1Pattern matches the first level-1 heading at line start.
var h1Pattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// sentencePattern takes the shortest leading run of characters terminated by
// `.`, `!` or `?`. Abbreviations ("e.g.") terminate early; downstream
// consumers depend on exactly this behavior.
var sentencePattern = regexp.MustCompile(`^[^.!?]*[.!?]`)

// ExtractTitle derives a human title for a page: front-matter `title` first,
// then the first `# heading` in the body. Never inferred from the filename;
// "" when neither source yields one.
func ExtractTitle(file PreparedFile) string {
	if t, ok := file.Frontmatter["title"].(string); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}

	if m := h1Pattern.FindStringSubmatch(file.Content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractDescription derives a short description from the first sentence of
// the page's first paragraph. A paragraph without a sentence terminator
// yields no description rather than a truncated fallback.
func ExtractDescription(file PreparedFile) string {
	para := markdown.FirstParagraph([]byte(file.Content))
	if para == "" {
		return ""
	}
	return strings.TrimSpace(sentencePattern.FindString(para))
}
