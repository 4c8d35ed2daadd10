package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	meta "github.com/yuin/goldmark-meta"

	"git.home.luguber.info/inful/llmstxt/internal/frontmatter"
)

// tagPattern removes remaining angle-bracket markup. This is a literal tag
// strip, not an HTML parser; code spans containing `<`/`>` may be affected.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ToText normalizes a raw Markdown document for plain-text consumption.
//
// The document is run through a goldmark parser configured with the meta
// extension: the front-matter block is parsed and consumed, never re-emitted,
// and malformed front-matter surfaces as an error. The returned text is the
// Markdown body with angle-bracket markup stripped.
func ToText(raw []byte) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))
	ctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(raw), parser.WithContext(ctx))
	if _, err := meta.TryGet(ctx); err != nil {
		return "", fmt.Errorf("parse front-matter: %w", err)
	}

	_, body, _, err := frontmatter.Split(raw)
	if err != nil {
		return "", fmt.Errorf("split front-matter: %w", err)
	}

	return strings.TrimSpace(StripTags(string(body))), nil
}

// StripTags removes `<...>` sequences from text.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// FirstParagraph parses a Markdown body (frontmatter already removed) and
// returns the text of the first paragraph, in document order. Headings and
// other non-paragraph blocks are skipped. Returns "" when the body has no
// paragraph.
func FirstParagraph(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var found string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if _, ok := n.(*gmast.Paragraph); !ok {
			return gmast.WalkContinue, nil
		}

		lines := n.Lines()
		parts := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			parts = append(parts, strings.TrimRight(string(seg.Value(body)), "\r\n"))
		}
		found = strings.Join(parts, " ")
		return gmast.WalkStop, nil
	})

	return found
}
