package llms

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateFullText_OneSectionPerPage(t *testing.T) {
	files := []PreparedFile{
		{Path: "docs/index.md", Title: "Home", Content: "# Home\n\nWelcome here."},
		{Path: "docs/guide.md", Title: "Guide", Content: "# Guide\n\nLearn more."},
		{Path: "docs/faq.md", Title: "FAQ", Content: "Questions."},
	}

	out := GenerateFullText(context.Background(), files, GenerateOptions{SrcDir: "docs"})

	segments := strings.Split(out, SectionDivider)
	require.Len(t, segments, 3)
	require.True(t, strings.HasPrefix(segments[0], "# Home"))
	require.True(t, strings.HasPrefix(segments[1], "# Guide"))
	require.True(t, strings.HasPrefix(segments[2], "# FAQ"))
}

func TestGenerateFullText_HeaderCarriesSourceLink(t *testing.T) {
	files := []PreparedFile{
		{Path: "docs/guide.md", Title: "Guide", Content: "Learn more."},
	}

	out := GenerateFullText(context.Background(), files, GenerateOptions{
		SrcDir:      "docs",
		LinkOptions: LinkOptions{Domain: "https://example.com"},
	})
	require.Contains(t, out, "# Guide\n\nSource: https://example.com/guide.md\n\n")
}

func TestGenerateFullText_FrontmatterExcludedFromBody(t *testing.T) {
	files := []PreparedFile{
		{Path: "docs/a.md", Title: "A", Content: "---\ntitle: A\n---\nBody text."},
	}

	out := GenerateFullText(context.Background(), files, GenerateOptions{SrcDir: "docs"})
	require.NotContains(t, out, "title: A")
	require.Contains(t, out, "Body text.")
}

func TestAssembleSections_FailedPageFallsBackOthersSucceed(t *testing.T) {
	broken := "---\ntitle: [unclosed\n---\nstill here\n"
	files := []PreparedFile{
		{Path: "docs/ok.md", Title: "OK", Content: "Fine."},
		{Path: "docs/broken.md", Title: "Broken", Content: broken},
	}

	sections := AssembleSections(context.Background(), files, GenerateOptions{SrcDir: "docs"})
	require.Len(t, sections, 2)

	require.False(t, sections[0].FellBack)
	require.True(t, sections[1].FellBack)

	// The failed page still appears, carrying its raw content.
	require.Contains(t, sections[1].Text, broken)
	require.True(t, strings.HasPrefix(sections[1].Text, "# Broken"))
}

func TestAssembleSections_OrderDeterministicAcrossRuns(t *testing.T) {
	files := make([]PreparedFile, 0, 16)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files = append(files, PreparedFile{
			Path:    "docs/" + name + ".md",
			Title:   strings.ToUpper(name),
			Content: "Page " + name + ".",
		})
	}

	first := GenerateFullText(context.Background(), files, GenerateOptions{SrcDir: "docs"})
	for i := 0; i < 5; i++ {
		require.Equal(t, first, GenerateFullText(context.Background(), files, GenerateOptions{SrcDir: "docs"}))
	}
}
