package llms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTOC_EndToEnd(t *testing.T) {
	files := []PreparedFile{
		{Path: "docs/index.md", Title: "Home", Content: "# Home\n\nWelcome here."},
		{Path: "docs/guide.md", Title: "Guide", Content: "# Guide\n\nLearn more."},
	}

	got := GenerateTOC(files, GenerateOptions{SrcDir: "docs"})
	require.Equal(t, "- [Home](/): Welcome here.\n- [Guide](/guide.md): Learn more.", got)
}

func TestGenerateTOC_PreservesInputOrder(t *testing.T) {
	files := []PreparedFile{
		{Path: "docs/b.md", Title: "B", Content: "B page."},
		{Path: "docs/a.md", Title: "A", Content: "A page."},
	}

	got := GenerateTOC(files, GenerateOptions{SrcDir: "docs"})
	require.Equal(t, "- [B](/b.md): B page.\n- [A](/a.md): A page.", got)
}

func TestGenerateTOC_NoDescription_OmitsSuffix(t *testing.T) {
	files := []PreparedFile{
		{Path: "docs/raw.md", Title: "Raw", Content: "no terminator here\n"},
	}

	got := GenerateTOC(files, GenerateOptions{SrcDir: "docs"})
	require.Equal(t, "- [Raw](/raw.md)", got)
}

func TestGenerateTOC_DomainAndCleanURLs(t *testing.T) {
	files := []PreparedFile{
		{Path: "docs/guide.md", Title: "Guide", Content: "Learn more."},
	}

	got := GenerateTOC(files, GenerateOptions{
		SrcDir:      "docs",
		LinkOptions: LinkOptions{Domain: "https://example.com/", CleanURLs: true},
	})
	require.Equal(t, "- [Guide](https://example.com/guide): Learn more.", got)
}

func TestGenerateTOC_Empty(t *testing.T) {
	require.Empty(t, GenerateTOC(nil, GenerateOptions{}))
}
