package llms

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var tocFixture = []PreparedFile{
	{Path: "docs/index.md", Title: "Home", Content: "# Home\n\nWelcome here."},
	{Path: "docs/guide.md", Title: "Guide", Content: "# Guide\n\nLearn more."},
}

func TestGenerateLLMsTxt_DefaultTemplate(t *testing.T) {
	out := GenerateLLMsTxt(context.Background(), tocFixture, LLMsTxtOptions{
		GenerateOptions: GenerateOptions{SrcDir: "docs"},
		SiteTitle:       "My Docs",
		SiteDescription: "Documentation for my project.",
	})

	require.Contains(t, out, "# My Docs")
	require.Contains(t, out, "> Documentation for my project.")
	require.Contains(t, out, "- [Home](/): Welcome here.\n- [Guide](/guide.md): Learn more.")
}

func TestGenerateLLMsTxt_ExplicitVariablesWin(t *testing.T) {
	out := GenerateLLMsTxt(context.Background(), tocFixture, LLMsTxtOptions{
		GenerateOptions: GenerateOptions{SrcDir: "docs"},
		SiteTitle:       "Site Title",
		Variables:       TemplateVariables{Title: "Override Title"},
	})

	require.Contains(t, out, "# Override Title")
	require.NotContains(t, out, "Site Title")
}

func TestGenerateLLMsTxt_IndexBackfillsUnsetFields(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, "index.md")
	require.NoError(t, os.WriteFile(index, []byte("---\ntitle: Index Title\ndescription: Index description.\n---\n# Hello\n"), 0o644))

	out := GenerateLLMsTxt(context.Background(), tocFixture, LLMsTxtOptions{
		GenerateOptions: GenerateOptions{SrcDir: "docs"},
		IndexPath:       index,
		Variables:       TemplateVariables{Title: "Explicit Title"},
	})

	// Explicit title wins; unset description comes from the index document.
	require.Contains(t, out, "# Explicit Title")
	require.NotContains(t, out, "# Index Title")
	require.Contains(t, out, "> Index description.")
}

func TestGenerateLLMsTxt_MissingIndexIsNonFatal(t *testing.T) {
	out := GenerateLLMsTxt(context.Background(), tocFixture, LLMsTxtOptions{
		GenerateOptions: GenerateOptions{SrcDir: "docs"},
		IndexPath:       filepath.Join(t.TempDir(), "does-not-exist.md"),
		SiteTitle:       "Fallback",
	})

	require.Contains(t, out, "# Fallback")
}

func TestGenerateLLMsTxt_TOCDisabled(t *testing.T) {
	out := GenerateLLMsTxt(context.Background(), tocFixture, LLMsTxtOptions{
		GenerateOptions: GenerateOptions{SrcDir: "docs"},
		SiteTitle:       "Docs",
		Variables:       TemplateVariables{TOC: DisabledTOC()},
	})

	// The {toc} placeholder expands to nothing; no entries are generated.
	require.NotContains(t, out, "- [Home]")
	require.Contains(t, out, "## Table of Contents")
}

func TestGenerateLLMsTxt_TOCLiteralUsedVerbatim(t *testing.T) {
	out := GenerateLLMsTxt(context.Background(), tocFixture, LLMsTxtOptions{
		GenerateOptions: GenerateOptions{SrcDir: "docs"},
		Variables:       TemplateVariables{TOC: LiteralTOC("- [Custom](/custom.md)")},
	})

	require.Contains(t, out, "- [Custom](/custom.md)")
	require.NotContains(t, out, "- [Home]")
}

func TestGenerateLLMsTxt_CustomTemplateAndExtraVariables(t *testing.T) {
	out := GenerateLLMsTxt(context.Background(), tocFixture, LLMsTxtOptions{
		GenerateOptions: GenerateOptions{SrcDir: "docs"},
		Template:        "{greeting} {title}!\n{unknown}\n{toc}",
		SiteTitle:       "Docs",
		Variables:       TemplateVariables{Extra: map[string]string{"greeting": "Hello"}},
	})

	require.Contains(t, out, "Hello Docs!")
	require.Contains(t, out, "\n\n- [Home](/)")
}
