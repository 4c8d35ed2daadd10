package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/llmstxt/internal/config"
	"git.home.luguber.info/inful/llmstxt/internal/docs"
	"git.home.luguber.info/inful/llmstxt/internal/llms"
	"git.home.luguber.info/inful/llmstxt/internal/logfields"
	"git.home.luguber.info/inful/llmstxt/internal/observability"
)

// Output file names; their location is configurable, the names are not.
const (
	LLMsTxtName     = "llms.txt"
	LLMsFullTxtName = "llms-full.txt"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"Output directory for generated documents (overrides config)"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return RunGenerate(context.Background(), cfg, g.Output)
}

// RunGenerate executes the full pipeline: discover pages, derive both
// documents, write them to the output directory.
func RunGenerate(ctx context.Context, cfg *config.Config, outputOverride string) error {
	start := time.Now()
	ctx = observability.WithRunID(ctx, uuid.NewString())

	files, err := DiscoverPreparedFiles(ctx, cfg)
	if err != nil {
		return err
	}

	template, err := loadTemplate(cfg)
	if err != nil {
		return err
	}

	llmsTxt := llms.GenerateLLMsTxt(observability.WithStage(ctx, "llms-txt"), files, llms.LLMsTxtOptions{
		GenerateOptions: cfg.GenerateOptions(),
		IndexPath:       cfg.IndexPath(),
		SiteTitle:       cfg.Site.Title,
		SiteDescription: cfg.Site.Description,
		Template:        template,
		Variables:       cfg.TemplateVariables(),
	})

	fullTxt := llms.GenerateFullText(observability.WithStage(ctx, "llms-full-txt"), files, cfg.GenerateOptions())

	outDir := cfg.Output.Directory
	if outputOverride != "" {
		outDir = outputOverride
	}
	if err := writeOutputs(outDir, llmsTxt, fullTxt); err != nil {
		return err
	}

	observability.InfoContext(ctx, "Generation finished",
		logfields.FileCount(len(files)),
		logfields.Output(outDir),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return nil
}

// DiscoverPreparedFiles runs page discovery under the discover stage.
func DiscoverPreparedFiles(ctx context.Context, cfg *config.Config) ([]llms.PreparedFile, error) {
	ctx = observability.WithStage(ctx, "discover")
	files, err := docs.NewDiscovery(cfg.Source.Dir, cfg.Source.Ignore).DiscoverFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover documentation: %w", err)
	}
	observability.InfoContext(ctx, "Discovered documentation pages", logfields.FileCount(len(files)))
	return files, nil
}

func loadTemplate(cfg *config.Config) (string, error) {
	if cfg.Template.Path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(cfg.Template.Path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", cfg.Template.Path, err)
	}
	return string(raw), nil
}

func writeOutputs(outDir, llmsTxt, fullTxt string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, LLMsTxtName), []byte(llmsTxt), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", LLMsTxtName, err)
	}
	if err := os.WriteFile(filepath.Join(outDir, LLMsFullTxtName), []byte(fullTxt), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", LLMsFullTxtName, err)
	}
	return nil
}
