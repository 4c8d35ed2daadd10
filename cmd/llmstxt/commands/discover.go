package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/llmstxt/internal/config"
	"git.home.luguber.info/inful/llmstxt/internal/llms"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct{}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	files, err := DiscoverPreparedFiles(context.Background(), cfg)
	if err != nil {
		return err
	}

	for _, file := range files {
		title := file.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%s  %s", file.Path, title)
		if desc := llms.ExtractDescription(file); desc != "" {
			line += "  " + desc
		}
		fmt.Println(line)
	}
	fmt.Printf("%d pages\n", len(files))
	return nil
}
