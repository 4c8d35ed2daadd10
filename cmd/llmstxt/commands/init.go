package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/llmstxt/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Output directory for generated config file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	configPath := root.Config
	if i.Output != "" {
		configPath = filepath.Join(i.Output, "llmstxt.yaml")
	}

	fmt.Printf("Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, i.Force); err != nil {
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
