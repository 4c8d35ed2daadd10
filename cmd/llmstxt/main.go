package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/llmstxt/cmd/llmstxt/commands"
	"git.home.luguber.info/inful/llmstxt/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("llmstxt"),
		kong.Description("Derive llms.txt and llms-full.txt from a Markdown documentation tree"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli)
	ctx.FatalIfErrorf(err)
}
