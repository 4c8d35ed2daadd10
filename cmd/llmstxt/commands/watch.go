package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/llmstxt/internal/config"
	"git.home.luguber.info/inful/llmstxt/internal/logfields"
	"git.home.luguber.info/inful/llmstxt/internal/observability"
	"git.home.luguber.info/inful/llmstxt/internal/watch"
)

// WatchCmd implements the 'watch' command: one initial generation, then a
// regeneration after every debounced change in the source tree.
type WatchCmd struct {
	Output string `short:"o" help:"Output directory for generated documents (overrides config)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := RunGenerate(ctx, cfg, w.Output); err != nil {
		return err
	}

	watcher, err := watch.New(cfg.Source.Dir)
	if err != nil {
		return fmt.Errorf("watch source: %w", err)
	}

	err = watcher.Run(ctx, func() {
		// A failed regeneration keeps the watch alive; the next change
		// gets another chance.
		if genErr := RunGenerate(ctx, cfg, w.Output); genErr != nil {
			observability.ErrorContext(ctx, "Regeneration failed", logfields.Error(genErr))
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
