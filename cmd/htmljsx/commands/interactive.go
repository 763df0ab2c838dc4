package commands

import (
	"fmt"

	"github.com/livefir/htmljsx"
	"github.com/livefir/htmljsx/cmd/htmljsx/internal/config"
	"github.com/livefir/htmljsx/cmd/htmljsx/internal/ui"
)

// Interactive opens the split-pane editor
func Interactive(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, rest, err := converterFlags(cfg, args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	return ui.Run(htmljsx.New(opts...))
}
