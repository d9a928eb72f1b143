package commands

import (
	"fmt"

	"git.home.luguber.info/inful/bloggen/internal/build"
	"git.home.luguber.info/inful/bloggen/internal/config"
)

// CleanCmd implements the 'clean' command.
type CleanCmd struct{}

func (c *CleanCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := build.Clean(cfg.OutputDir); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", cfg.OutputDir)
	return nil
}
