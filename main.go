package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/mercury/internal/config"
	"github.com/olivier-w/mercury/internal/frame"
	"github.com/olivier-w/mercury/internal/logging"
	"github.com/olivier-w/mercury/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	log, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	d, err := frame.NewDriver(cfg.Driver(), log)
	if err != nil {
		return err
	}
	log.Info().
		Int("particles", cfg.Particles.Count).
		Int("fps", cfg.Preview.FPS).
		Bool("analytic", cfg.Springs.Analytic).
		Msg("preview starting")

	p := tea.NewProgram(ui.New(d, cfg.Preview.FPS, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
