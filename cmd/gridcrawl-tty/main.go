package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/gridcrawl/internal/config"
	"chosenoffset.com/gridcrawl/internal/core/rng"
	"chosenoffset.com/gridcrawl/internal/game"
	"chosenoffset.com/gridcrawl/internal/term"
)

func main() {
	configPath := flag.String("config", "gridcrawl.yaml", "YAML config file (defaults are used if it does not exist)")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	logPath := flag.String("log", "", "Write log output to this file (tcell owns the terminal)")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, logPath string) error {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := game.NewSession(cfg, rng.New(seed))
	return term.New(screen, session, cfg.TicksPerSecond, cfg.Grid.CellSize).Run(ctx)
}
