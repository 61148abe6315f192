package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/hersh/blockfall/internal/config"
	"github.com/hersh/blockfall/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	height := flag.Int("height", 0, "Board height in rows (overrides config)")
	width := flag.Int("width", 0, "Board width in columns, even (overrides config)")
	interval := flag.Duration("interval", 0, "Gravity interval, e.g. 400ms (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed for piece selection (0 = time based)")
	name := flag.String("name", "", "Player name (defaults to a generated one)")
	logFile := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags win over the file.
	if *height != 0 {
		cfg.Board.Height = *height
	}
	if *width != 0 {
		cfg.Board.Width = *width
	}
	if *interval != 0 {
		cfg.Gravity.Interval = config.Duration(*interval)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *name != "" {
		cfg.Player.Name = *name
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "blockfall")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Player.Name == "" {
		cfg.Player.Name = petname.Generate(2, "-")
	}
	log.Printf("starting %dx%d board, seed %d, player %s",
		cfg.Board.Height, cfg.Board.Width, cfg.Seed, cfg.Player.Name)

	model, err := tui.NewModel(cfg, cfg.Player.Name, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
