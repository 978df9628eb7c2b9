package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/avelinop/navdeck/internal/app"
	"github.com/avelinop/navdeck/internal/pages"
	"github.com/avelinop/navdeck/internal/storage"
	"github.com/avelinop/navdeck/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "0.1.0"
)

func main() {
	var (
		themeName   string
		startRoute  string
		dataDir     string
		showVersion bool
	)

	flag.StringVar(&themeName, "theme", "", "color theme (default, gruvbox, nord, dracula)")
	flag.StringVar(&startRoute, "route", "", "route to display on startup")
	flag.StringVar(&dataDir, "data-dir", "", "directory for the snapshot database and log")
	flag.BoolVar(&showVersion, "version", false, "show version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "navdeck - a navigation history stack you can watch\n\n")
		fmt.Fprintf(os.Stderr, "Usage: navdeck [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  navdeck                    # start at the home route\n")
		fmt.Fprintf(os.Stderr, "  navdeck -route /stack      # start on a specific page\n")
		fmt.Fprintf(os.Stderr, "  navdeck -theme nord        # use the nord theme\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("navdeck %s\n", version)
		os.Exit(0)
	}

	cfg, err := storage.LoadConfig()
	if err != nil {
		cfg = &storage.Config{}
		*cfg = storage.DefaultConfig()
	}

	// Flags override config.
	if themeName == "" {
		themeName = cfg.Theme
	}
	if startRoute == "" {
		startRoute = cfg.StartRoute
	}

	if !theme.Set(themeName) {
		fmt.Fprintf(os.Stderr, "Unknown theme: %s\nAvailable: default, gruvbox, nord, dracula\n", themeName)
		os.Exit(1)
	}

	if _, ok := pages.Lookup(startRoute); !ok {
		fmt.Fprintf(os.Stderr, "Unknown route: %s\n", startRoute)
		os.Exit(1)
	}

	if dataDir == "" {
		dataDir, err = storage.DataDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	db, err := storage.OpenDB(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	logger := openLogger(dataDir)

	m := app.New(storage.NewSnapshotStore(db), logger, startRoute)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger writes completion events to a log file in the data dir.
// Stderr is owned by the TUI, so a broken log file just means silence.
func openLogger(dataDir string) *slog.Logger {
	f, err := os.OpenFile(filepath.Join(dataDir, "navdeck.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	return slog.New(slog.NewTextHandler(f, nil))
}
