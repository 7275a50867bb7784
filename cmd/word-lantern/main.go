//go:build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/word-lantern/internal/gui"
	"github.com/appengine-ltd/word-lantern/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		noMenu      bool
		seed        int64
		columns     int
		wordsFile   string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&noMenu, "no-menu", false, "skip the launcher menu and start the game directly")
	flag.Int64Var(&seed, "seed", 0, "simulation seed (0 picks one at start)")
	flag.IntVar(&columns, "columns", 24, "grid column count")
	flag.StringVar(&wordsFile, "words", "", "path to a JSON word-list file")
	flag.Parse()

	if showVersion {
		fmt.Printf("Word Lantern %s (%s) %s\n", version, commit, date)
		return
	}

	if !noMenu {
		launch, err := ui.NewApp(ui.AppConfig{
			Version: version,
			Seed:    seed,
			Columns: columns,
		}).Run()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if !launch.Start {
			return
		}
		seed = launch.Seed
		columns = launch.Columns
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Seed:      seed,
		WordsFile: wordsFile,
		Columns:   columns,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
