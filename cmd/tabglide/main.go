package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/calebmce/tabglide/internal/config"
	"github.com/calebmce/tabglide/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a tabglide.toml (optional)")
	initialTab := flag.String("tab", "", "select the tab best matching this query on startup")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tabglide: stdout is not a terminal")
		os.Exit(1)
	}

	if err := run(*configPath, *initialTab); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, initialTab string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	widget := ui.NewWidget(cfg)
	if initialTab != "" {
		widget.Bar().SelectByQuery(initialTab, false)
	}

	program := tea.NewProgram(widget, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if configPath != "" {
		g.Go(func() error {
			err := config.Watch(ctx, configPath, func(cfg config.Config) {
				program.Send(ui.ReloadMsg{Config: cfg})
			})
			if ctx.Err() != nil {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})

	return g.Wait()
}
