package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"deckview/internal/config"
	"deckview/internal/infra/logx"
	"deckview/internal/ui"
)

var version = "dev"

func main() {
	var (
		theme   string
		noWatch bool
		debug   bool
	)

	root := &cobra.Command{
		Use:   "deckview [deck]",
		Short: "Present markdown slide decks in the terminal",
		Long: "deckview renders a markdown deck (a file of ----separated slides,\n" +
			"or a directory of numbered .md files) as a browsable list and a\n" +
			"full-screen presentation.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultPath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if theme != "" {
				cfg.Theme = theme
			}
			if noWatch {
				off := false
				cfg.Watch = &off
			}

			if debug || len(os.Getenv("DEBUG")) > 0 {
				f, err := logx.ToFile("debug.log")
				if err != nil {
					return fmt.Errorf("debug log: %w", err)
				}
				defer f.Close()
			}

			_, err = tea.NewProgram(
				ui.NewModel(cfg, args[0]),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			).Run()
			return err
		},
	}
	root.Flags().StringVar(&theme, "theme", "", "glamour style name or path (overrides config)")
	root.Flags().BoolVar(&noWatch, "no-watch", false, "disable live reload on deck changes")
	root.Flags().BoolVar(&debug, "debug", false, "write debug logs to debug.log")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the deckview version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("deckview", version)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
