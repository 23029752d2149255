package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive note window",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()

		model := tui.New(store, slog.Default())
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			fatal("Window failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
