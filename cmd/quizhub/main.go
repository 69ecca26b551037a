package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizhub/internal/client"
	"quizhub/internal/config"
	"quizhub/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	quizClient := client.NewQuizClient(cfg.Client.BaseURL)
	model := tui.NewModel(quizClient, tui.Options{
		NoColor: os.Getenv("NO_COLOR") != "",
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run ui: %v\n", err)
		os.Exit(1)
	}
}
