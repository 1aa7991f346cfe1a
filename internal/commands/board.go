package commands

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/deliverydesk/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive kanban board",
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	p, err := openPortal(ctx)
	if err != nil {
		return err
	}
	defer p.close()

	author := os.Getenv("USER")
	if author == "" {
		author = "team"
	}

	model := tui.NewBoardModel(ctx, p.svc, p.project.ID, author, p.cfg.Theme)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}
