package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/deliverydesk/internal/progress"
	"github.com/akyairhashvil/deliverydesk/internal/tui"
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Manage sprints",
}

var sprintCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a 14-day sprint starting today or at --start",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		start := time.Now()
		if s, _ := cmd.Flags().GetString("start"); s != "" {
			start, err = time.ParseInLocation("2006-01-02", s, time.Local)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
		}

		sprint, err := p.svc.CreateSprint(ctx, p.project.ID, args[0], start)
		if err != nil {
			return err
		}
		fmt.Printf("Created sprint #%d %q (%s)\n", sprint.ID, sprint.Name, tui.FormatSprintWindow(sprint))
		return nil
	},
}

var sprintListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sprints with item and time progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		sprints, err := p.svc.Sprints(ctx, p.project.ID)
		if err != nil {
			return err
		}
		if len(sprints) == 0 {
			fmt.Println("No sprints.")
			return nil
		}

		now := time.Now()
		for _, s := range sprints {
			total, completed, err := p.db.GetSprintItemCounts(ctx, s.ID)
			if err != nil {
				return err
			}
			marker := " "
			if s.Contains(now) {
				marker = "*"
			}
			fmt.Printf("%s #%d %-20s %s  %s  time %d%%\n",
				marker, s.ID, s.Name, tui.FormatSprintWindow(s),
				tui.FormatItemCount(completed, total), progress.SprintTimeProgress(s, now))
		}
		return nil
	},
}

func init() {
	sprintCreateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	sprintCmd.AddCommand(sprintCreateCmd)
	sprintCmd.AddCommand(sprintListCmd)
}
