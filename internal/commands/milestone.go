package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/deliverydesk/internal/engine"
	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/tui"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Manage milestones and client approvals",
}

var milestoneAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a milestone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		requiresApproval, _ := cmd.Flags().GetBool("approval")
		ms, err := p.svc.CreateMilestone(ctx, p.project.ID, args[0], requiresApproval)
		if err != nil {
			return err
		}
		fmt.Printf("Created milestone #%d %q\n", ms.ID, ms.Title)
		return nil
	},
}

var milestoneListCmd = &cobra.Command{
	Use:   "list",
	Short: "List milestones with progress and approval state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		milestones, err := p.svc.Milestones(ctx, p.project.ID)
		if err != nil {
			return err
		}
		if len(milestones) == 0 {
			fmt.Println("No milestones.")
			return nil
		}
		for _, ms := range milestones {
			summary, err := p.svc.ComputeProgress(ctx, engine.Scope{Kind: engine.ScopeMilestone, ID: ms.ID})
			if err != nil {
				return err
			}
			line := fmt.Sprintf("#%d %-24s %s", ms.ID, ms.Title, tui.FormatSummary(summary))
			if ms.RequiresClientApproval {
				line += fmt.Sprintf("  [%s]", ms.ApprovalStatus)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var milestoneApproveCmd = &cobra.Command{
	Use:   "approve [id]",
	Short: "Record a client approval decision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parse milestone id: %w", err)
		}

		status := models.ApprovalApproved
		if changes, _ := cmd.Flags().GetBool("request-changes"); changes {
			status = models.ApprovalChangesRequested
		}
		notes, _ := cmd.Flags().GetString("notes")

		if err := p.svc.SetMilestoneApproval(ctx, id, status, notes); err != nil {
			return err
		}
		fmt.Printf("Milestone #%d marked %s\n", id, status)
		return nil
	},
}

func init() {
	milestoneAddCmd.Flags().Bool("approval", false, "Require client approval for this milestone")
	milestoneApproveCmd.Flags().Bool("request-changes", false, "Mark as changes requested instead of approved")
	milestoneApproveCmd.Flags().String("notes", "", "Approval notes")
	milestoneCmd.AddCommand(milestoneAddCmd)
	milestoneCmd.AddCommand(milestoneListCmd)
	milestoneCmd.AddCommand(milestoneApproveCmd)
}
