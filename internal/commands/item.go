package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/deliverydesk/internal/database"
	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/util"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Create and edit work items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a work item with full details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		seed := database.ItemSeed{Title: args[0]}
		seed.Description, _ = cmd.Flags().GetString("desc")
		seed.OwnerRef, _ = cmd.Flags().GetString("owner")
		seed.SprintID, _ = cmd.Flags().GetInt64("sprint")
		seed.MilestoneID, _ = cmd.Flags().GetInt64("milestone")

		if status, _ := cmd.Flags().GetString("status"); status != "" {
			seed.Status, err = parseStatus(status)
			if err != nil {
				return err
			}
		}
		if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
			seed.Priority, err = parsePriority(priority)
			if err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("estimate") {
			est, _ := cmd.Flags().GetFloat64("estimate")
			seed.Estimate = util.Ptr(est)
		}
		seed.ClientVisible = p.cfg.ClientVisible
		if cmd.Flags().Changed("client") {
			seed.ClientVisible, _ = cmd.Flags().GetBool("client")
		}

		it, err := p.svc.CreateWorkItem(ctx, p.project.ID, seed)
		if err != nil {
			return err
		}
		fmt.Printf("Created #%d [%s] %s\n", it.ID, it.Status, it.Title)
		return nil
	},
}

var itemEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a work item's fields",
	Long: `Only the flags given are changed; status and board position are
moved on the board, not edited here.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parse item id: %w", err)
		}

		var upd database.ItemUpdate
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			upd.Title = util.Ptr(v)
		}
		if cmd.Flags().Changed("desc") {
			v, _ := cmd.Flags().GetString("desc")
			upd.Description = util.Ptr(v)
		}
		if cmd.Flags().Changed("priority") {
			v, _ := cmd.Flags().GetString("priority")
			pr, err := parsePriority(v)
			if err != nil {
				return err
			}
			upd.Priority = util.Ptr(pr)
		}
		if cmd.Flags().Changed("owner") {
			v, _ := cmd.Flags().GetString("owner")
			upd.OwnerRef = util.Ptr(v)
		}
		if cmd.Flags().Changed("due") {
			v, _ := cmd.Flags().GetString("due")
			upd.DueDate = util.Ptr(v)
		}
		if cmd.Flags().Changed("estimate") {
			v, _ := cmd.Flags().GetFloat64("estimate")
			upd.Estimate = util.Ptr(v)
		}
		if cmd.Flags().Changed("sprint") {
			v, _ := cmd.Flags().GetInt64("sprint")
			upd.SprintID = util.Ptr(v)
		}
		if cmd.Flags().Changed("milestone") {
			v, _ := cmd.Flags().GetInt64("milestone")
			upd.MilestoneID = util.Ptr(v)
		}
		if cmd.Flags().Changed("client") {
			v, _ := cmd.Flags().GetBool("client")
			upd.ClientVisible = util.Ptr(v)
		}

		if err := p.svc.UpdateWorkItem(ctx, id, upd); err != nil {
			return err
		}
		fmt.Printf("Updated #%d\n", id)
		return nil
	},
}

var itemSubCmd = &cobra.Command{
	Use:   "sub [parent-id] [title]",
	Short: "Add a sub-item under a work item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		parentID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parse parent id: %w", err)
		}
		id, err := p.db.AddSubItem(ctx, parentID, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Created sub-item #%d under #%d\n", id, parentID)
		return nil
	},
}

func parseStatus(s string) (models.ItemStatus, error) {
	status := models.ItemStatus(s)
	for _, known := range models.BoardColumns {
		if status == known {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

func parsePriority(s string) (models.ItemPriority, error) {
	switch pr := models.ItemPriority(s); pr {
	case models.PriorityLow, models.PriorityMed, models.PriorityHigh, models.PriorityUrgent:
		return pr, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

func init() {
	itemAddCmd.Flags().String("desc", "", "Description")
	itemAddCmd.Flags().String("status", "", "Destination column (BACKLOG, PLANNED, IN_PROGRESS, QA, BLOCKED, DONE)")
	itemAddCmd.Flags().String("priority", "", "Priority (LOW, MED, HIGH, URGENT)")
	itemAddCmd.Flags().String("owner", "", "Owner reference")
	itemAddCmd.Flags().Int64("sprint", 0, "Sprint id")
	itemAddCmd.Flags().Int64("milestone", 0, "Milestone id")
	itemAddCmd.Flags().Float64("estimate", 0, "Estimated hours")
	itemAddCmd.Flags().Bool("client", false, "Visible to the client")

	itemEditCmd.Flags().String("title", "", "New title")
	itemEditCmd.Flags().String("desc", "", "New description")
	itemEditCmd.Flags().String("priority", "", "Priority (LOW, MED, HIGH, URGENT)")
	itemEditCmd.Flags().String("owner", "", "Owner reference (empty clears)")
	itemEditCmd.Flags().String("due", "", "Due date YYYY-MM-DD (empty clears)")
	itemEditCmd.Flags().Float64("estimate", 0, "Estimated hours")
	itemEditCmd.Flags().Int64("sprint", 0, "Sprint id (0 clears)")
	itemEditCmd.Flags().Int64("milestone", 0, "Milestone id (0 clears)")
	itemEditCmd.Flags().Bool("client", false, "Visible to the client")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemEditCmd)
	itemCmd.AddCommand(itemSubCmd)
}
