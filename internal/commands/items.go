package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/tui"
)

var itemsCmd = &cobra.Command{
	Use:   "items [parent-id]",
	Short: "List work items, or the sub-items of one item",
	Long: `Without arguments, items lists the project's board in column order.
With --client, only client-visible items are shown, matching what the
portal exposes. With a parent id, its sub-items are listed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		if len(args) == 1 {
			parentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse parent id: %w", err)
			}
			subs, err := p.db.GetSubItems(ctx, parentID)
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				fmt.Println("No sub-items.")
				return nil
			}
			for _, it := range subs {
				fmt.Printf("  #%d [%s] %s\n", it.ID, it.Status, it.Title)
			}
			return nil
		}

		clientView, _ := cmd.Flags().GetBool("client")
		statusFilter, _ := cmd.Flags().GetString("status")
		var items []models.WorkItem
		switch {
		case statusFilter != "":
			status, perr := parseStatus(statusFilter)
			if perr != nil {
				return perr
			}
			items, err = p.db.GetStatusGroup(ctx, p.project.ID, status)
		case clientView:
			items, err = p.db.GetClientVisibleItems(ctx, p.project.ID)
		default:
			items, err = p.db.GetBoardItems(ctx, p.project.ID)
		}
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No items.")
			return nil
		}

		byStatus := make(map[models.ItemStatus][]models.WorkItem)
		for _, it := range items {
			byStatus[it.Status] = append(byStatus[it.Status], it)
		}
		for _, status := range models.BoardColumns {
			group := byStatus[status]
			if len(group) == 0 {
				continue
			}
			fmt.Println(tui.FormatColumnTitle(status, len(group)))
			for _, it := range group {
				fmt.Printf("  #%d [%s] %s\n", it.ID, it.Priority, it.Title)
			}
		}
		return nil
	},
}

func init() {
	itemsCmd.Flags().Bool("client", false, "Show only client-visible items")
	itemsCmd.Flags().String("status", "", "Show a single column (BACKLOG, PLANNED, IN_PROGRESS, QA, BLOCKED, DONE)")
}
