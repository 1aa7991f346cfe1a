package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/deliverydesk/internal/database"
	"github.com/akyairhashvil/deliverydesk/internal/engine"
	"github.com/akyairhashvil/deliverydesk/internal/models"
)

var crCmd = &cobra.Command{
	Use:   "cr",
	Short: "Manage client change requests",
}

var crSubmitCmd = &cobra.Command{
	Use:   "submit [title]",
	Short: "Submit a change request (one per calendar week)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		author, _ := cmd.Flags().GetString("author")
		if author == "" {
			author = os.Getenv("USER")
		}
		details, _ := cmd.Flags().GetString("details")

		seed := database.ChangeRequestSeed{
			AuthorRef: author,
			Title:     args[0],
			Details:   details,
		}
		id, err := p.svc.SubmitChangeRequest(ctx, p.project.ID, seed, time.Now())
		var limited *engine.RateLimitedError
		if errors.As(err, &limited) {
			fmt.Printf("This week's change request has already been used. Next available: %s\n",
				limited.NextAvailableAt.Format("Monday, Jan 2"))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Submitted change request #%d\n", id)
		return nil
	},
}

var crListCmd = &cobra.Command{
	Use:   "list",
	Short: "List change requests, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		requests, err := p.svc.ChangeRequests(ctx, p.project.ID)
		if err != nil {
			return err
		}
		if len(requests) == 0 {
			fmt.Println("No change requests.")
			return nil
		}
		for _, cr := range requests {
			fmt.Printf("#%d [%s] %s (%s, %s)\n",
				cr.ID, cr.Status, cr.Title, cr.AuthorRef, cr.CreatedAt.Format("2006-01-02"))
		}

		decision, err := p.svc.CheckSubmissionAllowed(ctx, p.project.ID, time.Now())
		if err != nil {
			return err
		}
		if decision.Allowed {
			fmt.Println("\nThis week's submission is available.")
		} else {
			fmt.Printf("\nNext submission available: %s\n", decision.NextAvailableAt.Format("Monday, Jan 2"))
		}
		return nil
	},
}

var crReviewCmd = &cobra.Command{
	Use:   "review [id] [status]",
	Short: "Set a change request's review status",
	Long:  "Status is one of: IN_REVIEW, ACCEPTED, DECLINED.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parse change request id: %w", err)
		}
		status := models.ChangeRequestStatus(args[1])
		switch status {
		case models.ChangeRequestInReview, models.ChangeRequestAccepted, models.ChangeRequestDeclined:
		default:
			return fmt.Errorf("invalid status %q", args[1])
		}

		if err := p.svc.ReviewChangeRequest(ctx, id, status); err != nil {
			return err
		}
		fmt.Printf("Change request #%d marked %s\n", id, status)
		return nil
	},
}

func init() {
	crSubmitCmd.Flags().String("author", "", "Author reference (defaults to $USER)")
	crSubmitCmd.Flags().String("details", "", "Request details")
	crCmd.AddCommand(crSubmitCmd)
	crCmd.AddCommand(crListCmd)
	crCmd.AddCommand(crReviewCmd)
}
