package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/progress"
)

// FormatItemCount formats completion counts for display.
func FormatItemCount(completed, total int) string {
	if total == 0 {
		return "No items"
	}
	return fmt.Sprintf("%d/%d items", completed, total)
}

// FormatSummary renders a progress rollup, distinguishing "nothing to
// measure" from a measured zero.
func FormatSummary(s progress.Summary) string {
	if s.Percent == nil {
		return "No items"
	}
	return fmt.Sprintf("%d%% (%d/%d)", *s.Percent, s.Completed, s.Total)
}

// FormatColumnTitle renders a board column header.
func FormatColumnTitle(status models.ItemStatus, count int) string {
	return fmt.Sprintf("%s (%d)", columnLabel(status), count)
}

func columnLabel(status models.ItemStatus) string {
	switch status {
	case models.StatusBacklog:
		return "Backlog"
	case models.StatusPlanned:
		return "Planned"
	case models.StatusInProgress:
		return "In Progress"
	case models.StatusQA:
		return "QA"
	case models.StatusBlocked:
		return "Blocked"
	case models.StatusDone:
		return "Done"
	}
	return string(status)
}

// FormatDue renders a due date relative to today.
func FormatDue(due *time.Time, now time.Time) string {
	if due == nil {
		return ""
	}
	days := int(due.Sub(now).Hours() / 24)
	switch {
	case days < 0:
		return fmt.Sprintf("overdue %dd", -days)
	case days == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %dd", days)
	}
}

// FormatSprintWindow renders a sprint's date range.
func FormatSprintWindow(s models.Sprint) string {
	return fmt.Sprintf("%s - %s", s.StartDate.Format("Jan 2"), s.EndDate.Format("Jan 2"))
}
