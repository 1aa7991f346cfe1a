package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/progress"
	"github.com/akyairhashvil/deliverydesk/internal/testutil"
	"github.com/akyairhashvil/deliverydesk/internal/util"
)

func TestFormatItemCount(t *testing.T) {
	if got := FormatItemCount(0, 0); got != "No items" {
		t.Errorf("expected No items, got %q", got)
	}
	if got := FormatItemCount(2, 5); got != "2/5 items" {
		t.Errorf("expected 2/5 items, got %q", got)
	}
}

func TestFormatSummaryDistinguishesEmptyFromZero(t *testing.T) {
	empty := progress.Summary{}
	if got := FormatSummary(empty); got != "No items" {
		t.Errorf("expected No items, got %q", got)
	}

	zero := progress.Summary{Total: 3, Percent: util.Ptr(0)}
	if got := FormatSummary(zero); got != "0% (0/3)" {
		t.Errorf("expected 0%% (0/3), got %q", got)
	}
}

func TestFormatColumnTitle(t *testing.T) {
	if got := FormatColumnTitle(models.StatusInProgress, 3); got != "In Progress (3)" {
		t.Errorf("unexpected title %q", got)
	}
	if got := FormatColumnTitle(models.StatusQA, 0); got != "QA (0)" {
		t.Errorf("unexpected title %q", got)
	}
}

func TestFormatDue(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	if got := FormatDue(nil, now); got != "" {
		t.Errorf("expected empty for nil due date, got %q", got)
	}
	soon := now.Add(48 * time.Hour)
	if got := FormatDue(&soon, now); got != "due in 2d" {
		t.Errorf("expected due in 2d, got %q", got)
	}
	past := now.Add(-72 * time.Hour)
	if got := FormatDue(&past, now); got != "overdue 3d" {
		t.Errorf("expected overdue 3d, got %q", got)
	}
	today := now.Add(2 * time.Hour)
	if got := FormatDue(&today, now); got != "due today" {
		t.Errorf("expected due today, got %q", got)
	}
}

func TestFormatSprintWindow(t *testing.T) {
	s := testutil.NewSprint().WithWindow(
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)).Build()
	if got := FormatSprintWindow(s); got != "Mar 2 - Mar 16" {
		t.Errorf("unexpected window %q", got)
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	if got := themeByName("nope"); got.Name != "Default" {
		t.Errorf("expected fallback to default theme, got %q", got.Name)
	}
	if got := themeByName("mono"); got.Name != "Mono" {
		t.Errorf("expected mono theme, got %q", got.Name)
	}
}
