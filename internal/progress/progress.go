// Package progress derives completion and time-window percentages from
// live work-item state. Nothing here mutates anything: every summary is
// recomputed from the filtered item set on each call, never cached and
// never assembled from pre-aggregated child percentages.
package progress

import (
	"math"
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/util"
)

// Summary is the completion rollup for a set of work items. Percent is nil
// when there is nothing to measure, which callers must render differently
// from "0% complete with items present".
type Summary struct {
	Completed int
	Total     int
	Percent   *int
}

// Summarize counts DONE items in the given set.
func Summarize(items []models.WorkItem) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		if it.Status == models.StatusDone {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percent = util.Ptr(roundPercent(s.Completed, s.Total))
	}
	return s
}

func roundPercent(part, whole int) int {
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// SprintTimeProgress reports how far through its window a sprint is at the
// given instant, clamped to [0, 100]: future sprints read 0, finished
// sprints read 100.
func SprintTimeProgress(sprint models.Sprint, now time.Time) int {
	duration := sprint.EndDate.Sub(sprint.StartDate)
	if duration <= 0 {
		return 100
	}
	elapsed := now.Sub(sprint.StartDate)
	pct := int(math.Round(100 * float64(elapsed) / float64(duration)))
	return util.Clamp(pct, 0, 100)
}

// ActiveSprint selects the sprint whose window contains now. There is no
// stored "active" flag and overlap is not prevented in storage, so ties go
// to the most recently started sprint.
func ActiveSprint(sprints []models.Sprint, now time.Time) (models.Sprint, bool) {
	var active models.Sprint
	found := false
	for _, s := range sprints {
		if !s.Contains(now) {
			continue
		}
		if !found || s.StartDate.After(active.StartDate) {
			active = s
			found = true
		}
	}
	return active, found
}
