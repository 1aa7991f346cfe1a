package database

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/config"
	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// CreateSprint inserts a sprint with its end date derived from the start
// date. The duration is fixed; callers never supply an end date.
func (d *Database) CreateSprint(ctx context.Context, projectID int64, name string, startDate time.Time) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, wrapSprintErr("create", 0, ErrMissingField)
	}
	endDate := startDate.Add(config.SprintDuration)

	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO sprints (project_id, name, start_date, end_date) VALUES (?, ?, ?, ?)",
		projectID, name, startDate, endDate)
	if err != nil {
		return 0, wrapSprintErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapSprintErr("create", 0, err)
}

// GetSprint retrieves a single sprint by id.
func (d *Database) GetSprint(ctx context.Context, id int64) (models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var s models.Sprint
	err := d.DB.QueryRowContext(ctx,
		"SELECT id, project_id, name, start_date, end_date FROM sprints WHERE id = ?", id).
		Scan(&s.ID, &s.ProjectID, &s.Name, &s.StartDate, &s.EndDate)
	if err != nil {
		return models.Sprint{}, wrapSprintErr("get", id, notFoundIfNoRows(err))
	}
	return s, nil
}

// GetSprints retrieves all sprints for a project, oldest first.
func (d *Database) GetSprints(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, project_id, name, start_date, end_date
		FROM sprints
		WHERE project_id = ?
		ORDER BY start_date ASC, id ASC`, projectID)
	if err != nil {
		return nil, wrapSprintErr("list", 0, err)
	}
	defer rows.Close()

	var sprints []models.Sprint
	for rows.Next() {
		var s models.Sprint
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.Name, &s.StartDate, &s.EndDate); err != nil {
			return nil, wrapSprintErr("list", 0, err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSprintErr("list", 0, err)
	}
	return sprints, nil
}

// GetSprintItemCounts returns (total, completed) for the items referencing a
// sprint. Progress percentages are always derived from these live counts.
func (d *Database) GetSprintItemCounts(ctx context.Context, sprintID int64) (int, int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var total int
	if err := d.DB.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM work_items WHERE sprint_id = ? AND parent_id IS NULL", sprintID).Scan(&total); err != nil {
		return 0, 0, wrapSprintErr("counts", sprintID, err)
	}
	var completed int
	if err := d.DB.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM work_items WHERE sprint_id = ? AND parent_id IS NULL AND status = 'DONE'", sprintID).Scan(&completed); err != nil {
		return 0, 0, wrapSprintErr("counts", sprintID, err)
	}
	return total, completed, nil
}
