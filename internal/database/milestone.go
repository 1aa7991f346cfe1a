package database

import (
	"context"
	"strings"

	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/util"
)

// CreateMilestone appends a milestone at the end of the project's sequence.
func (d *Database) CreateMilestone(ctx context.Context, projectID int64, title string, requiresApproval bool) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	title = strings.TrimSpace(title)
	if title == "" {
		return 0, wrapMilestoneErr("create", 0, ErrMissingField)
	}

	var maxIdx int
	if err := d.DB.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(order_index), -1) FROM milestones WHERE project_id = ?", projectID).Scan(&maxIdx); err != nil {
		return 0, wrapMilestoneErr("create", 0, err)
	}

	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO milestones (project_id, title, order_index, requires_client_approval, approval_status) VALUES (?, ?, ?, ?, 'PENDING')",
		projectID, title, maxIdx+1, util.BoolToInt(requiresApproval))
	if err != nil {
		return 0, wrapMilestoneErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapMilestoneErr("create", 0, err)
}

func scanMilestone(row interface{ Scan(...interface{}) error }) (models.Milestone, error) {
	var m models.Milestone
	var requires int
	if err := row.Scan(
		&m.ID,
		&m.ProjectID,
		&m.Title,
		&m.OrderIndex,
		&requires,
		&m.ApprovalStatus,
		&m.ApprovalNotes,
	); err != nil {
		return models.Milestone{}, err
	}
	m.RequiresClientApproval = requires == 1
	return m, nil
}

// GetMilestone retrieves a single milestone by id.
func (d *Database) GetMilestone(ctx context.Context, id int64) (models.Milestone, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	row := d.DB.QueryRowContext(ctx, `
		SELECT id, project_id, title, order_index, requires_client_approval, approval_status, approval_notes
		FROM milestones WHERE id = ?`, id)
	m, err := scanMilestone(row)
	if err != nil {
		return models.Milestone{}, wrapMilestoneErr("get", id, notFoundIfNoRows(err))
	}
	return m, nil
}

// GetMilestones retrieves a project's milestones in sequence order.
func (d *Database) GetMilestones(ctx context.Context, projectID int64) ([]models.Milestone, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, project_id, title, order_index, requires_client_approval, approval_status, approval_notes
		FROM milestones
		WHERE project_id = ?
		ORDER BY order_index ASC`, projectID)
	if err != nil {
		return nil, wrapMilestoneErr("list", 0, err)
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, wrapMilestoneErr("list", 0, err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapMilestoneErr("list", 0, err)
	}
	return milestones, nil
}

// SetMilestoneApproval records a client approval decision and its notes.
func (d *Database) SetMilestoneApproval(ctx context.Context, id int64, status models.ApprovalStatus, notes string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx,
		"UPDATE milestones SET approval_status = ?, approval_notes = ? WHERE id = ?",
		status, nullableString(strings.TrimSpace(notes)), id)
	if err != nil {
		return wrapMilestoneErr("set approval", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapMilestoneErr("set approval", id, err)
	}
	if affected == 0 {
		return wrapMilestoneErr("set approval", id, ErrNotFound)
	}
	return nil
}
