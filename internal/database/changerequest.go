package database

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// ChangeRequestSeed carries the caller-supplied fields of a new submission.
type ChangeRequestSeed struct {
	AuthorRef      string
	Title          string
	Details        string
	EstimatedHours *float64
	EstimateNotes  string
}

// AddChangeRequest inserts a submission. The weekly window check lives in
// the engine; the store only persists rows.
func (d *Database) AddChangeRequest(ctx context.Context, projectID int64, seed ChangeRequestSeed) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	seed.Title = strings.TrimSpace(seed.Title)
	if seed.Title == "" || strings.TrimSpace(seed.AuthorRef) == "" {
		return 0, wrapChangeRequestErr("add", 0, ErrMissingField)
	}

	res, err := d.DB.ExecContext(ctx, `INSERT INTO change_requests
		(project_id, author_ref, title, details, status, estimated_hours, estimate_notes)
		VALUES (?, ?, ?, ?, 'SUBMITTED', ?, ?)`,
		projectID,
		seed.AuthorRef,
		seed.Title,
		nullableString(strings.TrimSpace(seed.Details)),
		toNullableArg(seed.EstimatedHours),
		nullableString(strings.TrimSpace(seed.EstimateNotes)),
	)
	if err != nil {
		return 0, wrapChangeRequestErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapChangeRequestErr("add", 0, err)
}

// GetChangeRequests retrieves a project's submissions, newest first.
func (d *Database) GetChangeRequests(ctx context.Context, projectID int64) ([]models.ChangeRequest, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, project_id, author_ref, title, details, status, estimated_hours, estimate_notes, created_at
		FROM change_requests
		WHERE project_id = ?
		ORDER BY created_at DESC, id DESC`, projectID)
	if err != nil {
		return nil, wrapChangeRequestErr("list", 0, err)
	}
	defer rows.Close()

	var requests []models.ChangeRequest
	for rows.Next() {
		var cr models.ChangeRequest
		if err := rows.Scan(
			&cr.ID,
			&cr.ProjectID,
			&cr.AuthorRef,
			&cr.Title,
			&cr.Details,
			&cr.Status,
			&cr.EstimatedHours,
			&cr.EstimateNotes,
			&cr.CreatedAt,
		); err != nil {
			return nil, wrapChangeRequestErr("list", 0, err)
		}
		requests = append(requests, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapChangeRequestErr("list", 0, err)
	}
	return requests, nil
}

// GetSubmissionTimes returns the creation times of a project's submissions.
// The limiter is evaluated against these live rows at request time.
func (d *Database) GetSubmissionTimes(ctx context.Context, projectID int64) ([]time.Time, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx,
		"SELECT created_at FROM change_requests WHERE project_id = ? ORDER BY created_at ASC", projectID)
	if err != nil {
		return nil, wrapChangeRequestErr("submission times", 0, err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, wrapChangeRequestErr("submission times", 0, err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapChangeRequestErr("submission times", 0, err)
	}
	return times, nil
}

// UpdateChangeRequestStatus moves a submission through review.
func (d *Database) UpdateChangeRequestStatus(ctx context.Context, id int64, status models.ChangeRequestStatus) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, "UPDATE change_requests SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return wrapChangeRequestErr("update status", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapChangeRequestErr("update status", id, err)
	}
	if affected == 0 {
		return wrapChangeRequestErr("update status", id, ErrNotFound)
	}
	return nil
}
