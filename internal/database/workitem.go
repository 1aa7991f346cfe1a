package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/util"
)

const itemColumns = `id, project_id, parent_id, sprint_id, milestone_id, title, description, status, priority, owner_ref, due_date, estimate, order_index, client_visible, created_at`

func scanWorkItem(row interface{ Scan(...interface{}) error }) (models.WorkItem, error) {
	var it models.WorkItem
	var visible int
	if err := row.Scan(
		&it.ID,
		&it.ProjectID,
		&it.ParentID,
		&it.SprintID,
		&it.MilestoneID,
		&it.Title,
		&it.Description,
		&it.Status,
		&it.Priority,
		&it.OwnerRef,
		&it.DueDate,
		&it.Estimate,
		&it.OrderIndex,
		&visible,
		&it.CreatedAt,
	); err != nil {
		return models.WorkItem{}, err
	}
	it.ClientVisible = visible == 1
	return it, nil
}

// ItemSeed carries the caller-supplied fields of a new work item.
type ItemSeed struct {
	Title         string
	Description   string
	Status        models.ItemStatus
	Priority      models.ItemPriority
	OwnerRef      string
	SprintID      int64
	MilestoneID   int64
	Estimate      *float64
	ClientVisible bool
}

// AddWorkItem inserts a new top-level item at the end of its status group.
// This is the quick-add path: title and destination column only.
func (d *Database) AddWorkItem(ctx context.Context, projectID int64, title string, status models.ItemStatus) (int64, error) {
	return d.AddWorkItemDetailed(ctx, projectID, ItemSeed{Title: title, Status: status})
}

// AddWorkItemDetailed inserts a new top-level item from a full seed.
func (d *Database) AddWorkItemDetailed(ctx context.Context, projectID int64, seed ItemSeed) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	seed.Title = strings.TrimSpace(seed.Title)
	if seed.Title == "" {
		return 0, wrapItemErr("add", 0, ErrMissingField)
	}
	if seed.Status == "" {
		seed.Status = models.StatusBacklog
	}
	if seed.Priority == "" {
		seed.Priority = models.PriorityMed
	}

	maxIdx, err := d.getMaxOrderIndex(ctx, projectID, seed.Status)
	if err != nil {
		return 0, wrapItemErr("add", 0, err)
	}

	res, err := d.DB.ExecContext(ctx, `INSERT INTO work_items
		(project_id, title, description, status, priority, owner_ref, sprint_id, milestone_id, estimate, order_index, client_visible)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		projectID,
		seed.Title,
		nullableString(strings.TrimSpace(seed.Description)),
		seed.Status,
		seed.Priority,
		nullableString(seed.OwnerRef),
		nullableInt64(seed.SprintID),
		nullableInt64(seed.MilestoneID),
		toNullableArg(seed.Estimate),
		maxIdx+1,
		util.BoolToInt(seed.ClientVisible),
	)
	if err != nil {
		return 0, wrapItemErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapItemErr("add", 0, err)
}

// AddSubItem inserts a new sub-item linked to a parent work item,
// inheriting its project, sprint, and milestone.
func (d *Database) AddSubItem(ctx context.Context, parentID int64, title string) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	title = strings.TrimSpace(title)
	if title == "" {
		return 0, wrapItemErr("add sub-item", parentID, ErrMissingField)
	}

	var projectID int64
	var sprintID, milestoneID *int64
	err := d.DB.QueryRowContext(ctx,
		"SELECT project_id, sprint_id, milestone_id FROM work_items WHERE id = ?", parentID).
		Scan(&projectID, &sprintID, &milestoneID)
	if err != nil {
		return 0, wrapItemErr("add sub-item", parentID, notFoundIfNoRows(err))
	}

	maxIdx, err := d.getMaxSubItemOrderIndex(ctx, parentID)
	if err != nil {
		return 0, wrapItemErr("add sub-item", parentID, err)
	}

	res, err := d.DB.ExecContext(ctx, `INSERT INTO work_items
		(project_id, parent_id, sprint_id, milestone_id, title, status, priority, order_index)
		VALUES (?, ?, ?, ?, ?, 'BACKLOG', 'MED', ?)`,
		projectID, parentID, sprintID, milestoneID, title, maxIdx+1)
	if err != nil {
		return 0, wrapItemErr("add sub-item", parentID, err)
	}
	id, err := res.LastInsertId()
	return id, wrapItemErr("add sub-item", parentID, err)
}

// GetWorkItem retrieves a single item by id.
func (d *Database) GetWorkItem(ctx context.Context, id int64) (models.WorkItem, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	row := d.DB.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM work_items WHERE id = ?", id)
	it, err := scanWorkItem(row)
	if err != nil {
		return models.WorkItem{}, wrapItemErr("get", id, notFoundIfNoRows(err))
	}
	return it, nil
}

// ItemUpdate carries partial field edits; nil fields are left untouched.
// Status and position edits go through MoveWorkItem, never through here.
type ItemUpdate struct {
	Title         *string
	Description   *string
	Priority      *models.ItemPriority
	OwnerRef      *string
	DueDate       *string // "2006-01-02", empty clears
	Estimate      *float64
	SprintID      *int64 // 0 clears
	MilestoneID   *int64 // 0 clears
	ClientVisible *bool
}

// UpdateWorkItem applies a partial edit to an existing item.
func (d *Database) UpdateWorkItem(ctx context.Context, id int64, upd ItemUpdate) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var sets []string
	var args []interface{}
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return wrapItemErr("update", id, ErrMissingField)
		}
		sets = append(sets, "title = ?")
		args = append(args, title)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(strings.TrimSpace(*upd.Description)))
	}
	if upd.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *upd.Priority)
	}
	if upd.OwnerRef != nil {
		sets = append(sets, "owner_ref = ?")
		args = append(args, nullableString(*upd.OwnerRef))
	}
	if upd.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableString(*upd.DueDate))
	}
	if upd.Estimate != nil {
		sets = append(sets, "estimate = ?")
		args = append(args, *upd.Estimate)
	}
	if upd.SprintID != nil {
		sets = append(sets, "sprint_id = ?")
		args = append(args, nullableInt64(*upd.SprintID))
	}
	if upd.MilestoneID != nil {
		sets = append(sets, "milestone_id = ?")
		args = append(args, nullableInt64(*upd.MilestoneID))
	}
	if upd.ClientVisible != nil {
		sets = append(sets, "client_visible = ?")
		args = append(args, util.BoolToInt(*upd.ClientVisible))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := d.DB.ExecContext(ctx, "UPDATE work_items SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return wrapItemErr("update", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapItemErr("update", id, err)
	}
	if affected == 0 {
		return wrapItemErr("update", id, ErrNotFound)
	}
	return nil
}

// DeleteWorkItem removes an item, its sub-items, and their comment forests,
// then closes the gap its group position leaves behind.
func (d *Database) DeleteWorkItem(ctx context.Context, id int64) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var projectID int64
		var parentID *int64
		var status models.ItemStatus
		var orderIdx int
		err := tx.QueryRowContext(ctx,
			"SELECT project_id, parent_id, status, order_index FROM work_items WHERE id = ?", id).
			Scan(&projectID, &parentID, &status, &orderIdx)
		if err != nil {
			return notFoundIfNoRows(err)
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM comments WHERE work_item_id = ? OR work_item_id IN (SELECT id FROM work_items WHERE parent_id = ?)",
			id, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM work_items WHERE parent_id = ?", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM work_items WHERE id = ?", id); err != nil {
			return err
		}

		// Keep the group's indices dense so positions match board rows.
		if parentID == nil {
			_, err = tx.ExecContext(ctx,
				"UPDATE work_items SET order_index = order_index - 1 WHERE project_id = ? AND status = ? AND parent_id IS NULL AND order_index > ?",
				projectID, status, orderIdx)
		} else {
			_, err = tx.ExecContext(ctx,
				"UPDATE work_items SET order_index = order_index - 1 WHERE parent_id = ? AND order_index > ?",
				*parentID, orderIdx)
		}
		return err
	})
	return wrapItemErr("delete", id, err)
}
