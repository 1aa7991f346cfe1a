package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// MoveWorkItem places a top-level item at targetIndex within the
// targetStatus group of its project, shifting neighbors as needed.
//
// The whole move is one transaction against the latest persisted order, so
// concurrent editors cannot corrupt a group: the losing editor's drag simply
// lands relative to the order the winner left behind. Any status may follow
// any other; only the index is validated. Retrying an applied move with the
// same target is a no-op.
func (d *Database) MoveWorkItem(ctx context.Context, itemID int64, targetStatus models.ItemStatus, targetIndex int) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var projectID int64
		var parentID *int64
		var status models.ItemStatus
		var orderIdx int
		err := tx.QueryRowContext(ctx,
			"SELECT project_id, parent_id, status, order_index FROM work_items WHERE id = ?", itemID).
			Scan(&projectID, &parentID, &status, &orderIdx)
		if err != nil {
			return notFoundIfNoRows(err)
		}
		if parentID != nil {
			// Sub-items are ordered under their parent, not on the board.
			return ErrNotFound
		}

		destSize, err := countGroupTx(ctx, tx, projectID, targetStatus, itemID)
		if err != nil {
			return err
		}
		if targetIndex < 0 || targetIndex > destSize {
			return ErrIndexOutOfRange
		}

		if status == targetStatus {
			return moveWithinGroup(ctx, tx, itemID, projectID, status, orderIdx, targetIndex)
		}
		return moveAcrossGroups(ctx, tx, itemID, projectID, status, orderIdx, targetStatus, targetIndex)
	})
	return wrapItemErr("move", itemID, err)
}

func moveWithinGroup(ctx context.Context, tx *sql.Tx, itemID, projectID int64, status models.ItemStatus, oldIdx, newIdx int) error {
	if oldIdx == newIdx {
		return nil
	}
	var err error
	if newIdx > oldIdx {
		// Moving down: the items between slide up one.
		_, err = tx.ExecContext(ctx, `UPDATE work_items SET order_index = order_index - 1
			WHERE project_id = ? AND status = ? AND parent_id IS NULL AND order_index > ? AND order_index <= ?`,
			projectID, status, oldIdx, newIdx)
	} else {
		// Moving up: the items between slide down one.
		_, err = tx.ExecContext(ctx, `UPDATE work_items SET order_index = order_index + 1
			WHERE project_id = ? AND status = ? AND parent_id IS NULL AND order_index >= ? AND order_index < ?`,
			projectID, status, newIdx, oldIdx)
	}
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, "UPDATE work_items SET order_index = ? WHERE id = ?", newIdx, itemID)
	return err
}

func moveAcrossGroups(ctx context.Context, tx *sql.Tx, itemID, projectID int64, srcStatus models.ItemStatus, oldIdx int, destStatus models.ItemStatus, newIdx int) error {
	// Close the gap left in the source group.
	if _, err := tx.ExecContext(ctx, `UPDATE work_items SET order_index = order_index - 1
		WHERE project_id = ? AND status = ? AND parent_id IS NULL AND order_index > ?`,
		projectID, srcStatus, oldIdx); err != nil {
		return err
	}
	// Open a slot in the destination group.
	if _, err := tx.ExecContext(ctx, `UPDATE work_items SET order_index = order_index + 1
		WHERE project_id = ? AND status = ? AND parent_id IS NULL AND order_index >= ?`,
		projectID, destStatus, newIdx); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "UPDATE work_items SET status = ?, order_index = ? WHERE id = ?",
		destStatus, newIdx, itemID)
	return err
}
