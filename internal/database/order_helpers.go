package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// getMaxOrderIndex returns the highest order index for top-level items in a
// (project, status) group, or -1 when the group is empty.
func (d *Database) getMaxOrderIndex(ctx context.Context, projectID int64, status models.ItemStatus) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var maxIdx int
	query := "SELECT COALESCE(MAX(order_index), -1) FROM work_items WHERE project_id = ? AND status = ? AND parent_id IS NULL"
	err := d.DB.QueryRowContext(ctx, query, projectID, status).Scan(&maxIdx)
	return maxIdx, err
}

// getMaxSubItemOrderIndex returns the highest order index among a parent's
// sub-items, or -1 when it has none.
func (d *Database) getMaxSubItemOrderIndex(ctx context.Context, parentID int64) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var maxIdx int
	query := "SELECT COALESCE(MAX(order_index), -1) FROM work_items WHERE parent_id = ?"
	err := d.DB.QueryRowContext(ctx, query, parentID).Scan(&maxIdx)
	return maxIdx, err
}

// countGroupTx counts top-level items in a (project, status) group inside a
// transaction, optionally excluding one item id.
func countGroupTx(ctx context.Context, tx *sql.Tx, projectID int64, status models.ItemStatus, excludeID int64) (int, error) {
	var count int
	query := "SELECT COUNT(1) FROM work_items WHERE project_id = ? AND status = ? AND parent_id IS NULL AND id != ?"
	err := tx.QueryRowContext(ctx, query, projectID, status, excludeID).Scan(&count)
	return count, err
}
