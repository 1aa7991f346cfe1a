package database

import (
	"context"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

func (d *Database) queryItems(ctx context.Context, op string, query string, args ...interface{}) ([]models.WorkItem, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapItemErr(op, 0, err)
	}
	defer rows.Close()

	var items []models.WorkItem
	for rows.Next() {
		it, err := scanWorkItem(rows)
		if err != nil {
			return nil, wrapItemErr(op, 0, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapItemErr(op, 0, err)
	}
	return items, nil
}

// GetBoardItems retrieves all top-level items of a project in board order.
func (d *Database) GetBoardItems(ctx context.Context, projectID int64) ([]models.WorkItem, error) {
	query, args := NewItemQuery().
		WhereProject(projectID).
		WhereTopLevel().
		OrderBy("status ASC, order_index ASC").
		Build()
	return d.queryItems(ctx, "board list", query, args...)
}

// GetStatusGroup retrieves one (project, status) column in position order.
func (d *Database) GetStatusGroup(ctx context.Context, projectID int64, status models.ItemStatus) ([]models.WorkItem, error) {
	query, args := NewItemQuery().
		WhereProject(projectID).
		WhereStatus(status).
		WhereTopLevel().
		OrderBy("order_index ASC").
		Build()
	return d.queryItems(ctx, "group list", query, args...)
}

// GetItemsForProject retrieves every top-level item of a project.
func (d *Database) GetItemsForProject(ctx context.Context, projectID int64) ([]models.WorkItem, error) {
	query, args := NewItemQuery().
		WhereProject(projectID).
		WhereTopLevel().
		OrderBy("created_at ASC, id ASC").
		Build()
	return d.queryItems(ctx, "project list", query, args...)
}

// GetItemsForSprint retrieves the items currently referencing a sprint.
func (d *Database) GetItemsForSprint(ctx context.Context, sprintID int64) ([]models.WorkItem, error) {
	query, args := NewItemQuery().
		WhereSprint(sprintID).
		WhereTopLevel().
		OrderBy("order_index ASC, created_at ASC").
		Build()
	return d.queryItems(ctx, "sprint list", query, args...)
}

// GetItemsForMilestone retrieves the items currently referencing a milestone.
func (d *Database) GetItemsForMilestone(ctx context.Context, milestoneID int64) ([]models.WorkItem, error) {
	query, args := NewItemQuery().
		WhereMilestone(milestoneID).
		WhereTopLevel().
		OrderBy("order_index ASC, created_at ASC").
		Build()
	return d.queryItems(ctx, "milestone list", query, args...)
}

// GetSubItems retrieves a parent's sub-items in position order.
func (d *Database) GetSubItems(ctx context.Context, parentID int64) ([]models.WorkItem, error) {
	query, args := NewItemQuery().
		Where("parent_id = ?", parentID).
		OrderBy("order_index ASC").
		Build()
	return d.queryItems(ctx, "sub-item list", query, args...)
}

// GetClientVisibleItems retrieves the items a client user may see.
func (d *Database) GetClientVisibleItems(ctx context.Context, projectID int64) ([]models.WorkItem, error) {
	query, args := NewItemQuery().
		WhereProject(projectID).
		WhereTopLevel().
		Where("client_visible = 1").
		OrderBy("status ASC, order_index ASC").
		Build()
	return d.queryItems(ctx, "client list", query, args...)
}
