package database

import (
	"context"
	"strings"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// AddComment appends a comment to a work item. When parentID is non-nil it
// must reference an existing comment on the same work item; the new comment
// becomes the last child of that parent. Comments are append-only.
func (d *Database) AddComment(ctx context.Context, workItemID int64, authorRef, content string, parentID *int64) (models.Comment, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	content = strings.TrimSpace(content)
	if content == "" || strings.TrimSpace(authorRef) == "" {
		return models.Comment{}, wrapCommentErr("add", 0, ErrMissingField)
	}

	var exists int
	if err := d.DB.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM work_items WHERE id = ?", workItemID).Scan(&exists); err != nil {
		return models.Comment{}, wrapCommentErr("add", 0, err)
	}
	if exists == 0 {
		return models.Comment{}, wrapCommentErr("add", 0, ErrNotFound)
	}

	if parentID != nil {
		var parentItem int64
		err := d.DB.QueryRowContext(ctx,
			"SELECT work_item_id FROM comments WHERE id = ?", *parentID).Scan(&parentItem)
		if err != nil {
			return models.Comment{}, wrapCommentErr("add", *parentID, notFoundIfNoRows(err))
		}
		if parentItem != workItemID {
			return models.Comment{}, wrapCommentErr("add", *parentID, ErrNotFound)
		}
	}

	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO comments (work_item_id, parent_id, author_ref, content) VALUES (?, ?, ?, ?)",
		workItemID, toNullableArg(parentID), authorRef, content)
	if err != nil {
		return models.Comment{}, wrapCommentErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Comment{}, wrapCommentErr("add", 0, err)
	}
	return d.GetComment(ctx, id)
}

// GetComment retrieves a single comment by id.
func (d *Database) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var c models.Comment
	err := d.DB.QueryRowContext(ctx, `
		SELECT id, work_item_id, parent_id, author_ref, content, created_at
		FROM comments WHERE id = ?`, id).
		Scan(&c.ID, &c.WorkItemID, &c.ParentID, &c.AuthorRef, &c.Content, &c.CreatedAt)
	if err != nil {
		return models.Comment{}, wrapCommentErr("get", id, notFoundIfNoRows(err))
	}
	return c, nil
}

// GetComments retrieves every comment on a work item in insertion order,
// flat. Forest assembly happens on demand in the comments package.
func (d *Database) GetComments(ctx context.Context, workItemID int64) ([]models.Comment, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, work_item_id, parent_id, author_ref, content, created_at
		FROM comments
		WHERE work_item_id = ?
		ORDER BY created_at ASC, id ASC`, workItemID)
	if err != nil {
		return nil, wrapCommentErr("list", 0, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.WorkItemID, &c.ParentID, &c.AuthorRef, &c.Content, &c.CreatedAt); err != nil {
			return nil, wrapCommentErr("list", 0, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapCommentErr("list", 0, err)
	}
	return comments, nil
}
