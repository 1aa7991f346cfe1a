package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/deliverydesk/internal/config"
	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// CreateProject inserts a new project and returns its id.
func (d *Database) CreateProject(ctx context.Context, name, slug string) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, "INSERT INTO projects (name, slug) VALUES (?, ?)", name, slug)
	if err != nil {
		return 0, wrapProjectErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapProjectErr("create", 0, err)
}

// EnsureDefaultProject returns the default project, creating it on first run.
func (d *Database) EnsureDefaultProject(ctx context.Context) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var id int64
	err := d.DB.QueryRowContext(ctx, "SELECT id FROM projects WHERE slug = ?", config.DefaultProjectSlug).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, wrapProjectErr("ensure default", 0, err)
	}
	return d.CreateProject(ctx, config.DefaultProjectName, config.DefaultProjectSlug)
}

// GetProjects retrieves all projects.
func (d *Database) GetProjects(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, "SELECT id, name, slug FROM projects ORDER BY id ASC")
	if err != nil {
		return nil, wrapProjectErr("list", 0, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug); err != nil {
			return nil, wrapProjectErr("list", 0, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapProjectErr("list", 0, err)
	}
	return projects, nil
}

// GetProjectIDBySlug resolves a project slug to its id.
func (d *Database) GetProjectIDBySlug(ctx context.Context, slug string) (int64, bool, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var id int64
	err := d.DB.QueryRowContext(ctx, "SELECT id FROM projects WHERE slug = ?", slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, wrapProjectErr("lookup", 0, err)
	}
	return id, true, nil
}
