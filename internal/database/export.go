package database

import (
	"context"
	"encoding/json"
	"time"
)

type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

type ExportProject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ExportSprint struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ExportMilestone struct {
	ID                     int64   `json:"id"`
	ProjectID              int64   `json:"project_id"`
	Title                  string  `json:"title"`
	OrderIndex             int     `json:"order_index"`
	RequiresClientApproval bool    `json:"requires_client_approval"`
	ApprovalStatus         string  `json:"approval_status"`
	ApprovalNotes          *string `json:"approval_notes,omitempty"`
}

type ExportWorkItem struct {
	ID            int64    `json:"id"`
	ProjectID     int64    `json:"project_id"`
	ParentID      *int64   `json:"parent_id,omitempty"`
	SprintID      *int64   `json:"sprint_id,omitempty"`
	MilestoneID   *int64   `json:"milestone_id,omitempty"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	Status        string   `json:"status"`
	Priority      string   `json:"priority"`
	OwnerRef      *string  `json:"owner_ref,omitempty"`
	DueDate       *string  `json:"due_date,omitempty"`
	Estimate      *float64 `json:"estimate,omitempty"`
	OrderIndex    int      `json:"order_index"`
	ClientVisible bool     `json:"client_visible"`
	CreatedAt     string   `json:"created_at"`
}

type ExportChangeRequest struct {
	ID             int64    `json:"id"`
	ProjectID      int64    `json:"project_id"`
	AuthorRef      string   `json:"author_ref"`
	Title          string   `json:"title"`
	Details        *string  `json:"details,omitempty"`
	Status         string   `json:"status"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	EstimateNotes  *string  `json:"estimate_notes,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type ExportComment struct {
	ID         int64  `json:"id"`
	WorkItemID int64  `json:"work_item_id"`
	ParentID   *int64 `json:"parent_id,omitempty"`
	AuthorRef  string `json:"author_ref"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

// PortalExport is the full JSON snapshot of one project.
type PortalExport struct {
	Project        ExportProject         `json:"project"`
	Sprints        []ExportSprint        `json:"sprints"`
	Milestones     []ExportMilestone     `json:"milestones"`
	WorkItems      []ExportWorkItem      `json:"work_items"`
	ChangeRequests []ExportChangeRequest `json:"change_requests"`
	Comments       []ExportComment       `json:"comments"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	val := t.Format(time.RFC3339)
	return &val
}

// ExportProjectData serializes one project and everything scoped to it.
// With EncryptOutput set, the payload is sealed with the passphrase.
func (d *Database) ExportProjectData(ctx context.Context, projectID int64, opts ExportOptions) ([]byte, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	out := PortalExport{}

	err := d.DB.QueryRowContext(ctx, "SELECT id, name, slug FROM projects WHERE id = ?", projectID).
		Scan(&out.Project.ID, &out.Project.Name, &out.Project.Slug)
	if err != nil {
		return nil, wrapProjectErr("export", projectID, notFoundIfNoRows(err))
	}

	sprints, err := d.GetSprints(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, s := range sprints {
		out.Sprints = append(out.Sprints, ExportSprint{
			ID:        s.ID,
			ProjectID: s.ProjectID,
			Name:      s.Name,
			StartDate: s.StartDate.Format(time.RFC3339),
			EndDate:   s.EndDate.Format(time.RFC3339),
		})
	}

	milestones, err := d.GetMilestones(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, m := range milestones {
		out.Milestones = append(out.Milestones, ExportMilestone{
			ID:                     m.ID,
			ProjectID:              m.ProjectID,
			Title:                  m.Title,
			OrderIndex:             m.OrderIndex,
			RequiresClientApproval: m.RequiresClientApproval,
			ApprovalStatus:         string(m.ApprovalStatus),
			ApprovalNotes:          m.ApprovalNotes,
		})
	}

	query, args := NewItemQuery().WhereProject(projectID).OrderBy("id ASC").Build()
	items, err := d.queryItems(ctx, "export", query, args...)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out.WorkItems = append(out.WorkItems, ExportWorkItem{
			ID:            it.ID,
			ProjectID:     it.ProjectID,
			ParentID:      it.ParentID,
			SprintID:      it.SprintID,
			MilestoneID:   it.MilestoneID,
			Title:         it.Title,
			Description:   it.Description,
			Status:        string(it.Status),
			Priority:      string(it.Priority),
			OwnerRef:      it.OwnerRef,
			DueDate:       formatTimePtr(it.DueDate),
			Estimate:      it.Estimate,
			OrderIndex:    it.OrderIndex,
			ClientVisible: it.ClientVisible,
			CreatedAt:     it.CreatedAt.Format(time.RFC3339),
		})
	}

	requests, err := d.GetChangeRequests(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, cr := range requests {
		out.ChangeRequests = append(out.ChangeRequests, ExportChangeRequest{
			ID:             cr.ID,
			ProjectID:      cr.ProjectID,
			AuthorRef:      cr.AuthorRef,
			Title:          cr.Title,
			Details:        cr.Details,
			Status:         string(cr.Status),
			EstimatedHours: cr.EstimatedHours,
			EstimateNotes:  cr.EstimateNotes,
			CreatedAt:      cr.CreatedAt.Format(time.RFC3339),
		})
	}

	for _, it := range items {
		comments, err := d.GetComments(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range comments {
			out.Comments = append(out.Comments, ExportComment{
				ID:         c.ID,
				WorkItemID: c.WorkItemID,
				ParentID:   c.ParentID,
				AuthorRef:  c.AuthorRef,
				Content:    c.Content,
				CreatedAt:  c.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	if opts.EncryptOutput {
		return encryptData(payload, opts.Passphrase)
	}
	return payload, nil
}
