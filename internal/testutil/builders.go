package testutil

import (
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// WorkItemBuilder provides fluent API for creating test work items.
type WorkItemBuilder struct {
	item models.WorkItem
}

func NewWorkItem() *WorkItemBuilder {
	return &WorkItemBuilder{
		item: models.WorkItem{
			ProjectID: 1,
			Title:     "Test Item",
			Status:    models.StatusBacklog,
			Priority:  models.PriorityMed,
			CreatedAt: time.Now(),
		},
	}
}

func (b *WorkItemBuilder) WithTitle(t string) *WorkItemBuilder {
	b.item.Title = t
	return b
}

func (b *WorkItemBuilder) WithStatus(s models.ItemStatus) *WorkItemBuilder {
	b.item.Status = s
	return b
}

func (b *WorkItemBuilder) WithPriority(p models.ItemPriority) *WorkItemBuilder {
	b.item.Priority = p
	return b
}

func (b *WorkItemBuilder) WithProjectID(id int64) *WorkItemBuilder {
	b.item.ProjectID = id
	return b
}

func (b *WorkItemBuilder) WithSprintID(id int64) *WorkItemBuilder {
	b.item.SprintID = &id
	return b
}

func (b *WorkItemBuilder) WithMilestoneID(id int64) *WorkItemBuilder {
	b.item.MilestoneID = &id
	return b
}

func (b *WorkItemBuilder) WithOrderIndex(i int) *WorkItemBuilder {
	b.item.OrderIndex = i
	return b
}

func (b *WorkItemBuilder) WithClientVisible(v bool) *WorkItemBuilder {
	b.item.ClientVisible = v
	return b
}

func (b *WorkItemBuilder) Build() models.WorkItem {
	return b.item
}

// SprintBuilder provides fluent API for creating test sprints.
type SprintBuilder struct {
	sprint models.Sprint
}

func NewSprint() *SprintBuilder {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &SprintBuilder{
		sprint: models.Sprint{
			ProjectID: 1,
			Name:      "Test Sprint",
			StartDate: start,
			EndDate:   start.Add(14 * 24 * time.Hour),
		},
	}
}

func (b *SprintBuilder) WithName(n string) *SprintBuilder {
	b.sprint.Name = n
	return b
}

func (b *SprintBuilder) WithProjectID(id int64) *SprintBuilder {
	b.sprint.ProjectID = id
	return b
}

func (b *SprintBuilder) WithWindow(start, end time.Time) *SprintBuilder {
	b.sprint.StartDate = start
	b.sprint.EndDate = end
	return b
}

func (b *SprintBuilder) Build() models.Sprint {
	return b.sprint
}

// CommentBuilder provides fluent API for creating test comments.
type CommentBuilder struct {
	comment models.Comment
}

func NewComment() *CommentBuilder {
	return &CommentBuilder{
		comment: models.Comment{
			WorkItemID: 1,
			AuthorRef:  "tester",
			Content:    "Test comment",
			CreatedAt:  time.Now(),
		},
	}
}

func (b *CommentBuilder) WithID(id int64) *CommentBuilder {
	b.comment.ID = id
	return b
}

func (b *CommentBuilder) WithParentID(id int64) *CommentBuilder {
	b.comment.ParentID = &id
	return b
}

func (b *CommentBuilder) WithContent(c string) *CommentBuilder {
	b.comment.Content = c
	return b
}

func (b *CommentBuilder) WithAuthor(a string) *CommentBuilder {
	b.comment.AuthorRef = a
	return b
}

func (b *CommentBuilder) Build() models.Comment {
	return b.comment
}
