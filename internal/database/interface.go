package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// WorkItemRepository defines work-item database operations.
type WorkItemRepository interface {
	AddWorkItem(ctx context.Context, projectID int64, title string, status models.ItemStatus) (int64, error)
	AddWorkItemDetailed(ctx context.Context, projectID int64, seed ItemSeed) (int64, error)
	AddSubItem(ctx context.Context, parentID int64, title string) (int64, error)
	GetWorkItem(ctx context.Context, id int64) (models.WorkItem, error)
	UpdateWorkItem(ctx context.Context, id int64, upd ItemUpdate) error
	DeleteWorkItem(ctx context.Context, id int64) error
	MoveWorkItem(ctx context.Context, itemID int64, targetStatus models.ItemStatus, targetIndex int) error
	GetBoardItems(ctx context.Context, projectID int64) ([]models.WorkItem, error)
	GetStatusGroup(ctx context.Context, projectID int64, status models.ItemStatus) ([]models.WorkItem, error)
	GetItemsForProject(ctx context.Context, projectID int64) ([]models.WorkItem, error)
	GetItemsForSprint(ctx context.Context, sprintID int64) ([]models.WorkItem, error)
	GetItemsForMilestone(ctx context.Context, milestoneID int64) ([]models.WorkItem, error)
}

// SprintRepository defines sprint-related database operations.
type SprintRepository interface {
	CreateSprint(ctx context.Context, projectID int64, name string, startDate time.Time) (int64, error)
	GetSprint(ctx context.Context, id int64) (models.Sprint, error)
	GetSprints(ctx context.Context, projectID int64) ([]models.Sprint, error)
}

// MilestoneRepository defines milestone-related database operations.
type MilestoneRepository interface {
	CreateMilestone(ctx context.Context, projectID int64, title string, requiresApproval bool) (int64, error)
	GetMilestone(ctx context.Context, id int64) (models.Milestone, error)
	GetMilestones(ctx context.Context, projectID int64) ([]models.Milestone, error)
	SetMilestoneApproval(ctx context.Context, id int64, status models.ApprovalStatus, notes string) error
}

// ChangeRequestRepository defines change-request database operations.
type ChangeRequestRepository interface {
	AddChangeRequest(ctx context.Context, projectID int64, seed ChangeRequestSeed) (int64, error)
	GetChangeRequests(ctx context.Context, projectID int64) ([]models.ChangeRequest, error)
	GetSubmissionTimes(ctx context.Context, projectID int64) ([]time.Time, error)
	UpdateChangeRequestStatus(ctx context.Context, id int64, status models.ChangeRequestStatus) error
}

// CommentRepository defines comment-thread database operations.
type CommentRepository interface {
	AddComment(ctx context.Context, workItemID int64, authorRef, content string, parentID *int64) (models.Comment, error)
	GetComments(ctx context.Context, workItemID int64) ([]models.Comment, error)
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -destination=../engine/mock_repository_test.go -package=engine github.com/akyairhashvil/deliverydesk/internal/database Repository
type Repository interface {
	WorkItemRepository
	SprintRepository
	MilestoneRepository
	ChangeRequestRepository
	CommentRepository
}

var _ Repository = (*Database)(nil)
