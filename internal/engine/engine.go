// Package engine exposes the portal's work-item lifecycle operations as a
// single facade over the persistence layer and the pure policy packages.
// Every operation is an independent, short-lived unit of work: the engine
// never retries internally and never caches derived state, so callers may
// repeat reads freely and must treat failed writes as fully rolled back.
package engine

import (
	"context"
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/comments"
	"github.com/akyairhashvil/deliverydesk/internal/database"
	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/progress"
	"github.com/akyairhashvil/deliverydesk/internal/ratelimit"
)

// Service wires the repository to the progress, rate-limit, and comment
// policies. Time-dependent operations take now explicitly so the engine is
// deterministic under test.
type Service struct {
	repo database.Repository
}

func New(repo database.Repository) *Service {
	return &Service{repo: repo}
}

// --- Work items ---

func (s *Service) CreateWorkItem(ctx context.Context, projectID int64, seed database.ItemSeed) (models.WorkItem, error) {
	id, err := s.repo.AddWorkItemDetailed(ctx, projectID, seed)
	if err != nil {
		return models.WorkItem{}, err
	}
	return s.repo.GetWorkItem(ctx, id)
}

func (s *Service) UpdateWorkItem(ctx context.Context, id int64, upd database.ItemUpdate) error {
	return s.repo.UpdateWorkItem(ctx, id, upd)
}

func (s *Service) DeleteWorkItem(ctx context.Context, id int64) error {
	return s.repo.DeleteWorkItem(ctx, id)
}

// MoveWorkItem applies a drag-drop move. Callers that applied the move
// optimistically must revert to their last known-good snapshot when this
// returns an error; the stored order is untouched on failure.
func (s *Service) MoveWorkItem(ctx context.Context, itemID int64, targetStatus models.ItemStatus, targetIndex int) error {
	return s.repo.MoveWorkItem(ctx, itemID, targetStatus, targetIndex)
}

// QuickAddItem inserts a titled item at the end of a status column.
func (s *Service) QuickAddItem(ctx context.Context, projectID int64, title string, status models.ItemStatus) (int64, error) {
	return s.repo.AddWorkItem(ctx, projectID, title, status)
}

// BoardItems returns the project's top-level items in board order.
func (s *Service) BoardItems(ctx context.Context, projectID int64) ([]models.WorkItem, error) {
	return s.repo.GetBoardItems(ctx, projectID)
}

// --- Sprints ---

func (s *Service) CreateSprint(ctx context.Context, projectID int64, name string, startDate time.Time) (models.Sprint, error) {
	id, err := s.repo.CreateSprint(ctx, projectID, name, startDate)
	if err != nil {
		return models.Sprint{}, err
	}
	return s.repo.GetSprint(ctx, id)
}

// ActiveSprint resolves the project's active sprint at the given instant.
func (s *Service) ActiveSprint(ctx context.Context, projectID int64, now time.Time) (models.Sprint, bool, error) {
	sprints, err := s.repo.GetSprints(ctx, projectID)
	if err != nil {
		return models.Sprint{}, false, err
	}
	active, ok := progress.ActiveSprint(sprints, now)
	return active, ok, nil
}

func (s *Service) Sprints(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	return s.repo.GetSprints(ctx, projectID)
}

func (s *Service) Milestones(ctx context.Context, projectID int64) ([]models.Milestone, error) {
	return s.repo.GetMilestones(ctx, projectID)
}

func (s *Service) CreateMilestone(ctx context.Context, projectID int64, title string, requiresApproval bool) (models.Milestone, error) {
	id, err := s.repo.CreateMilestone(ctx, projectID, title, requiresApproval)
	if err != nil {
		return models.Milestone{}, err
	}
	return s.repo.GetMilestone(ctx, id)
}

// SetMilestoneApproval records a client's approval decision on a milestone.
func (s *Service) SetMilestoneApproval(ctx context.Context, id int64, status models.ApprovalStatus, notes string) error {
	return s.repo.SetMilestoneApproval(ctx, id, status, notes)
}

// ReviewChangeRequest advances a change request through the review states.
func (s *Service) ReviewChangeRequest(ctx context.Context, id int64, status models.ChangeRequestStatus) error {
	return s.repo.UpdateChangeRequestStatus(ctx, id, status)
}

func (s *Service) ChangeRequests(ctx context.Context, projectID int64) ([]models.ChangeRequest, error) {
	return s.repo.GetChangeRequests(ctx, projectID)
}

// --- Progress ---

// ScopeKind selects the filter a progress rollup is computed over.
type ScopeKind string

const (
	ScopeProject   ScopeKind = "project"
	ScopeSprint    ScopeKind = "sprint"
	ScopeMilestone ScopeKind = "milestone"
)

// Scope names the record a progress rollup is computed for.
type Scope struct {
	Kind ScopeKind
	ID   int64
}

// ComputeProgress re-derives completion counts from the work items matching
// the scope. Rollups always count items directly; child percentages are
// never summed.
func (s *Service) ComputeProgress(ctx context.Context, scope Scope) (progress.Summary, error) {
	var items []models.WorkItem
	var err error
	switch scope.Kind {
	case ScopeSprint:
		items, err = s.repo.GetItemsForSprint(ctx, scope.ID)
	case ScopeMilestone:
		items, err = s.repo.GetItemsForMilestone(ctx, scope.ID)
	default:
		items, err = s.repo.GetItemsForProject(ctx, scope.ID)
	}
	if err != nil {
		return progress.Summary{}, err
	}
	return progress.Summarize(items), nil
}

// SprintProgress pairs a sprint's item rollup with its time-window
// percentage at the given instant.
type SprintProgress struct {
	Items       progress.Summary
	TimePercent int
}

func (s *Service) SprintProgress(ctx context.Context, sprintID int64, now time.Time) (SprintProgress, error) {
	sprint, err := s.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return SprintProgress{}, err
	}
	items, err := s.repo.GetItemsForSprint(ctx, sprintID)
	if err != nil {
		return SprintProgress{}, err
	}
	return SprintProgress{
		Items:       progress.Summarize(items),
		TimePercent: progress.SprintTimeProgress(sprint, now),
	}, nil
}

// --- Change requests ---

// CheckSubmissionAllowed evaluates the weekly window against live rows.
func (s *Service) CheckSubmissionAllowed(ctx context.Context, projectID int64, now time.Time) (ratelimit.Decision, error) {
	times, err := s.repo.GetSubmissionTimes(ctx, projectID)
	if err != nil {
		return ratelimit.Decision{}, err
	}
	return ratelimit.CanSubmit(times, now), nil
}

// SubmitChangeRequest persists a submission if the weekly window allows it.
// A refusal is returned as *RateLimitedError carrying the next eligible
// Monday; it is an expected, user-facing outcome, not a fault.
func (s *Service) SubmitChangeRequest(ctx context.Context, projectID int64, seed database.ChangeRequestSeed, now time.Time) (int64, error) {
	decision, err := s.CheckSubmissionAllowed(ctx, projectID, now)
	if err != nil {
		return 0, err
	}
	if !decision.Allowed {
		return 0, &RateLimitedError{NextAvailableAt: decision.NextAvailableAt}
	}
	return s.repo.AddChangeRequest(ctx, projectID, seed)
}

// --- Comments ---

func (s *Service) AddComment(ctx context.Context, workItemID int64, authorRef, content string, parentID *int64) (models.Comment, error) {
	return s.repo.AddComment(ctx, workItemID, authorRef, content, parentID)
}

// GetCommentTree assembles the item's comment forest from flat storage.
func (s *Service) GetCommentTree(ctx context.Context, workItemID int64) ([]*comments.Node, error) {
	flat, err := s.repo.GetComments(ctx, workItemID)
	if err != nil {
		return nil, err
	}
	return comments.Build(flat), nil
}
