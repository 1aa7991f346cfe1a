package models

import "time"

// ItemStatus enumerates the board columns a work item can occupy.
type ItemStatus string

const (
	StatusBacklog    ItemStatus = "BACKLOG"
	StatusPlanned    ItemStatus = "PLANNED"
	StatusInProgress ItemStatus = "IN_PROGRESS"
	StatusQA         ItemStatus = "QA"
	StatusBlocked    ItemStatus = "BLOCKED"
	StatusDone       ItemStatus = "DONE"
)

// ItemPriority enumerates work item priorities.
type ItemPriority string

const (
	PriorityLow    ItemPriority = "LOW"
	PriorityMed    ItemPriority = "MED"
	PriorityHigh   ItemPriority = "HIGH"
	PriorityUrgent ItemPriority = "URGENT"
)

// ApprovalStatus enumerates milestone client-approval states.
type ApprovalStatus string

const (
	ApprovalPending          ApprovalStatus = "PENDING"
	ApprovalApproved         ApprovalStatus = "APPROVED"
	ApprovalChangesRequested ApprovalStatus = "CHANGES_REQUESTED"
)

// ChangeRequestStatus enumerates change request review states.
type ChangeRequestStatus string

const (
	ChangeRequestSubmitted ChangeRequestStatus = "SUBMITTED"
	ChangeRequestInReview  ChangeRequestStatus = "IN_REVIEW"
	ChangeRequestAccepted  ChangeRequestStatus = "ACCEPTED"
	ChangeRequestDeclined  ChangeRequestStatus = "DECLINED"
)

// BoardColumns is the fixed left-to-right column order of the board.
var BoardColumns = []ItemStatus{
	StatusBacklog,
	StatusPlanned,
	StatusInProgress,
	StatusQA,
	StatusBlocked,
	StatusDone,
}

// Project is the partition key for everything else.
type Project struct {
	ID   int64
	Name string
	Slug string
}

// WorkItem represents a single deliverable on the board.
type WorkItem struct {
	ID            int64
	ProjectID     int64
	ParentID      *int64 // For lightweight sub-items
	SprintID      *int64 // Nil means unscheduled
	MilestoneID   *int64
	Title         string
	Description   *string
	Status        ItemStatus
	Priority      ItemPriority
	OwnerRef      *string
	DueDate       *time.Time
	Estimate      *float64
	OrderIndex    int // Zero-based position within (project, status)
	ClientVisible bool
	CreatedAt     time.Time
}

// Sprint represents a fixed 14-day work window.
type Sprint struct {
	ID        int64
	ProjectID int64
	Name      string
	StartDate time.Time
	EndDate   time.Time // Always StartDate + config.SprintDuration
}

// Contains reports whether t falls inside the sprint window (inclusive).
func (s Sprint) Contains(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}

// Milestone groups work items under an optional client approval gate.
type Milestone struct {
	ID                     int64
	ProjectID              int64
	Title                  string
	OrderIndex             int
	RequiresClientApproval bool
	ApprovalStatus         ApprovalStatus
	ApprovalNotes          *string
}

// ChangeRequest is a client-submitted scope change, limited to one per
// calendar week per project.
type ChangeRequest struct {
	ID             int64
	ProjectID      int64
	AuthorRef      string
	Title          string
	Details        *string
	Status         ChangeRequestStatus
	EstimatedHours *float64
	EstimateNotes  *string
	CreatedAt      time.Time
}

// Comment is one node of a work item's reply tree. ParentID nil means a
// top-level thread root.
type Comment struct {
	ID         int64
	WorkItemID int64
	ParentID   *int64
	AuthorRef  string
	Content    string
	CreatedAt  time.Time
}
