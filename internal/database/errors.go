package database

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced record does not exist or is
	// out of scope for the operation.
	ErrNotFound = errors.New("not found")
	// ErrIndexOutOfRange is returned when a move targets a position outside
	// the destination status group.
	ErrIndexOutOfRange = errors.New("target index out of range")
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing required field")
)

// OpError wraps a failed database operation with its resource context.
type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapItemErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "work item", ID: id, Err: err}
}

func wrapSprintErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "sprint", ID: id, Err: err}
}

func wrapMilestoneErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "milestone", ID: id, Err: err}
}

func wrapCommentErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "comment", ID: id, Err: err}
}

func wrapChangeRequestErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "change request", ID: id, Err: err}
}

func wrapProjectErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "project", ID: id, Err: err}
}

// notFoundIfNoRows maps sql.ErrNoRows onto the portal's ErrNotFound.
func notFoundIfNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
