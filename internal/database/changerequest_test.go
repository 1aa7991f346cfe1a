package database

import (
	"context"
	"errors"
	"testing"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

func TestAddChangeRequestValidation(t *testing.T) {
	b := NewTestDataBuilder(t)
	db := b.Build()
	ctx := context.Background()

	if _, err := db.AddChangeRequest(ctx, b.ProjectID(), ChangeRequestSeed{AuthorRef: "client"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for missing title, got %v", err)
	}
	if _, err := db.AddChangeRequest(ctx, b.ProjectID(), ChangeRequestSeed{Title: "More scope"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for missing author, got %v", err)
	}
}

func TestAddChangeRequestDefaultsToSubmitted(t *testing.T) {
	b := NewTestDataBuilder(t)
	db := b.Build()
	ctx := context.Background()

	hours := 12.5
	id, err := db.AddChangeRequest(ctx, b.ProjectID(), ChangeRequestSeed{
		AuthorRef:      "client",
		Title:          "Add reporting",
		Details:        "Weekly CSV export",
		EstimatedHours: &hours,
	})
	if err != nil {
		t.Fatalf("AddChangeRequest failed: %v", err)
	}

	requests, err := db.GetChangeRequests(ctx, b.ProjectID())
	if err != nil {
		t.Fatalf("GetChangeRequests failed: %v", err)
	}
	if len(requests) != 1 || requests[0].ID != id {
		t.Fatalf("expected the new request, got %v", requests)
	}
	cr := requests[0]
	if cr.Status != models.ChangeRequestSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", cr.Status)
	}
	if cr.EstimatedHours == nil || *cr.EstimatedHours != 12.5 {
		t.Fatalf("expected estimate stored, got %v", cr.EstimatedHours)
	}
}

func TestGetSubmissionTimes(t *testing.T) {
	b := NewTestDataBuilder(t)
	db := b.Build()
	ctx := context.Background()

	for _, title := range []string{"One", "Two"} {
		if _, err := db.AddChangeRequest(ctx, b.ProjectID(), ChangeRequestSeed{AuthorRef: "client", Title: title}); err != nil {
			t.Fatalf("AddChangeRequest failed: %v", err)
		}
	}

	times, err := db.GetSubmissionTimes(ctx, b.ProjectID())
	if err != nil {
		t.Fatalf("GetSubmissionTimes failed: %v", err)
	}
	if len(times) != 2 {
		t.Fatalf("expected 2 submission times, got %d", len(times))
	}
	for _, ts := range times {
		if ts.IsZero() {
			t.Fatal("expected non-zero submission times")
		}
	}
}

func TestUpdateChangeRequestStatus(t *testing.T) {
	b := NewTestDataBuilder(t)
	db := b.Build()
	ctx := context.Background()

	id, err := db.AddChangeRequest(ctx, b.ProjectID(), ChangeRequestSeed{AuthorRef: "client", Title: "Scope"})
	if err != nil {
		t.Fatalf("AddChangeRequest failed: %v", err)
	}

	if err := db.UpdateChangeRequestStatus(ctx, id, models.ChangeRequestAccepted); err != nil {
		t.Fatalf("UpdateChangeRequestStatus failed: %v", err)
	}
	requests, err := db.GetChangeRequests(ctx, b.ProjectID())
	if err != nil {
		t.Fatalf("GetChangeRequests failed: %v", err)
	}
	if requests[0].Status != models.ChangeRequestAccepted {
		t.Fatalf("expected ACCEPTED, got %s", requests[0].Status)
	}

	if err := db.UpdateChangeRequestStatus(ctx, 999, models.ChangeRequestDeclined); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
