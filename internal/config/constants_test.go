package config

import (
	"testing"
	"time"
)

func TestConstants(t *testing.T) {
	if SprintDuration != 14*24*time.Hour {
		t.Fatalf("SprintDuration must be exactly 14 days")
	}
	if SubmissionWindow != 7*24*time.Hour {
		t.Fatalf("SubmissionWindow must be exactly 7 days")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if DefaultProjectSlug == "" {
		t.Fatalf("DefaultProjectSlug should not be empty")
	}
}
