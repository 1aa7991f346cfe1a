package engine

import (
	"fmt"
	"time"
)

// RateLimitedError reports a change-request submission inside an
// already-used calendar week. It carries the next eligible instant so the
// caller can render a concrete date instead of a generic failure.
type RateLimitedError struct {
	NextAvailableAt time.Time
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("submission limit reached; next available %s", e.NextAvailableAt.Format("2006-01-02"))
}
