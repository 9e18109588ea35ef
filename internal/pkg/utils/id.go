package utils

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a time-ordered unique identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// DateKey formats t as YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
