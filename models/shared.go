package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a short 8-character hex identifier for clinic records.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
