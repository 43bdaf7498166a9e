package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewTableID returns a fresh table identifier ("tbl-" plus 32 hex chars).
func NewTableID() string {
	return "tbl-" + hexID()
}

// NewReservationID returns a fresh reservation identifier ("res-" plus 32
// hex chars).
func NewReservationID() string {
	return "res-" + hexID()
}

func hexID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
