package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeightEntry is a body-weight measurement. There is at most one entry per
// calendar day.
type WeightEntry struct {
	ID        uuid.UUID
	Weight    float64
	Date      time.Time
	CreatedAt time.Time
}
