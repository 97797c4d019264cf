package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.

type ZoneSnapshot struct {
	ID       uuid.UUID
	State    string
	City     string
	FeeCents int64
}

type PromoSnapshot struct {
	ID             uuid.UUID
	Code           string
	AmountOffCents *int64
	PercentOff     *float64
	Used           bool
	ValidFrom      *time.Time
	ValidTo        *time.Time
}

type OrderSnapshot struct {
	ID          uuid.UUID
	OrderNumber int64
	Status      string
}
