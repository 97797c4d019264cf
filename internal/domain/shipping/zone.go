package shipping

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyZoneState = errors.New("zone state cannot be empty")
	ErrEmptyZoneCity  = errors.New("zone city cannot be empty")
	ErrNegativeFee    = errors.New("shipping fee cannot be negative")
)

// Zone maps a (state, city) pair to a shipping fee. An order for an
// address with no matching zone is rejected at checkout rather than
// shipped for free.
type Zone struct {
	id       uuid.UUID
	state    string
	city     string
	feeCents int64
}

func NewZone(id uuid.UUID, state, city string, feeCents int64) (*Zone, error) {
	state = strings.TrimSpace(state)
	city = strings.TrimSpace(city)
	if state == "" {
		return nil, ErrEmptyZoneState
	}
	if city == "" {
		return nil, ErrEmptyZoneCity
	}
	if feeCents < 0 {
		return nil, ErrNegativeFee
	}

	return &Zone{
		id:       id,
		state:    state,
		city:     city,
		feeCents: feeCents,
	}, nil
}

// Matches compares state and city case-insensitively.
func (z *Zone) Matches(state, city string) bool {
	return strings.EqualFold(z.state, strings.TrimSpace(state)) &&
		strings.EqualFold(z.city, strings.TrimSpace(city))
}

func (z *Zone) ID() uuid.UUID   { return z.id }
func (z *Zone) State() string   { return z.state }
func (z *Zone) City() string    { return z.city }
func (z *Zone) FeeCents() int64 { return z.feeCents }
