package finance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPayoutStatus = errors.New("invalid payout status")
	ErrPayoutNotPending    = errors.New("payout is not pending")
)

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutCompleted PayoutStatus = "completed"
	PayoutFailed    PayoutStatus = "failed"
)

func (s PayoutStatus) String() string {
	return string(s)
}

func (s PayoutStatus) IsValid() bool {
	switch s {
	case PayoutPending, PayoutCompleted, PayoutFailed:
		return true
	default:
		return false
	}
}

// CoachPayout is a requested transfer of a coach's pending balance.
// pending -> completed is the only supported transition and triggers
// SettlePending on the coach's ledger in the same transaction.
type CoachPayout struct {
	id         uuid.UUID
	coachID    uuid.UUID
	clientName string
	planTitle  string
	amount     int64
	status     PayoutStatus
	payoutDate time.Time
}

func NewCoachPayout(
	coachID uuid.UUID,
	clientName, planTitle string,
	amountCents int64,
	payoutDate time.Time,
) (*CoachPayout, error) {
	clientName = strings.TrimSpace(clientName)
	planTitle = strings.TrimSpace(planTitle)
	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if planTitle == "" {
		return nil, ErrEmptyPlanTitle
	}
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &CoachPayout{
		id:         uuid.New(),
		coachID:    coachID,
		clientName: clientName,
		planTitle:  planTitle,
		amount:     amountCents,
		status:     PayoutPending,
		payoutDate: payoutDate,
	}, nil
}

func ReconstructCoachPayout(
	id, coachID uuid.UUID,
	clientName, planTitle string,
	amountCents int64,
	status PayoutStatus,
	payoutDate time.Time,
) *CoachPayout {
	return &CoachPayout{
		id:         id,
		coachID:    coachID,
		clientName: clientName,
		planTitle:  planTitle,
		amount:     amountCents,
		status:     status,
		payoutDate: payoutDate,
	}
}

// MarkCompleted transitions the payout; processing the same payout
// twice fails on the second call.
func (p *CoachPayout) MarkCompleted() error {
	if p.status != PayoutPending {
		return ErrPayoutNotPending
	}
	p.status = PayoutCompleted
	return nil
}

func (p *CoachPayout) ID() uuid.UUID        { return p.id }
func (p *CoachPayout) CoachID() uuid.UUID   { return p.coachID }
func (p *CoachPayout) ClientName() string   { return p.clientName }
func (p *CoachPayout) PlanTitle() string    { return p.planTitle }
func (p *CoachPayout) Amount() int64        { return p.amount }
func (p *CoachPayout) Status() PayoutStatus { return p.status }
func (p *CoachPayout) PayoutDate() time.Time {
	return p.payoutDate
}
