package finance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCommissionRate = errors.New("commission rate must be between 0 and 100")
	ErrNonPositiveAmount     = errors.New("amount must be positive")
	ErrInsufficientPending   = errors.New("pending payout balance is insufficient")
)

// DefaultCommissionRate applies when a coach has no ledger yet; the
// ledger is lazily created on the first recorded payment.
const DefaultCommissionRate = 70

// CoachLedger tracks a coach's commission money through its states:
// a paid client payment credits pendingPayout, a completed payout moves
// the amount to paidOut and totalEarnings. All mutations go through the
// named transitions below so the conservation invariant
// (pendingPayout >= 0, movements always balance) is checkable in one
// place instead of scattered field arithmetic.
type CoachLedger struct {
	coachID        uuid.UUID
	commissionRate int
	totalEarnings  int64
	paidOut        int64
	pendingPayout  int64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCoachLedger(coachID uuid.UUID, commissionRate int) (*CoachLedger, error) {
	if commissionRate < 0 || commissionRate > 100 {
		return nil, ErrInvalidCommissionRate
	}
	return &CoachLedger{
		coachID:        coachID,
		commissionRate: commissionRate,
	}, nil
}

func ReconstructCoachLedger(
	coachID uuid.UUID,
	commissionRate int,
	totalEarnings, paidOut, pendingPayout int64,
	createdAt, updatedAt time.Time,
) *CoachLedger {
	return &CoachLedger{
		coachID:        coachID,
		commissionRate: commissionRate,
		totalEarnings:  totalEarnings,
		paidOut:        paidOut,
		pendingPayout:  pendingPayout,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Share computes the coach's cut of a client payment at the current
// commission rate. Rate changes are not retroactive; the share is
// snapshotted onto the payment record at creation.
func (l *CoachLedger) Share(amountCents int64) int64 {
	return amountCents * int64(l.commissionRate) / 100
}

// CreditPending records commission earned by a paid client payment.
// Lifetime earnings accrue here; payouts only move the money later.
func (l *CoachLedger) CreditPending(amountCents int64) error {
	if amountCents <= 0 {
		return ErrNonPositiveAmount
	}
	l.pendingPayout += amountCents
	l.totalEarnings += amountCents
	return nil
}

// SettlePending moves a completed payout from pending to paid out.
// The pending balance must cover the payout in full; a shortfall means
// the payout was never credited and the transaction must abort.
func (l *CoachLedger) SettlePending(amountCents int64) error {
	if amountCents <= 0 {
		return ErrNonPositiveAmount
	}
	if l.pendingPayout < amountCents {
		return ErrInsufficientPending
	}
	l.pendingPayout -= amountCents
	l.paidOut += amountCents
	return nil
}

// ReversePending undoes the credit of a deleted client payment. A
// balance that cannot cover the reversal indicates a ledger/payment
// mismatch and is surfaced, never silently clamped.
func (l *CoachLedger) ReversePending(amountCents int64) error {
	if amountCents <= 0 {
		return ErrNonPositiveAmount
	}
	if l.pendingPayout < amountCents {
		return ErrInsufficientPending
	}
	l.pendingPayout -= amountCents
	l.totalEarnings -= amountCents
	return nil
}

// SetCommissionRate upserts the rate for future payments only.
func (l *CoachLedger) SetCommissionRate(rate int) error {
	if rate < 0 || rate > 100 {
		return ErrInvalidCommissionRate
	}
	l.commissionRate = rate
	return nil
}

func (l *CoachLedger) CoachID() uuid.UUID  { return l.coachID }
func (l *CoachLedger) CommissionRate() int { return l.commissionRate }
func (l *CoachLedger) TotalEarnings() int64 {
	return l.totalEarnings
}
func (l *CoachLedger) PaidOut() int64       { return l.paidOut }
func (l *CoachLedger) PendingPayout() int64 { return l.pendingPayout }
func (l *CoachLedger) CreatedAt() time.Time { return l.createdAt }
func (l *CoachLedger) UpdatedAt() time.Time { return l.updatedAt }
