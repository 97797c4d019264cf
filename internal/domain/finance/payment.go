package finance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName      = errors.New("client name cannot be empty")
	ErrEmptyPlanTitle       = errors.New("plan title cannot be empty")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return true
	default:
		return false
	}
}

// ClientPayment records money a coaching client paid for a plan.
// coachShare is derived from the commission rate at creation time and
// never recomputed. A payment is immutable; deleting it must reverse
// any pending credit it caused.
type ClientPayment struct {
	id         uuid.UUID
	coachID    uuid.UUID
	clientName string
	planTitle  string
	amount     int64
	coachShare int64
	status     PaymentStatus
	paidAt     time.Time
}

func NewClientPayment(
	coachID uuid.UUID,
	clientName, planTitle string,
	amountCents, coachShareCents int64,
	status PaymentStatus,
	paidAt time.Time,
) (*ClientPayment, error) {
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
	if !status.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	return &ClientPayment{
		id:         uuid.New(),
		coachID:    coachID,
		clientName: clientName,
		planTitle:  planTitle,
		amount:     amountCents,
		coachShare: coachShareCents,
		status:     status,
		paidAt:     paidAt,
	}, nil
}

func ReconstructClientPayment(
	id, coachID uuid.UUID,
	clientName, planTitle string,
	amountCents, coachShareCents int64,
	status PaymentStatus,
	paidAt time.Time,
) *ClientPayment {
	return &ClientPayment{
		id:         id,
		coachID:    coachID,
		clientName: clientName,
		planTitle:  planTitle,
		amount:     amountCents,
		coachShare: coachShareCents,
		status:     status,
		paidAt:     paidAt,
	}
}

// CreditsLedger reports whether this payment contributed to the
// coach's pending payout balance.
func (p *ClientPayment) CreditsLedger() bool {
	return p.status == PaymentPaid
}

func (p *ClientPayment) ID() uuid.UUID         { return p.id }
func (p *ClientPayment) CoachID() uuid.UUID    { return p.coachID }
func (p *ClientPayment) ClientName() string    { return p.clientName }
func (p *ClientPayment) PlanTitle() string     { return p.planTitle }
func (p *ClientPayment) Amount() int64         { return p.amount }
func (p *ClientPayment) CoachShare() int64     { return p.coachShare }
func (p *ClientPayment) Status() PaymentStatus { return p.status }
func (p *ClientPayment) PaidAt() time.Time     { return p.paidAt }
