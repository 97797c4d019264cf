//go:build unit || e2e

package builder

import (
	"time"

	reqdto "suppstore/internal/handler/dto/request"
	"suppstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type FinanceBuilder struct {
	CoachID        uuid.UUID
	ClientName     string
	PlanTitle      string
	AmountCents    int64
	CommissionRate int
	PaymentStatus  string
	PayoutStatus   string
	PaidAt         time.Time
}

func NewFinanceBuilder() *FinanceBuilder {
	return &FinanceBuilder{
		CoachID:        uuid.New(),
		ClientName:     "Alex Trainee",
		PlanTitle:      "12-week cut",
		AmountCents:    20000,
		CommissionRate: 70,
		PaymentStatus:  "paid",
		PayoutStatus:   "pending",
		PaidAt:         time.Now(),
	}
}

func (b *FinanceBuilder) With(mutate func(*FinanceBuilder)) *FinanceBuilder {
	mutate(b)
	return b
}

// CoachShareCents is the amount the ledger credits for this payment.
func (b *FinanceBuilder) CoachShareCents() int64 {
	return b.AmountCents * int64(b.CommissionRate) / 100
}

func (b *FinanceBuilder) BuildPaymentRequestDTO() reqdto.RecordPaymentRequest {
	return reqdto.RecordPaymentRequest{
		CoachID:     b.CoachID,
		ClientName:  b.ClientName,
		PlanTitle:   b.PlanTitle,
		AmountCents: b.AmountCents,
		Status:      b.PaymentStatus,
	}
}

func (b *FinanceBuilder) BuildPayoutRequestDTO() reqdto.RecordPayoutRequest {
	return reqdto.RecordPayoutRequest{
		CoachID:     b.CoachID,
		ClientName:  b.ClientName,
		PlanTitle:   b.PlanTitle,
		AmountCents: b.CoachShareCents(),
	}
}

func (b *FinanceBuilder) BuildFinanceView() *queries.CoachFinanceView {
	return &queries.CoachFinanceView{
		CoachID:            b.CoachID,
		CommissionRate:     b.CommissionRate,
		TotalEarningsCents: b.CoachShareCents(),
		PaidOutCents:       0,
		PendingPayoutCents: b.CoachShareCents(),
		Payments: []queries.PaymentView{
			{
				ID:              uuid.New(),
				CoachID:         b.CoachID,
				ClientName:      b.ClientName,
				PlanTitle:       b.PlanTitle,
				AmountCents:     b.AmountCents,
				CoachShareCents: b.CoachShareCents(),
				Status:          b.PaymentStatus,
				PaidAt:          b.PaidAt,
			},
		},
		Payouts: []queries.PayoutView{},
	}
}
