package response

import (
	"suppstore/internal/usecase/queries"
)

type PaymentResponse struct {
	ID              string `json:"id"`
	CoachID         string `json:"coach_id"`
	ClientName      string `json:"client_name"`
	PlanTitle       string `json:"plan_title"`
	AmountCents     int64  `json:"amount_cents"`
	CoachShareCents int64  `json:"coach_share_cents"`
	Status          string `json:"status"`
	PaidAt          int64  `json:"paid_at"`
}

type PayoutResponse struct {
	ID          string `json:"id"`
	CoachID     string `json:"coach_id"`
	ClientName  string `json:"client_name"`
	PlanTitle   string `json:"plan_title"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	PayoutDate  int64  `json:"payout_date"`
}

type CoachFinanceResponse struct {
	CoachID            string            `json:"coach_id"`
	CommissionRate     int               `json:"commission_rate"`
	TotalEarningsCents int64             `json:"total_earnings_cents"`
	PaidOutCents       int64             `json:"paid_out_cents"`
	PendingPayoutCents int64             `json:"pending_payout_cents"`
	Payments           []PaymentResponse `json:"payments"`
	Payouts            []PayoutResponse  `json:"payouts"`
}

func FromCoachFinanceView(v *queries.CoachFinanceView) *CoachFinanceResponse {
	payments := make([]PaymentResponse, len(v.Payments))
	for i, p := range v.Payments {
		payments[i] = PaymentResponse{
			ID:              p.ID.String(),
			CoachID:         p.CoachID.String(),
			ClientName:      p.ClientName,
			PlanTitle:       p.PlanTitle,
			AmountCents:     p.AmountCents,
			CoachShareCents: p.CoachShareCents,
			Status:          p.Status,
			PaidAt:          p.PaidAt.Unix(),
		}
	}

	payouts := make([]PayoutResponse, len(v.Payouts))
	for i, p := range v.Payouts {
		payouts[i] = PayoutResponse{
			ID:          p.ID.String(),
			CoachID:     p.CoachID.String(),
			ClientName:  p.ClientName,
			PlanTitle:   p.PlanTitle,
			AmountCents: p.AmountCents,
			Status:      p.Status,
			PayoutDate:  p.PayoutDate.Unix(),
		}
	}

	return &CoachFinanceResponse{
		CoachID:            v.CoachID.String(),
		CommissionRate:     v.CommissionRate,
		TotalEarningsCents: v.TotalEarningsCents,
		PaidOutCents:       v.PaidOutCents,
		PendingPayoutCents: v.PendingPayoutCents,
		Payments:           payments,
		Payouts:            payouts,
	}
}
