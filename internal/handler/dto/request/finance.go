package request

import (
	"suppstore/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	CoachID     uuid.UUID `json:"coach_id" binding:"required"`
	ClientName  string    `json:"client_name" binding:"required,max=255"`
	PlanTitle   string    `json:"plan_title" binding:"required,max=255"`
	AmountCents int64     `json:"amount_cents" binding:"required,min=1"`
	Status      string    `json:"status" binding:"required,oneof=paid pending overdue"`
}

func (r *RecordPaymentRequest) ToInput() commands.RecordClientPaymentInput {
	return commands.RecordClientPaymentInput{
		CoachID:     r.CoachID,
		ClientName:  r.ClientName,
		PlanTitle:   r.PlanTitle,
		AmountCents: r.AmountCents,
		Status:      r.Status,
	}
}

type SetCommissionRateRequest struct {
	Rate *int `json:"rate" binding:"required,min=0,max=100"`
}

type RecordPayoutRequest struct {
	CoachID     uuid.UUID `json:"coach_id" binding:"required"`
	ClientName  string    `json:"client_name" binding:"required,max=255"`
	PlanTitle   string    `json:"plan_title" binding:"required,max=255"`
	AmountCents int64     `json:"amount_cents" binding:"required,min=1"`
}

func (r *RecordPayoutRequest) ToInput() commands.RecordCoachPayoutInput {
	return commands.RecordCoachPayoutInput{
		CoachID:     r.CoachID,
		ClientName:  r.ClientName,
		PlanTitle:   r.PlanTitle,
		AmountCents: r.AmountCents,
	}
}
