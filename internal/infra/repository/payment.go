package repository

import (
	"context"

	"suppstore/internal/domain/finance"
	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
	"suppstore/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

const createPaymentSQL = `
INSERT INTO client_payments (
	id, coach_id, client_name, plan_title,
	amount_cents, coach_share_cents, status, paid_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, payment *finance.ClientPayment) (uuid.UUID, error) {
	var resultID uuid.UUID
	err := r.db.QueryRow(ctx, createPaymentSQL,
		payment.ID(), payment.CoachID(), payment.ClientName(), payment.PlanTitle(),
		payment.Amount(), payment.CoachShare(), payment.Status().String(), payment.PaidAt(),
	).Scan(&resultID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create client payment", err)
	}
	return resultID, nil
}

const findPaymentForUpdateSQL = `
SELECT id, coach_id, client_name, plan_title,
       amount_cents, coach_share_cents, status, paid_at
FROM client_payments
WHERE id = $1
FOR UPDATE`

func (r *PaymentRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*finance.ClientPayment, error) {
	var (
		paymentID, coachID    uuid.UUID
		clientName, planTitle string
		amount, coachShare    int64
		status                string
		paidAt                pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findPaymentForUpdateSQL, id).
		Scan(&paymentID, &coachID, &clientName, &planTitle, &amount, &coachShare, &status, &paidAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client payment", err)
	}

	return finance.ReconstructClientPayment(
		paymentID, coachID, clientName, planTitle,
		amount, coachShare, finance.PaymentStatus(status), paidAt.Time,
	), nil
}

const deletePaymentSQL = `DELETE FROM client_payments WHERE id = $1`

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deletePaymentSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete client payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client payment not found", nil, infra.KindNotFound)
	}
	return nil
}
