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

type PayoutRepository struct {
	db db.DBTX
}

func NewPayoutRepository(dbtx db.DBTX) *PayoutRepository {
	return &PayoutRepository{db: dbtx}
}

const createPayoutSQL = `
INSERT INTO coach_payouts (
	id, coach_id, client_name, plan_title,
	amount_cents, status, payout_date
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *PayoutRepository) Create(ctx context.Context, payout *finance.CoachPayout) (uuid.UUID, error) {
	var resultID uuid.UUID
	err := r.db.QueryRow(ctx, createPayoutSQL,
		payout.ID(), payout.CoachID(), payout.ClientName(), payout.PlanTitle(),
		payout.Amount(), payout.Status().String(), payout.PayoutDate(),
	).Scan(&resultID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payout", err)
	}
	return resultID, nil
}

const findPayoutForUpdateSQL = `
SELECT id, coach_id, client_name, plan_title, amount_cents, status, payout_date
FROM coach_payouts
WHERE id = $1
FOR UPDATE`

// FindForUpdate locks the payout row so two admins processing the same
// payout serialize; the second sees the completed status and fails.
func (r *PayoutRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*finance.CoachPayout, error) {
	var (
		payoutID, coachID     uuid.UUID
		clientName, planTitle string
		amount                int64
		status                string
		payoutDate            pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findPayoutForUpdateSQL, id).
		Scan(&payoutID, &coachID, &clientName, &planTitle, &amount, &status, &payoutDate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payout", err)
	}

	return finance.ReconstructCoachPayout(
		payoutID, coachID, clientName, planTitle,
		amount, finance.PayoutStatus(status), payoutDate.Time,
	), nil
}

const updatePayoutStatusSQL = `
UPDATE coach_payouts
SET status = $2
WHERE id = $1`

func (r *PayoutRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status finance.PayoutStatus) error {
	tag, err := r.db.Exec(ctx, updatePayoutStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update payout status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payout not found", nil, infra.KindNotFound)
	}
	return nil
}
