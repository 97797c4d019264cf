package readstore

import (
	"context"

	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
	"suppstore/internal/pkg/pgconv"
	"suppstore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// FinanceReadStore serves the admin finance dashboard. Methods take
// the db handle explicitly so one read-only transaction can span the
// ledger, payments and payouts.
type FinanceReadStore struct{}

func NewFinanceReadStore() *FinanceReadStore {
	return &FinanceReadStore{}
}

const ledgerByCoachSQL = `
SELECT coach_id, commission_rate, total_earnings_cents, paid_out_cents, pending_payout_cents
FROM coach_ledgers
WHERE coach_id = $1`

func (r *FinanceReadStore) LedgerByCoach(ctx context.Context, dbtx db.DBTX, coachID uuid.UUID) (*queries.CoachFinanceView, error) {
	var view queries.CoachFinanceView
	err := dbtx.QueryRow(ctx, ledgerByCoachSQL, coachID).Scan(
		&view.CoachID, &view.CommissionRate,
		&view.TotalEarningsCents, &view.PaidOutCents, &view.PendingPayoutCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ledger not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ledger", err)
	}
	return &view, nil
}

const paymentsByCoachSQL = `
SELECT id, coach_id, client_name, plan_title, amount_cents, coach_share_cents, status, paid_at
FROM client_payments
WHERE coach_id = $1
ORDER BY paid_at DESC`

func (r *FinanceReadStore) PaymentsByCoach(ctx context.Context, dbtx db.DBTX, coachID uuid.UUID) ([]queries.PaymentView, error) {
	rows, err := dbtx.Query(ctx, paymentsByCoachSQL, coachID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list client payments", err)
	}
	defer rows.Close()

	var views []queries.PaymentView
	for rows.Next() {
		var (
			view   queries.PaymentView
			paidAt pgtype.Timestamptz
		)
		err := rows.Scan(&view.ID, &view.CoachID, &view.ClientName, &view.PlanTitle,
			&view.AmountCents, &view.CoachShareCents, &view.Status, &paidAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan client payment row", err)
		}
		view.PaidAt = paidAt.Time
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read client payment rows", err)
	}

	return views, nil
}

const payoutsByCoachSQL = `
SELECT id, coach_id, client_name, plan_title, amount_cents, status, payout_date
FROM coach_payouts
WHERE coach_id = $1
ORDER BY payout_date DESC`

func (r *FinanceReadStore) PayoutsByCoach(ctx context.Context, dbtx db.DBTX, coachID uuid.UUID) ([]queries.PayoutView, error) {
	rows, err := dbtx.Query(ctx, payoutsByCoachSQL, coachID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts", err)
	}
	defer rows.Close()

	var views []queries.PayoutView
	for rows.Next() {
		var (
			view       queries.PayoutView
			payoutDate pgtype.Timestamptz
		)
		err := rows.Scan(&view.ID, &view.CoachID, &view.ClientName, &view.PlanTitle,
			&view.AmountCents, &view.Status, &payoutDate)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payout row", err)
		}
		view.PayoutDate = payoutDate.Time
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payout rows", err)
	}

	return views, nil
}
