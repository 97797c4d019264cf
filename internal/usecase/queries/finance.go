package queries

import (
	"context"

	"suppstore/internal/infra/db"
	"suppstore/internal/usecase/shared"

	"github.com/google/uuid"
)

type FinanceReadStore interface {
	LedgerByCoach(ctx context.Context, dbtx db.DBTX, coachID uuid.UUID) (*CoachFinanceView, error)
	PaymentsByCoach(ctx context.Context, dbtx db.DBTX, coachID uuid.UUID) ([]PaymentView, error)
	PayoutsByCoach(ctx context.Context, dbtx db.DBTX, coachID uuid.UUID) ([]PayoutView, error)
}

type FinanceQueries interface {
	CoachDashboard(ctx context.Context, coachID uuid.UUID) (*CoachFinanceView, error)
}

type financeQueriesImpl struct {
	uow   shared.UnitOfWork
	store FinanceReadStore
}

func NewFinanceQueries(uow shared.UnitOfWork, store FinanceReadStore) FinanceQueries {
	return &financeQueriesImpl{uow: uow, store: store}
}

// CoachDashboard assembles the ledger, payments and payouts in one
// read-only transaction so the dashboard totals are mutually
// consistent.
func (q *financeQueriesImpl) CoachDashboard(ctx context.Context, coachID uuid.UUID) (*CoachFinanceView, error) {
	var view *CoachFinanceView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		ledger, err := q.store.LedgerByCoach(ctx, dbtx, coachID)
		if err != nil {
			return err
		}

		payments, err := q.store.PaymentsByCoach(ctx, dbtx, coachID)
		if err != nil {
			return err
		}

		payouts, err := q.store.PayoutsByCoach(ctx, dbtx, coachID)
		if err != nil {
			return err
		}

		ledger.Payments = payments
		ledger.Payouts = payouts
		view = ledger
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
