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

type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(dbtx db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: dbtx}
}

const findLedgerForUpdateSQL = `
SELECT coach_id, commission_rate, total_earnings_cents, paid_out_cents,
       pending_payout_cents, created_at, updated_at
FROM coach_ledgers
WHERE coach_id = $1
FOR UPDATE`

// FindForUpdate locks the coach's ledger row for the rest of the
// transaction, serializing concurrent credits, settlements and
// reversals against the same coach.
func (r *LedgerRepository) FindForUpdate(ctx context.Context, coachID uuid.UUID) (*finance.CoachLedger, error) {
	var (
		id                              uuid.UUID
		rate                            int
		totalEarnings, paidOut, pending int64
		createdAt, updatedAt            pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findLedgerForUpdateSQL, coachID).
		Scan(&id, &rate, &totalEarnings, &paidOut, &pending, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ledger not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ledger", err)
	}

	return finance.ReconstructCoachLedger(id, rate, totalEarnings, paidOut, pending, createdAt.Time, updatedAt.Time), nil
}

const createLedgerSQL = `
INSERT INTO coach_ledgers (
	coach_id, commission_rate, total_earnings_cents, paid_out_cents,
	pending_payout_cents, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, now(), now())`

func (r *LedgerRepository) Create(ctx context.Context, ledger *finance.CoachLedger) error {
	_, err := r.db.Exec(ctx, createLedgerSQL,
		ledger.CoachID(), ledger.CommissionRate(),
		ledger.TotalEarnings(), ledger.PaidOut(), ledger.PendingPayout(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("ledger already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create ledger", err)
	}
	return nil
}

const saveLedgerSQL = `
UPDATE coach_ledgers
SET commission_rate = $2, total_earnings_cents = $3, paid_out_cents = $4,
    pending_payout_cents = $5, updated_at = now()
WHERE coach_id = $1`

func (r *LedgerRepository) Save(ctx context.Context, ledger *finance.CoachLedger) error {
	tag, err := r.db.Exec(ctx, saveLedgerSQL,
		ledger.CoachID(), ledger.CommissionRate(),
		ledger.TotalEarnings(), ledger.PaidOut(), ledger.PendingPayout(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save ledger", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ledger not found", nil, infra.KindNotFound)
	}
	return nil
}
