package repository

import (
	"context"

	"suppstore/internal/infra"
	"suppstore/internal/infra/db"

	"github.com/google/uuid"
)

type PromoRepository struct {
	db db.DBTX
}

func NewPromoRepository(dbtx db.DBTX) *PromoRepository {
	return &PromoRepository{db: dbtx}
}

const redeemPromoSQL = `
UPDATE promo_codes
SET used = TRUE, updated_at = now()
WHERE id = $1 AND used = FALSE`

// Redeem flips the used flag with a guard, so two concurrent checkouts
// racing on the same code cannot both succeed; the loser sees zero
// rows and a conflict.
func (r *PromoRepository) Redeem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, redeemPromoSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem promo code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promo code already redeemed", nil, infra.KindConflict)
	}
	return nil
}
