package readstore

import (
	"context"
	"strings"

	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
	"suppstore/internal/pkg/pgconv"
	"suppstore/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type PromoReadStore struct {
	db db.DBTX
}

func NewPromoReadStore(dbtx db.DBTX) *PromoReadStore {
	return &PromoReadStore{db: dbtx}
}

const findPromoByCodeSQL = `
SELECT id, code, amount_off_cents, percent_off, used, valid_from, valid_to
FROM promo_codes
WHERE code = $1`

func (r *PromoReadStore) FindByCode(ctx context.Context, code string) (*shared.PromoSnapshot, error) {
	// Codes are stored uppercase.
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var (
		snapshot           shared.PromoSnapshot
		amountOff          pgtype.Int8
		percentOff         pgtype.Float8
		validFrom, validTo pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findPromoByCodeSQL, normalized).
		Scan(&snapshot.ID, &snapshot.Code, &amountOff, &percentOff, &snapshot.Used, &validFrom, &validTo)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promo code", err)
	}

	if amountOff.Valid {
		v := amountOff.Int64
		snapshot.AmountOffCents = &v
	}
	if percentOff.Valid {
		v := percentOff.Float64
		snapshot.PercentOff = &v
	}
	if validFrom.Valid {
		t := validFrom.Time
		snapshot.ValidFrom = &t
	}
	if validTo.Valid {
		t := validTo.Time
		snapshot.ValidTo = &t
	}

	return &snapshot, nil
}
