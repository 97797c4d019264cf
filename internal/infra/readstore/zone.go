package readstore

import (
	"context"

	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
	"suppstore/internal/pkg/pgconv"
	"suppstore/internal/usecase/shared"
)

type ZoneReadStore struct {
	db db.DBTX
}

func NewZoneReadStore(dbtx db.DBTX) *ZoneReadStore {
	return &ZoneReadStore{db: dbtx}
}

const findZoneSQL = `
SELECT id, state, city, fee_cents
FROM shipping_zones
WHERE LOWER(state) = LOWER($1) AND LOWER(city) = LOWER($2)`

func (r *ZoneReadStore) FindByStateCity(ctx context.Context, state, city string) (*shared.ZoneSnapshot, error) {
	var snapshot shared.ZoneSnapshot
	err := r.db.QueryRow(ctx, findZoneSQL, state, city).
		Scan(&snapshot.ID, &snapshot.State, &snapshot.City, &snapshot.FeeCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shipping zone not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shipping zone", err)
	}
	return &snapshot, nil
}
