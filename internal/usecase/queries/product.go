package queries

import (
	"context"
)

type ProductReadStore interface {
	List(ctx context.Context, category string, limit, offset int32) ([]*ProductView, error)
}

type ProductQueries interface {
	List(ctx context.Context, category string, limit, offset int) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) List(ctx context.Context, category string, limit, offset int) ([]*ProductView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return q.store.List(ctx, category, int32(limit), int32(offset))
}
