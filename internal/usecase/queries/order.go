package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, limit, offset int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, limit, offset int) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *orderQueriesImpl) List(ctx context.Context, limit, offset int) ([]*OrderListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return q.store.List(ctx, int32(limit), int32(offset))
}
