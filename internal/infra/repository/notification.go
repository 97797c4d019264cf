package repository

import (
	"context"
	"time"

	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

const createNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, 'queued')`

// CreateJob enqueues a job in the same transaction as the write it
// announces, so consumers never see a job for a rolled-back change.
func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, createNotificationJobSQL, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
