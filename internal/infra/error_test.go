//go:build unit

package infra_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"suppstore/internal/infra"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to DB failure and logs the kind", func(t *testing.T) {
		buf := captureLog(t)

		err := infra.WrapRepoErr("failed to insert order", errors.New("connection refused"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Contains(t, err.Error(), "failed to insert order")
		assert.Contains(t, buf.String(), "Repository error: failed to insert order")
		assert.Contains(t, buf.String(), "kind=DB_FAILURE")
	})

	t.Run("explicit kind", func(t *testing.T) {
		buf := captureLog(t)

		err := infra.WrapRepoErr("order not found", errors.New("no rows in result set"), infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindConflict))
		assert.Contains(t, buf.String(), "kind=NOT_FOUND")
	})

	t.Run("nil cause still yields a kinded error", func(t *testing.T) {
		captureLog(t)

		err := infra.WrapRepoErr("promo already used", nil, infra.KindConflict)

		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Contains(t, err.Error(), "promo already used")
	})
}

func TestIsKind_UnrelatedError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
}
