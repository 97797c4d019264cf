//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"suppstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("out of stock")
	cause := errs.New("whey: requested 3, available 1")

	t.Run("marked errors match the sentinel through Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(err, sentinel))
		assert.True(t, errs.Is(err, cause))
		assert.False(t, errs.Is(err, errs.New("unrelated")))
	})

	t.Run("marks live outside the stdlib unwrap chain", func(t *testing.T) {
		// The mark is metadata, not a wrapper: the stdlib errors.Is
		// walks only the cause chain and must not be used on sentinels.
		err := errs.Mark(cause, sentinel)

		assert.False(t, stderrors.Is(err, sentinel))
		assert.True(t, stderrors.Is(err, cause))
	})

	t.Run("message stays the cause's", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.ErrorIs(t, err, sentinel)
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))

	cause := errs.New("connection refused")
	err := errs.Wrap(cause, "query products")
	assert.True(t, errs.Is(err, cause))
	assert.Contains(t, err.Error(), "query products")
}
