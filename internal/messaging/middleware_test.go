package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, fastRetryConfig(3))

		err := handler(context.Background(), []byte("k"), []byte("v"))

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			calls++
			return errors.New("permanent")
		}, fastRetryConfig(3))

		err := handler(context.Background(), []byte("k"), []byte("v"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			calls++
			cancel()
			return errors.New("fail")
		}, fastRetryConfig(5))

		err := handler(ctx, []byte("k"), []byte("v"))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

type fakeDLQ struct {
	published int
	lastKey   []byte
	lastErr   error
}

func (f *fakeDLQ) PublishToDLQ(_ context.Context, key, _ []byte, err error) error {
	f.published++
	f.lastKey = key
	f.lastErr = err
	return nil
}

func TestWithDLQ(t *testing.T) {
	t.Run("failed message goes to DLQ and offset commits", func(t *testing.T) {
		dlq := &fakeDLQ{}
		handlerErr := errors.New("handler broke")
		handler := WithDLQ(func(context.Context, []byte, []byte) error {
			return handlerErr
		}, dlq)

		err := handler(context.Background(), []byte("order-42"), []byte("payload"))

		require.NoError(t, err, "DLQ'd messages must commit the offset")
		assert.Equal(t, 1, dlq.published)
		assert.Equal(t, []byte("order-42"), dlq.lastKey)
		assert.ErrorIs(t, dlq.lastErr, handlerErr)
	})

	t.Run("successful message skips DLQ", func(t *testing.T) {
		dlq := &fakeDLQ{}
		handler := WithDLQ(func(context.Context, []byte, []byte) error {
			return nil
		}, dlq)

		err := handler(context.Background(), []byte("k"), []byte("v"))

		require.NoError(t, err)
		assert.Zero(t, dlq.published)
	})
}
