package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableWriteError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"unique violation on assigned number", &pgconn.PgError{Code: "23505"}, true},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, false},
		{"wrapped pg error", errors.Join(errors.New("exec failed"), &pgconn.PgError{Code: "40001"}), true},
		{"plain error", errors.New("connection reset"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableWriteError(tt.err))
		})
	}
}

func TestDefaultCounterBackOffStops(t *testing.T) {
	const maxRetries = 3
	b := DefaultCounterBackOff(maxRetries)()

	attempts := 0
	for {
		wait := b.NextBackOff()
		if wait < 0 {
			break
		}
		attempts++
		if attempts > maxRetries {
			t.Fatalf("backoff allowed more than %d retries", maxRetries)
		}
		assert.LessOrEqual(t, wait, 500*time.Millisecond)
	}
	assert.Equal(t, maxRetries, attempts)
}

func TestDefaultCounterBackOffFreshPerCall(t *testing.T) {
	factory := DefaultCounterBackOff(1)
	first := factory()
	first.NextBackOff()
	first.NextBackOff()
	assert.Negative(t, first.NextBackOff())

	// A new schedule from the same factory must start over.
	second := factory()
	assert.GreaterOrEqual(t, second.NextBackOff(), time.Duration(0))
}
