package id

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestMovement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		at         time.Time
		expectedMs uint64
	}{
		{name: "after_epoch", at: time.Date(2020, time.July, 26, 12, 1, 20, 0, time.UTC), expectedMs: 1595764880000},
		{name: "epoch", at: time.Unix(0, 0), expectedMs: 0},
		{name: "before_epoch", at: time.Date(1969, time.December, 31, 23, 59, 59, 0, time.UTC), expectedMs: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var movementID string
			require.NotPanics(t, func() { movementID = Movement(tt.at) })

			parsed, err := ulid.ParseStrict(movementID)
			require.NoError(t, err)
			require.Equal(t, tt.expectedMs, parsed.Time())
		})
	}
}

// Not parallel: interleaved calls for other timestamps reset the monotonic
// entropy.
func TestMovement_Increasing(t *testing.T) {
	at := time.Date(2020, time.July, 26, 12, 1, 20, 0, time.UTC)
	previous := Movement(at)
	for range 100 {
		next := Movement(at)
		require.Greater(t, next, previous)
		previous = next
	}
}
