package application

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID_Format(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := newOrderID(now)

	parts := strings.SplitN(id, "-", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "ORD", parts[0])
	assert.Equal(t, "1748779200000", parts[1])
	assert.Len(t, parts[2], 8)
}

func TestNewOrderID_Uniqueness(t *testing.T) {
	t.Parallel()

	now := time.Now()
	seen := make(map[string]bool, 10_000)
	for i := 0; i < 10_000; i++ {
		id := newOrderID(now)
		require.False(t, seen[id], "duplicate order id %s after %d generations", id, i)
		seen[id] = true
	}
}
