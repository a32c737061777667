package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunIDMonotonic(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	prev := NewRunID(now)
	for i := 0; i < 100; i++ {
		next := NewRunID(now)
		assert.Len(t, next, 26)
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestRunTime(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 123e6, time.UTC)

	got, err := RunTime(NewRunID(now))
	require.NoError(t, err)
	assert.True(t, got.Equal(now))

	_, err = RunTime("not-a-ulid")
	assert.Error(t, err)
}
