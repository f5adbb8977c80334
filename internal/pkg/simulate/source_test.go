package simulate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(0.1, 0.9)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.9, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
}

func TestSequenceIntn(t *testing.T) {
	s := NewSequence(0, 0.5, 0.999999)
	assert.Equal(t, 0, s.Intn(10))
	assert.Equal(t, 5, s.Intn(10))
	assert.Equal(t, 9, s.Intn(10))
	assert.Panics(t, func() { s.Intn(0) })
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, Sleep(context.Background(), 0))
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
}
