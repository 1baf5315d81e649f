package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, uint32(320), Clamp(uint32(100), 320, 4096))
	assert.InDelta(t, 1.55334306, Clamp(float32(2.0), -1.55334306, 1.55334306), 1e-6)
}

func TestDegToRadRoundTrip(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180.0), 1e-6)
	assert.InDelta(t, 42.5, RadToDeg(DegToRad(42.5)), 1e-4)
}
