package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, 29.0, Distance(0, 0, 0, 29), 1e-9)
	assert.InDelta(t, 31.0, Distance(0, 0, 0, 31), 1e-9)
}

func TestDistanceIsSymmetric(t *testing.T) {
	points := [][4]float64{
		{0, 0, 3, 4},
		{12.5, 99.1, 40.25, 3.75},
		{100, 0, 0, 100},
		{-7, 2, 5, -11},
	}
	for _, p := range points {
		assert.Equal(t, Distance(p[0], p[1], p[2], p[3]), Distance(p[2], p[3], p[0], p[1]))
	}
}

func TestDistanceZeroForSamePoint(t *testing.T) {
	for _, p := range [][2]float64{{0, 0}, {42.42, 17.17}, {100, 100}} {
		assert.Zero(t, Distance(p[0], p[1], p[0], p[1]))
	}
	assert.NotZero(t, Distance(1, 1, 1, 1.0001))
}

func TestWithinRangeBoundary(t *testing.T) {
	assert.True(t, WithinRange(0))
	assert.True(t, WithinRange(29.999))
	assert.False(t, WithinRange(30))
	assert.False(t, WithinRange(30.001))
}

func TestTooFarBoundary(t *testing.T) {
	assert.False(t, TooFar(29))
	assert.False(t, TooFar(30))
	assert.True(t, TooFar(30.001))
	assert.True(t, TooFar(31))
}

func TestBoundsContainRange(t *testing.T) {
	minLat, maxLat, minLon, maxLon := Bounds(10, 20)
	assert.Equal(t, -20.0, minLat)
	assert.Equal(t, 40.0, maxLat)
	assert.Equal(t, -10.0, minLon)
	assert.Equal(t, 50.0, maxLon)
}

func TestNonFiniteDistance(t *testing.T) {
	nan := Distance(math.NaN(), 0, 0, 1000)
	assert.True(t, TooFar(nan))
	assert.False(t, WithinRange(nan))
	assert.True(t, TooFar(math.Inf(1)))
	assert.False(t, WithinRange(math.Inf(1)))
}
