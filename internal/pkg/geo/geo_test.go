package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(-6.2, 106.8, -6.2, 106.8))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Jakarta (Monas) to Bandung (Gedung Sate): roughly 118 km.
	d := DistanceMeters(-6.1754, 106.8272, -6.9025, 107.6186)
	assert.InDelta(t, 118000, d, 3000)
}

func TestWithinRadius(t *testing.T) {
	centerLat, centerLon := -6.2000, 106.8166

	// ~15 m offset in latitude (1 degree latitude ~ 111 km).
	assert.True(t, WithinRadius(centerLat+0.00013, centerLon, centerLat, centerLon, 50))
	assert.False(t, WithinRadius(centerLat+0.01, centerLon, centerLat, centerLon, 50))
}
