package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(6.5158, 3.3966, 6.5158, 3.3966))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineDistance(6.5158, 3.3966, 6.5176, 3.3941)
		b := HaversineDistance(6.5176, 3.3941, 6.5158, 3.3966)
		assert.Equal(t, a, b)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		dist := HaversineDistance(0, 0, 1, 0)
		assert.InDelta(t, 111.195, dist, 0.01)
	})

	t.Run("fifty meters apart", func(t *testing.T) {
		// ~0.00045 degrees of latitude is about 50m on the ground
		dist := HaversineDistance(6.5158, 3.3966, 6.5158+0.00045, 3.3966)
		assert.InDelta(t, 0.05, dist, 0.005)
	})

	t.Run("triangle inequality", func(t *testing.T) {
		points := [][2]float64{
			{6.5158, 3.3966},
			{6.5201, 3.3923},
			{6.5139, 3.3875},
			{0, 0},
			{52.5200, 13.4050},
		}
		for i := 0; i < len(points); i++ {
			for j := 0; j < len(points); j++ {
				for k := 0; k < len(points); k++ {
					ab := HaversineDistance(points[i][0], points[i][1], points[j][0], points[j][1])
					bc := HaversineDistance(points[j][0], points[j][1], points[k][0], points[k][1])
					ac := HaversineDistance(points[i][0], points[i][1], points[k][0], points[k][1])
					assert.LessOrEqual(t, ac, ab+bc+1e-9)
				}
			}
		}
	})

	t.Run("numerically stable for sub-meter separation", func(t *testing.T) {
		dist := HaversineDistance(6.5158, 3.3966, 6.5158+1e-8, 3.3966)
		assert.False(t, dist != dist, "distance must not be NaN")
		assert.GreaterOrEqual(t, dist, 0.0)
	})
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name        string
		fromLat     float64
		fromLon     float64
		toLat       float64
		toLon       float64
		wantBearing float64
	}{
		{name: "due north", fromLat: 0, fromLon: 0, toLat: 1, toLon: 0, wantBearing: 0},
		{name: "due east", fromLat: 0, fromLon: 0, toLat: 0, toLon: 1, wantBearing: 90},
		{name: "due south", fromLat: 1, fromLon: 0, toLat: 0, toLon: 0, wantBearing: 180},
		{name: "due west", fromLat: 0, fromLon: 1, toLat: 0, toLon: 0, wantBearing: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.fromLat, tt.fromLon, tt.toLat, tt.toLon)
			assert.InDelta(t, tt.wantBearing, got, 0.001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}
