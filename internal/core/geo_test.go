package core_test

import (
	"math"
	"testing"

	"github.com/Ashish-0130/PaprCup/internal/core"
	"github.com/Ashish-0130/PaprCup/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name  string
		a, b  domain.Coordinates
		want  float64
		delta float64
	}{
		{"same point", domain.Coordinates{Lat: 52, Lon: 13}, domain.Coordinates{Lat: 52, Lon: 13}, 0, 1e-9},
		{"berlin to paris", domain.Coordinates{Lat: 52.52, Lon: 13.405}, domain.Coordinates{Lat: 48.8566, Lon: 2.3522}, 877.46, 0.5},
		{"close neighbours", domain.Coordinates{Lat: 52, Lon: 13}, domain.Coordinates{Lat: 52.01, Lon: 13.01}, 1.306, 0.01},
		{"100 degrees east", domain.Coordinates{Lat: 52, Lon: 13}, domain.Coordinates{Lat: 52, Lon: 113}, 6258.0, 1},
		{"antipodal on equator", domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 180}, math.Pi * core.EarthRadiusKm, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, core.Distance(tt.a, tt.b), tt.delta)
			assert.InDelta(t, tt.want, core.Distance(tt.b, tt.a), tt.delta, "distance is symmetric")
		})
	}
}

func TestDistanceKm_MissingCoordinates(t *testing.T) {
	p := &domain.Coordinates{Lat: 1, Lon: 1}

	assert.True(t, math.IsInf(core.DistanceKm(nil, p), 1))
	assert.True(t, math.IsInf(core.DistanceKm(p, nil), 1))
	assert.True(t, math.IsInf(core.DistanceKm(nil, nil), 1))
	assert.InDelta(t, 0, core.DistanceKm(p, p), 1e-9)
}
