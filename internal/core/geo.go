package core

import (
	"math"

	"github.com/Ashish-0130/PaprCup/internal/domain"
)

const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in kilometres.
func Distance(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// DistanceKm is Distance over optional coordinates; an absent side is +Inf away.
func DistanceKm(a, b *domain.Coordinates) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}
	return Distance(*a, *b)
}
