package core

import "github.com/Ashish-0130/PaprCup/internal/domain"

const DefaultMaxDistanceKm = 100.0

// Matcher decides whether requester a may be paired with candidate b.
type Matcher interface {
	Compatible(a, b *domain.Participant) bool
}

// FilterMatcher applies the gender filter both ways and, for premium
// requesters, a proximity filter from the requester's side only.
type FilterMatcher struct {
	MaxDistanceKm float64
}

func NewFilterMatcher(maxDistanceKm float64) FilterMatcher {
	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}
	return FilterMatcher{MaxDistanceKm: maxDistanceKm}
}

func (m FilterMatcher) Compatible(a, b *domain.Participant) bool {
	if a == nil || b == nil {
		return false
	}
	if !wants(a.LookingFor, b.Gender) || !wants(b.LookingFor, a.Gender) {
		return false
	}
	// Skipped entirely when either side has no coordinates.
	if a.IsPremium && a.HasLocation() && b.HasLocation() {
		if DistanceKm(a.Location, b.Location) > m.MaxDistanceKm {
			return false
		}
	}
	return true
}

func wants(lookingFor, gender domain.Gender) bool {
	return lookingFor == domain.GenderAny || lookingFor == gender
}
