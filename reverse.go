package citybed

import (
	"math"
	"sort"
)

// maxReverseDistance is the hard cutoff (~100km) past which a reverse
// lookup returns the empty record rather than a misleadingly distant city.
const maxReverseDistance = 0.0157

// neighborhoodOverrideRadius (~10km) bounds how far the reverse resolver
// looks for a much larger neighboring city when the nearest match is a
// small one (a "Mitte" next to "Berlin" problem).
const neighborhoodOverrideRadius = 0.00157

// neighborhoodOverridePopulation is the population below which the
// nearest match is considered a "neighborhood" eligible for override.
const neighborhoodOverridePopulation = 500_000

// neighborhoodOverrideFactor is the population multiple a nearby candidate
// must exceed the nearest match by to win the override.
const neighborhoodOverrideFactor = 10

// reverseResolver implements C7: nearest-city lookup over the cell index.
type reverseResolver struct {
	cities []CityRecord
	cells  cellIndex
}

type reverseCandidate struct {
	idx  int
	dist float64
}

// resolve returns the nearest meaningful city to (lat, lng), both in
// degrees, or the empty record if lat/lng is invalid, no candidate is
// found, or the nearest candidate exceeds the distance cutoff.
func (r *reverseResolver) resolve(lat, lng float64) CityRecord {
	if !validCoord(lat, lng) {
		return CityRecord{}
	}

	latRad, lngRad := degToRad(lat), degToRad(lng)
	queryCell := parentAtLevel(cellFromLatLng(latRad, lngRad), queryCellLevel)

	var candidates []reverseCandidate
	for _, cell := range neighborhood(queryCell) {
		for _, idx := range r.cells[cell] {
			c := r.cities[idx]
			dist := angularDistance(latRad, lngRad, degToRad(float64(c.Latitude)), degToRad(float64(c.Longitude)))
			candidates = append(candidates, reverseCandidate{idx: idx, dist: dist})
		}
	}

	if len(candidates) == 0 {
		return CityRecord{}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.dist != cj.dist {
			return ci.dist < cj.dist
		}
		pi, pj := r.cities[ci.idx].Population, r.cities[cj.idx].Population
		if pi != pj {
			return pi > pj
		}
		return r.cities[ci.idx].City < r.cities[cj.idx].City
	})

	best := candidates[0]

	if best.dist > maxReverseDistance {
		return CityRecord{}
	}

	if r.cities[best.idx].Population < neighborhoodOverridePopulation {
		bestPop := r.cities[best.idx].Population
		for _, c := range candidates[1:] {
			if c.dist > neighborhoodOverrideRadius {
				break
			}
			if r.cities[c.idx].Population > bestPop*neighborhoodOverrideFactor {
				best = c
				break
			}
		}
	}

	return r.cities[best.idx]
}

// validCoord reports whether lat/lng is finite and within range.
func validCoord(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
