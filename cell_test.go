package citybed

import (
	"math"
	"testing"
)

func TestCellFaceInRange(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {52.52, 13.405}, {-33.8688, 151.2093}, {89.9, 0}, {-89.9, 179.9},
	}
	for _, p := range points {
		cell := cellFromLatLng(degToRad(p[0]), degToRad(p[1]))
		face := cellFace(cell)
		if face < 0 || face > 5 {
			t.Errorf("cellFace(%v) = %d, want in [0,5]", p, face)
		}
	}
}

func TestEdgeNeighborsAreFourDistinctCells(t *testing.T) {
	cell := parentAtLevel(cellFromLatLng(degToRad(48.8566), degToRad(2.3522)), queryCellLevel)
	neighbors := edgeNeighbors(cell)

	if len(neighbors) != 4 {
		t.Fatalf("edgeNeighbors returned %d cells, want 4", len(neighbors))
	}
	seen := map[CellID]bool{cell: true}
	for _, n := range neighbors {
		if n == cell {
			t.Errorf("edge neighbor equals the cell itself: %v", n)
		}
		if seen[n] {
			t.Errorf("duplicate edge neighbor: %v", n)
		}
		seen[n] = true
		if f := cellFace(n); f < 0 || f > 5 {
			t.Errorf("edge neighbor face = %d, want in [0,5]", f)
		}
	}
}

func TestParentAtLevelMatchesRequestedLevel(t *testing.T) {
	leaf := cellFromLatLng(degToRad(40.7128), degToRad(-74.0060))
	for _, level := range []int{0, 5, 10, 20, 30} {
		parent := parentAtLevel(leaf, level)
		if got := parent.Level(); got != level {
			t.Errorf("parentAtLevel(_, %d).Level() = %d, want %d", level, got, level)
		}
	}
}

func TestAngularDistanceSamePointIsZero(t *testing.T) {
	d := angularDistance(degToRad(10), degToRad(20), degToRad(10), degToRad(20))
	if d != 0 {
		t.Errorf("angularDistance(p, p) = %v, want 0", d)
	}
}

func TestAngularDistanceAntipodalIsPi(t *testing.T) {
	d := angularDistance(0, 0, 0, math.Pi)
	if math.Abs(d-math.Pi) > 1e-9 {
		t.Errorf("angularDistance(antipodal) = %v, want ~pi", d)
	}
}

func TestAngularDistanceKnownCities(t *testing.T) {
	// Berlin to Mitte is well under 10km -> well under 0.00157 rad.
	berlin := [2]float64{52.5200, 13.4050}
	mitte := [2]float64{52.5186, 13.4010}
	d := angularDistance(degToRad(berlin[0]), degToRad(berlin[1]), degToRad(mitte[0]), degToRad(mitte[1]))
	if d <= 0 || d > neighborhoodOverrideRadius {
		t.Errorf("angularDistance(Berlin, Mitte) = %v rad, want in (0, %v]", d, neighborhoodOverrideRadius)
	}
}
