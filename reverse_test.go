package citybed

import "testing"

func fixtureResolver() *reverseResolver {
	cities := fixtureWorld()
	return &reverseResolver{cities: cities, cells: buildCellIndex(cities)}
}

func TestResolveNearestCity(t *testing.T) {
	r := fixtureResolver()
	got := r.resolve(48.85, 2.35) // a few km from fixture Paris, FR
	if got.IsEmpty() || got.City != "Paris" || got.Country() != "FR" {
		t.Fatalf("resolve(near Paris) = %+v, want Paris, FR", got)
	}
}

func TestResolveNeighborhoodOverridePrefersBerlin(t *testing.T) {
	r := fixtureResolver()
	// Sits essentially on top of the small "Mitte" fixture, which is
	// heavily outpopulated by neighboring Berlin.
	got := r.resolve(52.5186, 13.4010)
	if got.IsEmpty() || got.City != "Berlin" {
		t.Fatalf("resolve(Mitte coords) = %+v, want the Berlin override", got)
	}
}

func TestResolveBeyondCutoffIsEmpty(t *testing.T) {
	r := fixtureResolver()
	got := r.resolve(89.9, 0) // north pole, nothing in the fixture world is close
	if !got.IsEmpty() {
		t.Errorf("resolve(north pole) = %+v, want empty (beyond cutoff)", got)
	}
}

func TestResolveInvalidCoordinateIsEmpty(t *testing.T) {
	r := fixtureResolver()
	cases := [][2]float64{{91, 0}, {0, 181}, {-91, 0}, {0, -181}}
	for _, c := range cases {
		if got := r.resolve(c[0], c[1]); !got.IsEmpty() {
			t.Errorf("resolve(%v) = %+v, want empty", c, got)
		}
	}
}

func TestValidCoordBoundaries(t *testing.T) {
	valid := [][2]float64{{90, 180}, {-90, -180}, {0, 0}}
	for _, c := range valid {
		if !validCoord(c[0], c[1]) {
			t.Errorf("validCoord(%v) = false, want true", c)
		}
	}
	invalid := [][2]float64{{90.1, 0}, {0, 180.1}}
	for _, c := range invalid {
		if validCoord(c[0], c[1]) {
			t.Errorf("validCoord(%v) = true, want false", c)
		}
	}
}
