package citybed

import "testing"

func fixtureScorer() *forwardScorer {
	cities := fixtureWorld()
	return &forwardScorer{cities: cities, names: buildNameIndex(cities)}
}

func TestScoreFuzzyFastPathCityAndState(t *testing.T) {
	s := fixtureScorer()
	got := s.scoreFuzzy("Paris", "", "TX", nil, []string{"Paris"}, 0,
		s.gatherCandidates("Paris", []string{"Paris"}, 0))
	if got.IsEmpty() || got.Country() != "US" || got.Region() != "TX" {
		t.Fatalf("got %+v, want the Paris, TX fast-path match", got)
	}
}

func TestScoreFuzzyCountryQualifierWins(t *testing.T) {
	s := fixtureScorer()
	candidates := s.gatherCandidates("Paris", []string{"Paris"}, 0)
	got := s.scoreFuzzy("Paris", "FR", "", nil, []string{"Paris"}, 0, candidates)
	if got.IsEmpty() || got.Country() != "FR" {
		t.Fatalf("got %+v, want Paris, FR", got)
	}
}

func TestScoreFuzzyNoQualifierPrefersPopulation(t *testing.T) {
	s := fixtureScorer()
	candidates := s.gatherCandidates("Paris", []string{"Paris"}, 0)
	got := s.scoreFuzzy("Paris", "", "", nil, []string{"Paris"}, 0, candidates)
	if got.IsEmpty() || got.Country() != "FR" {
		t.Fatalf("got %+v, want the higher-population Paris, FR", got)
	}
}

func TestScoreFuzzyAltNameExactMatch(t *testing.T) {
	s := fixtureScorer()
	candidates := s.gatherCandidates("Bombay", []string{"Bombay"}, 0)
	got := s.scoreFuzzy("Bombay", "", "", nil, []string{"Bombay"}, 0, candidates)
	if got.IsEmpty() || got.City != "Mumbai" {
		t.Fatalf("got %+v, want Mumbai via its alt name", got)
	}
}

func TestScoreFuzzyTypoToleratesEditDistance(t *testing.T) {
	s := fixtureScorer()
	query := "Berln"
	candidates := s.gatherCandidates(query, []string{query}, 1)
	got := s.scoreFuzzy(query, "", "", nil, []string{query}, 1, candidates)
	if got.IsEmpty() || got.City != "Berlin" {
		t.Fatalf("got %+v, want Berlin (edit distance 1)", got)
	}
}

func TestScoreFuzzyNoCandidatesIsEmpty(t *testing.T) {
	s := fixtureScorer()
	got := s.scoreFuzzy("Zzzznowhere", "", "", nil, []string{"Zzzznowhere"}, 0, map[int]bool{})
	if !got.IsEmpty() {
		t.Errorf("got %+v, want empty record", got)
	}
}

func TestScoreExactRejectsFuzzyNeighbors(t *testing.T) {
	s := fixtureScorer()
	candidates := s.gatherCandidates("Berln", []string{"Berln"}, 0)
	got := s.scoreExact("Berln", "", "", []string{"Berln"}, candidates)
	if !got.IsEmpty() {
		t.Errorf("got %+v, want empty (exact mode rejects a misspelling)", got)
	}
}

func TestScoreExactPopulationTiebreakAmongHomonyms(t *testing.T) {
	s := fixtureScorer()
	candidates := s.gatherCandidates("London", []string{"London"}, 0)
	got := s.scoreExact("London", "", "", []string{"London"}, candidates)
	if got.IsEmpty() || got.Country() != "GB" {
		t.Fatalf("got %+v, want London, GB (higher population)", got)
	}
}

func TestScoreExactCountryQualifierNarrowsHomonyms(t *testing.T) {
	s := fixtureScorer()
	candidates := s.gatherCandidates("London", []string{"London"}, 0)
	got := s.scoreExact("London", "CA", "", []string{"London"}, candidates)
	if got.IsEmpty() || got.Country() != "CA" {
		t.Fatalf("got %+v, want London, CA", got)
	}
}

func TestEditDistanceIsCaseInsensitive(t *testing.T) {
	if d := editDistance("BERLIN", "berlin"); d != 0 {
		t.Errorf("editDistance case-insensitive = %d, want 0", d)
	}
	if d := editDistance("Berlin", "Berln"); d != 1 {
		t.Errorf("editDistance(Berlin, Berln) = %d, want 1", d)
	}
}

func TestFuzzyMatchWithinZeroRequiresExact(t *testing.T) {
	if fuzzyMatchWithin("Berlin", "Berln", 0) {
		t.Error("fuzzyMatchWithin with maxDist 0 should require an exact fold match")
	}
	if !fuzzyMatchWithin("Berlin", "BERLIN", 0) {
		t.Error("fuzzyMatchWithin with maxDist 0 should still fold case")
	}
}
