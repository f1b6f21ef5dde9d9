package citybed

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// forwardScorer implements C6: it turns a qualifier-stripped query and a
// candidate set drawn from the name index into a single best CityRecord.
type forwardScorer struct {
	cities []CityRecord
	names  nameIndex
}

// editDistance is the edit_distance(a, b) function used for typo tolerance.
func editDistance(a, b string) int {
	return levenshtein.ComputeDistance(toLower(a), toLower(b))
}

// fuzzyMatchWithin reports whether the edit distance between query and
// candidate is within maxDist (case-insensitive). maxDist == 0 means exact.
func fuzzyMatchWithin(query, candidate string, maxDist int) bool {
	if maxDist == 0 {
		return strings.EqualFold(query, candidate)
	}
	return editDistance(query, candidate) <= maxDist
}

// gatherCandidates implements §4.5.1: the shared candidate-gathering step
// used by both scoring modes.
func (s *forwardScorer) gatherCandidates(query string, nameSlice []string, fuzzyDistance int) map[int]bool {
	candidates := make(map[int]bool)

	add := func(key string) {
		for _, idx := range s.names.get(toLower(key)) {
			candidates[idx] = true
		}
	}

	add(query)
	add(strings.Join(nameSlice, " "))
	for _, tok := range nameSlice {
		add(strings.TrimSuffix(tok, ","))
	}

	if fuzzyDistance > 0 {
		for key, indices := range s.names {
			for _, tok := range nameSlice {
				tok = strings.TrimSuffix(tok, ",")
				if len(tok) > 2 && fuzzyMatchWithin(tok, key, fuzzyDistance) {
					for _, idx := range indices {
						candidates[idx] = true
					}
				}
			}
		}
	}

	return candidates
}

// scoreFuzzy implements §4.5.2: the default, scored matching mode.
func (s *forwardScorer) scoreFuzzy(query, countryISO, stateCode string, abbrevSlice, nameSlice []string, fuzzyDistance int, candidates map[int]bool) CityRecord {
	if len(candidates) == 0 {
		return CityRecord{}
	}

	scores := make(map[int]int, len(candidates))

	for idx := range candidates {
		v := s.cities[idx]
		vCountry := v.Country()
		vRegion := v.Region()

		// Fast path: when a state code was extracted, a candidate whose name
		// equals the whole query and whose region equals that state code
		// wins outright, regardless of everything else. The whole query is
		// compared, so a "City, ST" query (which still holds the state
		// code) does not take this path.
		if stateCode != "" && strings.EqualFold(query, v.City) && strings.EqualFold(stateCode, vRegion) {
			return v
		}

		score := 0

		for _, av := range abbrevSlice {
			if len(av) != 2 {
				continue
			}
			if strings.EqualFold(vRegion, av) {
				score += 5 // R1
			}
			if strings.EqualFold(vCountry, av) {
				score += 3 // R2
			}
		}

		if countryISO != "" && countryISO == vCountry {
			score += 4 // R3
		}
		if stateCode != "" && stateCode == vRegion {
			score += 4 // R4
		}

		if v.CityAlt != "" {
			for _, raw := range strings.Split(v.CityAlt, ",") {
				alt := strings.TrimSpace(raw)
				if alt == "" {
					continue
				}
				if strings.EqualFold(alt, query) {
					score += 3 // R5
				}
				if alt == query {
					score += 5 // R6
				}
			}
		}

		if strings.EqualFold(query, v.City) || strings.EqualFold(stripDiacritics(query), stripDiacritics(v.City)) {
			score += 7 // R7
		} else if fuzzyDistance > 0 {
			for _, tok := range nameSlice {
				tok = strings.TrimSuffix(tok, ",")
				if len(tok) > 2 && fuzzyMatchWithin(tok, v.City, fuzzyDistance) {
					score += 5 // R8, per matching token
				}
			}
		}

		for _, tok := range nameSlice {
			tok = strings.TrimSuffix(tok, ",")
			if tok == "" {
				continue
			}
			if strings.Contains(toLower(v.City), toLower(tok)) {
				score += 2 // R9
			}
			if strings.EqualFold(v.City, tok) {
				score += 1 // R10
			}
		}

		scores[idx] = score
	}

	if countryISO == "" {
		s.applyPopulationPreference(scores)
	}

	return s.selectByScore(scores)
}

// applyPopulationPreference implements the population-adjusted preference
// applied when countryISO is empty: every candidate with population >=
// 1000 gets +1, and the single highest-population candidate gets a further
// +1.
func (s *forwardScorer) applyPopulationPreference(scores map[int]int) {
	highestPop := int32(0)
	highestIdx := -1
	for idx := range scores {
		pop := s.cities[idx].Population
		if pop >= 1000 {
			scores[idx]++
		}
		if pop > highestPop || (pop == highestPop && highestIdx >= 0 && idx < highestIdx) {
			highestPop = pop
			highestIdx = idx
		}
	}
	if highestIdx >= 0 && highestPop > 0 {
		scores[highestIdx]++
	}
}

// selectByScore picks the highest-scoring candidate, tie-breaking on
// population then on lowest index for determinism. Returns the empty
// record if the best score is <= 0.
func (s *forwardScorer) selectByScore(scores map[int]int) CityRecord {
	best := -1
	bestScore := 0
	for idx, score := range scores {
		switch {
		case best < 0 || score > bestScore:
			best, bestScore = idx, score
		case score == bestScore:
			if s.cities[idx].Population > s.cities[best].Population {
				best = idx
			} else if s.cities[idx].Population == s.cities[best].Population && idx < best {
				best = idx
			}
		}
	}
	if best < 0 || bestScore <= 0 {
		return CityRecord{}
	}
	return s.cities[best]
}

// scoreExact implements §4.5.3: exact-city-match mode.
func (s *forwardScorer) scoreExact(query, countryISO, stateCode string, nameSlice []string, candidates map[int]bool) CityRecord {
	rejoined := strings.Join(nameSlice, " ")

	// Visit candidates in corpus order so population ties resolve the same
	// way on every call.
	order := make([]int, 0, len(candidates))
	for idx := range candidates {
		order = append(order, idx)
	}
	sort.Ints(order)

	var survivors []CityRecord
	for _, idx := range order {
		v := s.cities[idx]
		if strings.EqualFold(query, v.City) || strings.EqualFold(rejoined, v.City) {
			survivors = append(survivors, v)
		}
	}

	if len(survivors) == 0 {
		return CityRecord{}
	}
	if len(survivors) == 1 {
		return survivors[0]
	}

	if best, ok := highestPopMatching(survivors, func(c CityRecord) bool {
		return strings.EqualFold(c.Region(), stateCode) && strings.EqualFold(c.Country(), countryISO)
	}); ok {
		return best
	}
	if best, ok := highestPopMatching(survivors, func(c CityRecord) bool {
		return strings.EqualFold(c.Region(), stateCode)
	}); ok {
		return best
	}
	if best, ok := highestPopMatching(survivors, func(c CityRecord) bool {
		return strings.EqualFold(c.Country(), countryISO)
	}); ok {
		return best
	}

	best := survivors[0]
	for _, c := range survivors[1:] {
		if c.Population > best.Population {
			best = c
		}
	}
	return best
}

// highestPopMatching returns the highest-population record among those
// satisfying pred, or ok == false if none do.
func highestPopMatching(candidates []CityRecord, pred func(CityRecord) bool) (CityRecord, bool) {
	var best CityRecord
	found := false
	for _, c := range candidates {
		if !pred(c) {
			continue
		}
		if !found || c.Population > best.Population {
			best = c
			found = true
		}
	}
	return best, found
}
