package citybed

// cellIndex maps a level-10 S2 cell id to the city indices whose
// coordinates fall inside that cell. Read-only once built.
type cellIndex map[CellID][]int

// buildCellIndex places every city into its level-10 parent cell.
func buildCellIndex(cities []CityRecord) cellIndex {
	idx := make(cellIndex, len(cities))
	for i, city := range cities {
		cell := parentAtLevel(
			cellFromLatLng(degToRad(float64(city.Latitude)), degToRad(float64(city.Longitude))),
			queryCellLevel,
		)
		idx[cell] = append(idx[cell], i)
	}
	return idx
}

// neighborhood returns query's own cell plus its edge neighbors and the
// edge neighbors of those neighbors — up to 13 distinct cells forming a
// two-ring search area around the query point.
func neighborhood(query CellID) []CellID {
	cells := make([]CellID, 0, 13)
	seen := make(map[CellID]bool, 13)

	add := func(c CellID) {
		if !seen[c] {
			seen[c] = true
			cells = append(cells, c)
		}
	}

	add(query)
	ring1 := edgeNeighbors(query)
	for _, c := range ring1 {
		add(c)
	}
	for _, c := range ring1 {
		for _, c2 := range edgeNeighbors(c) {
			add(c2)
		}
	}
	return cells
}
