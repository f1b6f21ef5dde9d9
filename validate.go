package citybed

import "fmt"

// knownCity is a forward-geocoding fixture used by ValidateCache to sanity
// check a rebuilt or freshly downloaded corpus.
type knownCity struct {
	query, wantCity, wantCountry string
}

// knownCoord is a reverse-geocoding fixture used by ValidateCache.
type knownCoord struct {
	lat, lng              float64
	wantCity, wantCountry string
}

var validationCities = []knownCity{
	{"Austin", "Austin", "US"},
	{"Paris", "Paris", "FR"},
	{"Sydney", "Sydney", "AU"},
	{"Berlin", "Berlin", "DE"},
	{"Tokyo", "Tokyo", "JP"},
}

var validationCoords = []knownCoord{
	{30.26715, -97.74306, "Austin", "US"},
	{37.44651, -122.15322, "Palo Alto", "US"},
	{-33.8688, 151.2093, "Sydney", "AU"},
}

// Validate runs integrity and functional checks against an already
// constructed GeoBed. Intended for an operator CLI, not for the hot query
// path.
func (g *GeoBed) Validate() error {
	if len(g.cities) < minCityCount {
		return fmt.Errorf("city count too low: got %d, want >= %d", len(g.cities), minCityCount)
	}
	if len(g.countries) < minCountryCount {
		return fmt.Errorf("country count too low: got %d, want >= %d", len(g.countries), minCountryCount)
	}

	for _, tc := range validationCities {
		r := g.Geocode(tc.query)
		if r.City != tc.wantCity {
			return fmt.Errorf("geocode(%q) = %q, want %q", tc.query, r.City, tc.wantCity)
		}
		if r.Country() != tc.wantCountry {
			return fmt.Errorf("geocode(%q) country = %q, want %q", tc.query, r.Country(), tc.wantCountry)
		}
	}

	for _, tc := range validationCoords {
		r := g.ReverseGeocode(tc.lat, tc.lng)
		if r.City != tc.wantCity {
			return fmt.Errorf("reverseGeocode(%v, %v) = %q, want %q", tc.lat, tc.lng, r.City, tc.wantCity)
		}
		if r.Country() != tc.wantCountry {
			return fmt.Errorf("reverseGeocode(%v, %v) country = %q, want %q", tc.lat, tc.lng, r.Country(), tc.wantCountry)
		}
	}

	return nil
}

// ValidateCache loads a GeoBed from the given options and runs Validate
// against it.
func ValidateCache(opts ...Option) error {
	g, err := Create(opts...)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	return g.Validate()
}

// RegenerateCache forces a reload from raw source files in cfg.DataDir and
// rewrites the cache in cfg.CacheDir.
func RegenerateCache(opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	cities, countries, names, err := rebuildFromSource(cfg)
	if err != nil {
		return fmt.Errorf("rebuilding from source: %w", err)
	}
	if err := storeCache(cfg.CacheDir, cities, countries, names); err != nil {
		return fmt.Errorf("storing cache: %w", err)
	}
	return nil
}
