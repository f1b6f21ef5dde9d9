package citybed

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// maxFuzzyDistance caps GeocodeOptions.FuzzyDistance to bound the cost of
// the O(len(nameIndex)) fuzzy candidate-gathering scan.
const maxFuzzyDistance = 3

// maxGeocodeInputLen is the Unicode-scalar-value truncation length for
// Geocode's input query.
const maxGeocodeInputLen = 256

// minCityCount and minCountryCount guard against loading a truncated or
// corrupt corpus: a successful load below either threshold is a
// validation error, not a usable (if smaller) facade.
const (
	minCityCount    = 140_000
	minCountryCount = 200
)

// GeoBed is an immutable, concurrency-safe facade over the city corpus: a
// forward geocoder, a reverse geocoder, and the indices backing both.
// Safe for concurrent use by arbitrarily many readers once Create returns.
type GeoBed struct {
	cities     []CityRecord
	countries  []CountryInfo
	names      nameIndex
	cells      cellIndex
	qualifiers *qualifiers
	config     *Config
}

// GeocodeOptions configures Geocode.
type GeocodeOptions struct {
	// ExactCity selects exact-match mode (§4.5.3) instead of the default
	// fuzzy/scored mode (§4.5.2).
	ExactCity bool
	// FuzzyDistance is the maximum Levenshtein distance for typo
	// tolerance. 0 (default) disables fuzzy matching.
	FuzzyDistance int
}

var (
	defaultGeoBed     *GeoBed
	defaultGeoBedOnce sync.Once
	defaultGeoBedErr  error
)

// Default returns a process-wide shared GeoBed, constructing it with
// default options on first call. The construction race is serialized so
// every caller observes the same instance.
func Default() (*GeoBed, error) {
	defaultGeoBedOnce.Do(func() {
		defaultGeoBed, defaultGeoBedErr = Create()
	})
	return defaultGeoBed, defaultGeoBedErr
}

// Create loads (or builds) the corpus and returns a ready-to-query
// GeoBed. Construction is single-threaded with respect to a given call;
// concurrent calls across different GeoBed instances are safe, serialized
// only around the shared data directory via downloadMu.
func Create(opts ...Option) (*GeoBed, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	cities, countries, names, err := loadCache(cfg.CacheDir)
	if err != nil {
		cfg.Logger.Warn("cache unavailable, rebuilding from source", "error", err)
		cities, countries, names, err = rebuildFromSource(cfg)
		if err != nil {
			return nil, err
		}
		if storeErr := storeCache(cfg.CacheDir, cities, countries, names); storeErr != nil {
			cfg.Logger.Warn("failed to write cache", "error", storeErr)
		}
	}

	if len(cities) < minCityCount {
		return nil, fmt.Errorf("city count too low: got %d, want >= %d", len(cities), minCityCount)
	}
	if len(countries) < minCountryCount {
		return nil, fmt.Errorf("country count too low: got %d, want >= %d", len(countries), minCountryCount)
	}

	admin, err := loadAdmin1Codes(cfg.DataDir + "/admin1CodesASCII.txt")
	if err != nil {
		cfg.Logger.Warn("admin division table unavailable", "error", err)
		admin = adminDivisionTable{}
	}

	return &GeoBed{
		cities:     cities,
		countries:  countries,
		names:      names,
		cells:      buildCellIndex(cities),
		qualifiers: newQualifiers(countries, admin),
		config:     cfg,
	}, nil
}

// downloadMu serializes concurrent download/build races across GeoBed
// instances sharing the same data/cache directories.
var downloadMu sync.Mutex

func rebuildFromSource(cfg *Config) ([]CityRecord, []CountryInfo, nameIndex, error) {
	downloadMu.Lock()
	defer downloadMu.Unlock()

	if err := downloadSources(cfg); err != nil {
		return nil, nil, nil, fmt.Errorf("downloading source data: %w", err)
	}

	cities, err := loadGeonamesCities(cfg.DataDir + "/cities1000.zip")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading geonames cities: %w", err)
	}
	countries, err := loadGeonamesCountryInfo(cfg.DataDir + "/countryInfo.txt")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading geonames country info: %w", err)
	}

	seen := make(map[string]bool, len(cities))
	for _, c := range cities {
		seen[fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)] = true
	}
	mmCities, err := loadMaxMindCities(cfg.DataDir+"/worldcitiespop.csv.gz", seen)
	if err != nil {
		cfg.Logger.Info("MaxMind cities not loaded (optional)", "error", err)
	} else {
		cities = append(cities, mmCities...)
	}

	sort.Sort(cityRecords(cities))

	return cities, countries, buildNameIndex(cities), nil
}

func downloadSources(cfg *Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", cfg.DataDir, err)
	}
	for _, src := range dataSources {
		path := cfg.DataDir + "/" + src.Filename
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := downloadFile(cfg.HTTPClient, src.URL, path); err != nil {
			return fmt.Errorf("downloading %s: %w", src.ID, err)
		}
	}
	return nil
}

// Geocode performs forward geocoding: a free-text query resolves to a
// single best-matching CityRecord, or the empty record if nothing
// matches. Deterministic and safe for concurrent use.
func (g *GeoBed) Geocode(query string, opts ...GeocodeOptions) CityRecord {
	query = normalizeQuery(query)
	if query == "" {
		return CityRecord{}
	}

	options := GeocodeOptions{}
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.FuzzyDistance > maxFuzzyDistance {
		options.FuzzyDistance = maxFuzzyDistance
	}

	scorer := &forwardScorer{cities: g.cities, names: g.names}

	if options.ExactCity {
		countryISO, stateCode, _, nameSlice := g.qualifiers.extract(query)
		candidates := scorer.gatherCandidates(query, nameSlice, 0)
		return scorer.scoreExact(query, countryISO, stateCode, nameSlice, candidates)
	}

	countryISO, stateCode, abbrevSlice, nameSlice := g.qualifiers.extract(query)
	candidates := scorer.gatherCandidates(query, nameSlice, options.FuzzyDistance)
	return scorer.scoreFuzzy(query, countryISO, stateCode, abbrevSlice, nameSlice, options.FuzzyDistance, candidates)
}

// ReverseGeocode performs reverse geocoding: (lat, lng) in degrees
// resolves to the nearest meaningful city, or the empty record for
// invalid input, no nearby city, or a nearest city beyond the distance
// cutoff.
func (g *GeoBed) ReverseGeocode(lat, lng float64) CityRecord {
	resolver := &reverseResolver{cities: g.cities, cells: g.cells}
	return resolver.resolve(lat, lng)
}

// Countries returns the loaded country metadata table.
func (g *GeoBed) Countries() []CountryInfo { return g.countries }

// CityCountry returns r's ISO-2 country code.
func CityCountry(r CityRecord) string { return r.Country() }

// CityRegion returns r's admin1 region code.
func CityRegion(r CityRecord) string { return r.Region() }

// normalizeQuery trims the input, collapses internal whitespace runs to a
// single space, and truncates to the first 256 Unicode scalar values.
func normalizeQuery(n string) string {
	n = strings.Join(strings.Fields(n), " ")
	if runes := []rune(n); len(runes) > maxGeocodeInputLen {
		n = string(runes[:maxGeocodeInputLen])
	}
	return n
}
