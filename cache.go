package citybed

import (
	"bytes"
	"compress/bzip2"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	cacheCitiesFile    = "cities.gob"
	cacheCountriesFile = "countries.gob"
	cacheNameIndexFile = "nameindex.gob"
)

// cityGob is the cache wire format for CityRecord: country/region are
// stored as strings rather than interner indices, since interner ids are
// only stable within a single process run.
type cityGob struct {
	City       string
	CityAlt    string
	Country    string
	Region     string
	Latitude   float32
	Longitude  float32
	Population int32
}

// openCacheFile opens name under dir, preferring a "<name>.bz2" sibling
// (transparently decompressed) over the plain file.
func openCacheFile(dir, name string) (io.ReadCloser, error) {
	bz2Path := filepath.Join(dir, name+".bz2")
	if fh, err := os.Open(bz2Path); err == nil {
		return struct {
			io.Reader
			io.Closer
		}{bzip2.NewReader(fh), fh}, nil
	}

	plainPath := filepath.Join(dir, name)
	fh, err := os.Open(plainPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", plainPath, err)
	}
	return fh, nil
}

// loadCache loads the corpus, country table, and name index from dir.
// Returns an error (parse or I/O) if any of the three files is missing,
// empty, or corrupt — the caller is expected to fall back to a full
// rebuild from source in that case.
func loadCache(dir string) ([]CityRecord, []CountryInfo, nameIndex, error) {
	gobCities, err := decodeCacheFile[[]cityGob](dir, cacheCitiesFile)
	if err != nil {
		return nil, nil, nil, err
	}
	countries, err := decodeCacheFile[[]CountryInfo](dir, cacheCountriesFile)
	if err != nil {
		return nil, nil, nil, err
	}
	names, err := decodeCacheFile[nameIndex](dir, cacheNameIndexFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(gobCities) == 0 || len(countries) == 0 || len(names) == 0 {
		return nil, nil, nil, fmt.Errorf("cache at %s is empty", dir)
	}

	cities := make([]CityRecord, len(gobCities))
	for i, gc := range gobCities {
		cities[i] = CityRecord{
			City:       gc.City,
			CityAlt:    gc.CityAlt,
			country:    internCountry(gc.Country),
			region:     internRegion(gc.Region),
			Latitude:   gc.Latitude,
			Longitude:  gc.Longitude,
			Population: gc.Population,
		}
	}
	return cities, countries, names, nil
}

func decodeCacheFile[T any](dir, name string) (T, error) {
	var zero T
	fh, err := openCacheFile(dir, name)
	if err != nil {
		return zero, err
	}
	defer fh.Close()

	var v T
	if err := gob.NewDecoder(fh).Decode(&v); err != nil {
		return zero, fmt.Errorf("decoding %s: %w", name, err)
	}
	return v, nil
}

// storeCache writes cities/countries/names to dir as plain gob files.
// Bzip2 compression of the written cache is an operator step (see
// cmd/citybed-cache), not performed here — the standard library's bzip2
// package is decompress-only.
func storeCache(dir string, cities []CityRecord, countries []CountryInfo, names nameIndex) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	gobCities := make([]cityGob, len(cities))
	for i, c := range cities {
		gobCities[i] = cityGob{
			City:       c.City,
			CityAlt:    c.CityAlt,
			Country:    c.Country(),
			Region:     c.Region(),
			Latitude:   c.Latitude,
			Longitude:  c.Longitude,
			Population: c.Population,
		}
	}

	if err := encodeCacheFile(dir, cacheCitiesFile, gobCities); err != nil {
		return err
	}
	if err := encodeCacheFile(dir, cacheCountriesFile, countries); err != nil {
		return err
	}
	if err := encodeCacheFile(dir, cacheNameIndexFile, names); err != nil {
		return err
	}
	return nil
}

func encodeCacheFile(dir, name string, v any) error {
	b := new(bytes.Buffer)
	if err := gob.NewEncoder(b).Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(dir, name), b.Bytes(), 0644)
}
