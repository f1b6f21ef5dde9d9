package citybed

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadMaxMindCities parses the optional MaxMind world-cities CSV (seven
// comma-separated fields: Country, City, AccentCity, Region, Population,
// Latitude, Longitude), gzip-compressed. Absence of the file is not an
// error — the caller skips this source silently. dedup keys on rounded
// lat/lng so the same physical city listed under two spellings collapses
// to one record.
func loadMaxMindCities(path string, seen map[string]bool) ([]CityRecord, error) {
	fi, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fi.Close()

	fz, err := gzip.NewReader(fi)
	if err != nil {
		return nil, fmt.Errorf("creating gzip reader for %s: %w", path, err)
	}
	defer fz.Close()

	var cities []CityRecord
	scanner := bufio.NewScanner(fz)
	for scanner.Scan() {
		c, key, ok := parseMaxMindCityLine(scanner.Text())
		if !ok {
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		cities = append(cities, c)
	}
	return cities, scanner.Err()
}

func parseMaxMindCityLine(line string) (c CityRecord, key string, ok bool) {
	fields := strings.Split(line, ",")
	if len(fields) != 7 {
		return CityRecord{}, "", false
	}
	if fields[0] == "" || fields[0] == "0" || fields[2] == "AccentCity" {
		return CityRecord{}, "", false
	}

	name := strings.Trim(strings.TrimSpace(fields[2]), "( )")
	if name == "" || strings.ContainsAny(name, "!@") {
		return CityRecord{}, "", false
	}

	lat, errLat := strconv.ParseFloat(fields[5], 32)
	lng, errLng := strconv.ParseFloat(fields[6], 32)
	if errLat != nil || errLng != nil {
		return CityRecord{}, "", false
	}
	pop, _ := strconv.Atoi(fields[4])

	key = fmt.Sprintf("%.4f,%.4f", lat, lng)

	return CityRecord{
		City:       name,
		country:    internCountry(toUpper(fields[0])),
		region:     internRegion(fields[3]),
		Latitude:   float32(lat),
		Longitude:  float32(lng),
		Population: int32(pop),
	}, key, true
}
