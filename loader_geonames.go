package citybed

import (
	"archive/zip"
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadGeonamesCities parses cities1000.zip: tab-separated, 19 fields per
// line. Only the fields the corpus needs are kept: name(1), alt-names(3),
// latitude(4), longitude(5), country ISO-2(8), admin1 code(10),
// population(14). Lines with != 19 fields, non-numeric coordinates, or an
// empty city name are dropped.
func loadGeonamesCities(path string) ([]CityRecord, error) {
	rz, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer rz.Close()

	var cities []CityRecord
	for _, f := range rz.File {
		entryCities, err := parseGeonamesCitiesEntry(f)
		if err != nil {
			return nil, err
		}
		cities = append(cities, entryCities...)
	}
	return cities, nil
}

func parseGeonamesCitiesEntry(f *zip.File) ([]CityRecord, error) {
	fi, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening zip entry %s: %w", f.Name, err)
	}
	defer fi.Close()

	var cities []CityRecord
	scanner := bufio.NewScanner(fi)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		c, ok := parseGeonamesCityLine(scanner.Text())
		if ok {
			cities = append(cities, c)
		}
	}
	return cities, scanner.Err()
}

func parseGeonamesCityLine(line string) (CityRecord, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 19 {
		return CityRecord{}, false
	}

	lat, errLat := strconv.ParseFloat(fields[4], 32)
	lng, errLng := strconv.ParseFloat(fields[5], 32)
	if errLat != nil || errLng != nil {
		return CityRecord{}, false
	}

	name := strings.TrimSpace(fields[1])
	if name == "" {
		return CityRecord{}, false
	}

	pop, _ := strconv.Atoi(fields[14])

	return CityRecord{
		City:       name,
		CityAlt:    fields[3],
		country:    internCountry(fields[8]),
		region:     internRegion(fields[10]),
		Latitude:   float32(lat),
		Longitude:  float32(lng),
		Population: int32(pop),
	}, true
}

// loadGeonamesCountryInfo parses countryInfo.txt: tab-separated, 19
// fields, '#'-comment lines skipped. Rows with an empty or "0" ISO-2 code
// are dropped.
func loadGeonamesCountryInfo(path string) ([]CountryInfo, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fi.Close()

	var countries []CountryInfo
	scanner := bufio.NewScanner(fi)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		ci, ok := parseGeonamesCountryLine(line)
		if ok {
			countries = append(countries, ci)
		}
	}
	return countries, scanner.Err()
}

func parseGeonamesCountryLine(line string) (CountryInfo, bool) {
	fields := strings.SplitN(line, "\t", 19)
	if len(fields) != 19 || fields[0] == "" || fields[0] == "0" {
		return CountryInfo{}, false
	}

	isoNumeric, _ := strconv.Atoi(fields[2])
	area, _ := strconv.Atoi(fields[6])
	pop, _ := strconv.Atoi(fields[7])
	gid, _ := strconv.Atoi(fields[16])

	return CountryInfo{
		ISO:                fields[0],
		ISO3:               fields[1],
		ISONumeric:         int16(isoNumeric),
		Fips:               fields[3],
		Country:            fields[4],
		Capital:            fields[5],
		Area:               int32(area),
		Population:         int32(pop),
		Continent:          fields[8],
		Tld:                fields[9],
		CurrencyCode:       fields[10],
		CurrencyName:       fields[11],
		Phone:              fields[12],
		PostalCodeFormat:   fields[13],
		PostalCodeRegex:    fields[14],
		Languages:          fields[15],
		GeonameID:          int32(gid),
		Neighbours:         fields[17],
		EquivalentFipsCode: fields[18],
	}, true
}

// loadAdmin1Codes parses admin1CodesASCII.txt from disk, or returns an
// empty table if the file is absent (the qualifier extractor's
// international-admin-division pass simply never fires).
func loadAdmin1Codes(path string) (adminDivisionTable, error) {
	fi, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return adminDivisionTable{}, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fi.Close()
	return parseAdminDivisions(fi), nil
}
