package citybed

import (
	"bufio"
	"io"
	"strings"
)

// adminDivisionTable maps country ISO-2 -> division code -> AdminDivision.
// Used only by the qualifier extractor to recognize international
// subdivisions such as "Austin, TX" ⇒ country US, region TX, or
// "Toronto, 08" ⇒ country CA, region 08 (Ontario's GeoNames admin1 code).
type adminDivisionTable map[string]map[string]AdminDivision

// isAdminDivision reports whether code is a known division of country.
func (t adminDivisionTable) isAdminDivision(country, code string) bool {
	divisions, ok := t[country]
	if !ok {
		return false
	}
	_, ok = divisions[toUpper(code)]
	return ok
}

// countryForDivision returns the sole country using code as a division
// code, or "" if the code is unused or ambiguous (used by more than one
// country).
func (t adminDivisionTable) countryForDivision(code string) string {
	code = toUpper(code)
	match := ""
	for country, divisions := range t {
		if _, ok := divisions[code]; ok {
			if match != "" {
				return ""
			}
			match = country
		}
	}
	return match
}

func (t adminDivisionTable) name(country, code string) string {
	if divisions, ok := t[country]; ok {
		if div, ok := divisions[toUpper(code)]; ok {
			return div.Name
		}
	}
	return ""
}

// parseAdminDivisions parses admin1CodesASCII.txt: lines of the form
// "ISO2.CODE\tName\tAsciiName\tGeonameId".
func parseAdminDivisions(r io.Reader) adminDivisionTable {
	table := make(adminDivisionTable)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		key := strings.SplitN(fields[0], ".", 2)
		if len(key) != 2 {
			continue
		}
		country, code := key[0], key[1]
		if table[country] == nil {
			table[country] = make(map[string]AdminDivision)
		}
		table[country][code] = AdminDivision{Code: code, Name: fields[1]}
	}
	return table
}
