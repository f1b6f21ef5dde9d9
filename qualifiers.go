package citybed

import (
	"regexp"
	"strings"
	"sync"
)

// abbrevPattern matches standalone 2-3 letter upper-case tokens that could
// be a region or country abbreviation (e.g. "TX", "NY", "US").
var abbrevPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`\b[A-Z]{2,3}\b`)
})

// qualifiers holds the reference data the extractor matches queries
// against: built once at facade construction, read-only thereafter.
type qualifiers struct {
	countriesByNameLen []CountryInfo // sorted by descending Country name length
	usStateCodes       []string      // sorted by descending full-name length
	admin              adminDivisionTable
}

func newQualifiers(countries []CountryInfo, admin adminDivisionTable) *qualifiers {
	return &qualifiers{
		countriesByNameLen: sortCountriesByNameLenDesc(countries),
		usStateCodes:       sortedUsStateCodesByLen(),
		admin:              admin,
	}
}

// extract peels country and subdivision qualifiers off n, returning:
//
//   - countryISO: two-letter country code, or "" if none recognized
//   - stateCode: two/three-letter subdivision code, or ""
//   - abbrevSlice: every 2-3 character ALL-CAPS token in the original query
//   - nameSlice: the surviving residual query, whitespace-split
//
// Never raises; an input matching nothing yields empty qualifiers and
// nameSlice == [n].
func (q *qualifiers) extract(n string) (countryISO, stateCode string, abbrevSlice, nameSlice []string) {
	abbrevSlice = abbrevPattern().FindAllString(n, -1)

	countryISO, n = q.stripCountryName(n)
	stateCode, countryISO, n = q.stripUSStateCode(n, countryISO)
	if stateCode == "" {
		stateCode, countryISO, n = q.stripUSStateName(n, countryISO)
	}
	if stateCode == "" {
		stateCode, countryISO, n = q.stripAdminDivision(n, countryISO)
	}

	n = strings.Trim(n, " ,")
	nameSlice = strings.Split(n, " ")
	return
}

// stripCountryName implements pass 1: country name, longest-first so that
// e.g. "Guinea" never matches inside "Guinea-Bissau".
func (q *qualifiers) stripCountryName(n string) (iso, residual string) {
	for _, co := range q.countriesByNameLen {
		if _, rest, ok := matchQualifier(n, co.Country); ok {
			return co.ISO, rest
		}
	}
	return "", n
}

// stripUSStateCode implements pass 2: two-letter USPS code.
func (q *qualifiers) stripUSStateCode(n, countryISO string) (state, iso, residual string) {
	for _, sc := range q.usStateCodes {
		if _, rest, ok := matchQualifier(n, sc); ok {
			if countryISO == "" {
				countryISO = "US"
			}
			return sc, countryISO, rest
		}
	}
	return "", countryISO, n
}

// stripUSStateName implements pass 3: full US state name.
func (q *qualifiers) stripUSStateName(n, countryISO string) (state, iso, residual string) {
	for _, sc := range q.usStateCodes {
		full := usStateCodes[sc]
		if _, rest, ok := matchQualifier(n, full); ok {
			if countryISO == "" {
				countryISO = "US"
			}
			return sc, countryISO, rest
		}
	}
	return "", countryISO, n
}

// stripAdminDivision implements pass 4: international admin division code,
// recognized only as the trailing token of a multi-token residual query.
func (q *qualifiers) stripAdminDivision(n, countryISO string) (state, iso, residual string) {
	parts := strings.Split(n, " ")
	if len(parts) < 2 {
		return "", countryISO, n
	}
	last := strings.Trim(parts[len(parts)-1], ", ")
	if len(last) < 2 || len(last) > 3 {
		return "", countryISO, n
	}
	code := toUpper(last)

	if countryISO != "" {
		if q.admin.isAdminDivision(countryISO, code) {
			return code, countryISO, strings.Join(parts[:len(parts)-1], " ")
		}
		return "", countryISO, n
	}

	if country := q.admin.countryForDivision(code); country != "" {
		return code, country, strings.Join(parts[:len(parts)-1], " ")
	}
	return "", countryISO, n
}

// matchQualifier checks whether n (case-insensitively) equals qualifier, or
// has qualifier as a ", "/space-separated prefix or suffix, and if so
// returns the residual query with the matched segment removed.
func matchQualifier(n, qualifier string) (matched, residual string, ok bool) {
	nLower := toLower(n)
	qLower := toLower(qualifier)

	if nLower == qLower {
		return qualifier, "", true
	}

	prefixComma := qLower + ", "
	if len(nLower) > len(prefixComma) && nLower[:len(prefixComma)] == prefixComma {
		return qualifier, n[len(prefixComma):], true
	}
	prefixSpace := qLower + " "
	if len(nLower) > len(prefixSpace) && nLower[:len(prefixSpace)] == prefixSpace {
		return qualifier, n[len(prefixSpace):], true
	}

	suffixComma := ", " + qLower
	if len(nLower) > len(suffixComma) && nLower[len(nLower)-len(suffixComma):] == suffixComma {
		return qualifier, n[:len(n)-len(suffixComma)], true
	}
	suffixSpace := " " + qLower
	if len(nLower) > len(suffixSpace) && nLower[len(nLower)-len(suffixSpace):] == suffixSpace {
		return qualifier, n[:len(n)-len(suffixSpace)], true
	}

	return "", n, false
}
