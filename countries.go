package citybed

import "sort"

// usStateCodes maps USPS state/territory abbreviations to their full name.
var usStateCodes = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
	"AS": "American Samoa", "DC": "District of Columbia",
	"FM": "Federated States of Micronesia", "GU": "Guam",
	"MH": "Marshall Islands", "MP": "Northern Mariana Islands",
	"PW": "Palau", "PR": "Puerto Rico", "VI": "Virgin Islands",
	"AA": "Armed Forces Americas", "AE": "Armed Forces Europe", "AP": "Armed Forces Pacific",
}

// sortedUsStateCodesByLen returns US state codes sorted by descending full
// name length, to keep the matching order deterministic and to let the
// longer full-name matches be tried before any ambiguous shorter ones.
func sortedUsStateCodesByLen() []string {
	codes := make([]string, 0, len(usStateCodes))
	for sc := range usStateCodes {
		codes = append(codes, sc)
	}
	sort.Slice(codes, func(i, j int) bool {
		li, lj := len(usStateCodes[codes[i]]), len(usStateCodes[codes[j]])
		if li != lj {
			return li > lj
		}
		return codes[i] < codes[j]
	})
	return codes
}

// continents is the closed set of valid continent codes in CountryInfo.
var continents = map[string]bool{
	"AF": true, "AN": true, "AS": true, "EU": true,
	"NA": true, "OC": true, "SA": true,
}

// sortCountriesByNameLenDesc orders countries by descending name length so
// that, e.g., "Guinea-Bissau" is tried before "Guinea" and can never lose a
// prefix/suffix match to its own substring.
func sortCountriesByNameLenDesc(countries []CountryInfo) []CountryInfo {
	sorted := make([]CountryInfo, len(countries))
	copy(sorted, countries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Country) > len(sorted[j].Country)
	})
	return sorted
}
