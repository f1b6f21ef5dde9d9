package citybed

// newFixtureCity builds a CityRecord directly, bypassing the loader and
// cache layers, for hermetic unit tests against a small synthetic corpus.
func newFixtureCity(city, alt, country, region string, lat, lng float32, pop int32) CityRecord {
	return CityRecord{
		City:       city,
		CityAlt:    alt,
		country:    internCountry(country),
		region:     internRegion(region),
		Latitude:   lat,
		Longitude:  lng,
		Population: pop,
	}
}

// fixtureWorld returns a small, hand-picked corpus exercising the forward
// and reverse scenarios described across the package: a US/France/Texas
// name collision, a fuzzy-typo target, a neighborhood-override pair, and an
// isolated polar point with nothing nearby.
func fixtureWorld() []CityRecord {
	return []CityRecord{
		newFixtureCity("Paris", "", "FR", "A8", 48.8566, 2.3522, 2148000),
		newFixtureCity("Paris", "", "US", "TX", 33.6609, -95.5555, 25171),
		newFixtureCity("London", "", "GB", "ENG", 51.5074, -0.1278, 8982000),
		newFixtureCity("London", "", "CA", "08", 42.9849, -81.2453, 422324),
		newFixtureCity("Mumbai", "Bombay,Bombaim", "IN", "16", 19.0760, 72.8777, 12442373),
		newFixtureCity("Sydney", "", "AU", "02", -33.8688, 151.2093, 5312163),
		newFixtureCity("Berlin", "", "DE", "16", 52.5200, 13.4050, 3644826),
		newFixtureCity("Mitte", "", "DE", "16", 52.5186, 13.4010, 92062),
		newFixtureCity("Bissau", "", "GW", "", 11.8636, -15.5977, 492004),
	}
}
