package citybed

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// sourceID identifies a GeoNames/MaxMind data source.
type sourceID string

const (
	sourceGeonamesCities  sourceID = "geonamesCities1000"
	sourceGeonamesCountry sourceID = "geonamesCountryInfo"
	sourceGeonamesAdmin1  sourceID = "geonamesAdmin1Codes"
	sourceMaxMindCities   sourceID = "maxmindWorldCities"
)

// dataSource is one downloadable/local source file.
type dataSource struct {
	URL      string
	Filename string
	ID       sourceID
}

// dataSources are the files Create downloads into Config.DataDir when the
// cache is missing or invalid. The optional MaxMind file is not listed: it
// is never downloaded, only read if already present in Config.DataDir.
var dataSources = []dataSource{
	{URL: "https://download.geonames.org/export/dump/cities1000.zip", Filename: "cities1000.zip", ID: sourceGeonamesCities},
	{URL: "https://download.geonames.org/export/dump/countryInfo.txt", Filename: "countryInfo.txt", ID: sourceGeonamesCountry},
	{URL: "https://download.geonames.org/export/dump/admin1CodesASCII.txt", Filename: "admin1CodesASCII.txt", ID: sourceGeonamesAdmin1},
}

// downloadFile fetches url into path via a plain HTTP GET. An existing
// local file is assumed current and is never re-downloaded by the caller.
func downloadFile(client *http.Client, url, path string) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP GET %s: status %d", url, resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	success := false
	defer func() {
		out.Close()
		if !success {
			os.Remove(path)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	success = true
	return nil
}
