package citybed

import (
	"bytes"
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreAndLoadCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cities := fixtureWorld()
	names := buildNameIndex(cities)
	countries := []CountryInfo{{ISO: "FR", Country: "France"}, {ISO: "US", Country: "United States"}}

	if err := storeCache(dir, cities, countries, names); err != nil {
		t.Fatalf("storeCache: %v", err)
	}

	gotCities, gotCountries, gotNames, err := loadCache(dir)
	if err != nil {
		t.Fatalf("loadCache: %v", err)
	}

	if len(gotCities) != len(cities) {
		t.Fatalf("loaded %d cities, want %d", len(gotCities), len(cities))
	}
	for i, c := range gotCities {
		if c.City != cities[i].City || c.Country() != cities[i].Country() {
			t.Errorf("city %d = %+v, want %+v", i, c, cities[i])
		}
	}
	if len(gotCountries) != len(countries) {
		t.Errorf("loaded %d countries, want %d", len(gotCountries), len(countries))
	}
	if len(gotNames.get("paris")) == 0 {
		t.Error("name index did not survive the round trip")
	}
}

func TestLoadCacheMissingDirectoryErrors(t *testing.T) {
	if _, _, _, err := loadCache(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Error("expected an error loading a missing cache directory")
	}
}

func TestOpenCacheFileUsesPlainFileWithoutBz2Sibling(t *testing.T) {
	dir := t.TempDir()

	var plain bytes.Buffer
	if err := gob.NewEncoder(&plain).Encode([]string{"plain"}); err != nil {
		t.Fatalf("encode plain: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sample.gob"), plain.Bytes(), 0644); err != nil {
		t.Fatalf("write plain: %v", err)
	}

	// bzip2 is decompress-only in the standard library, so the compressed
	// sibling cannot be produced inline here; verify the plain-file path
	// works and is chosen when no .bz2 sibling is present.
	fh, err := openCacheFile(dir, "sample.gob")
	if err != nil {
		t.Fatalf("openCacheFile: %v", err)
	}
	defer fh.Close()

	var got []string
	if err := gob.NewDecoder(fh).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0] != "plain" {
		t.Errorf("got %v, want [plain]", got)
	}
}
