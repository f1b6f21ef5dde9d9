package citybed

import "testing"

func TestStripDiacritics(t *testing.T) {
	cases := map[string]string{
		"München":   "Munchen",
		"São Paulo": "Sao Paulo",
		"Zürich":    "Zurich",
		"Plain":     "Plain",
		"":          "",
	}
	for in, want := range cases {
		if got := stripDiacritics(in); got != want {
			t.Errorf("stripDiacritics(%q) = %q, want %q", in, got, want)
		}
	}
}
