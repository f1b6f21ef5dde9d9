package citybed

import "strings"

// toLower lower-cases s. Kept as a named wrapper (rather than inlining
// strings.ToLower everywhere) because name-index keys and query matching
// must use Unicode-aware folding — the GeoNames corpus carries names like
// "Zürich" and "São Paulo" that a byte-level ASCII lowercase would corrupt.
func toLower(s string) string { return strings.ToLower(s) }

// toUpper upper-cases s. See toLower.
func toUpper(s string) string { return strings.ToUpper(s) }
