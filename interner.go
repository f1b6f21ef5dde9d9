package citybed

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// stringInterner is an append-only registry mapping strings to small
// integer ids. Index 0 is reserved for the empty string. Safe for
// concurrent use: intern() serializes writers behind mu, while get() and
// lookups through fwd never block a concurrent reader on a writer holding
// mu, since both read an immutable snapshot.
type stringInterner struct {
	mu      sync.Mutex
	lookup  atomic.Pointer[[]string]     // index -> string, swapped on write
	fwd     *xsync.MapOf[string, uint16] // string -> index, lock-free reads
	nextIdx uint16
}

func newStringInterner(capacityHint int) *stringInterner {
	si := &stringInterner{
		fwd: xsync.NewMapOf[string, uint16](),
	}
	seed := make([]string, 1, capacityHint)
	seed[0] = ""
	si.lookup.Store(&seed)
	si.fwd.Store("", 0)
	si.nextIdx = 1
	return si
}

// intern returns the id for s, creating it on first sight. Idempotent.
func (si *stringInterner) intern(s string) uint16 {
	if idx, ok := si.fwd.Load(s); ok {
		return idx
	}

	si.mu.Lock()
	defer si.mu.Unlock()

	// Re-check under the lock: another writer may have just interned s.
	if idx, ok := si.fwd.Load(s); ok {
		return idx
	}

	if n := si.count(); n > 0xFFFF {
		panic(fmt.Sprintf("stringInterner capacity exceeded at %d entries", n))
	}

	idx := si.nextIdx
	si.nextIdx++

	old := *si.lookup.Load()
	next := make([]string, len(old), len(old)+1)
	copy(next, old)
	next = append(next, s)
	si.lookup.Store(&next)
	si.fwd.Store(s, idx)
	return idx
}

// get returns the string for idx, or "" if idx is out of range.
func (si *stringInterner) get(idx uint16) string {
	lookup := *si.lookup.Load()
	if int(idx) < len(lookup) {
		return lookup[idx]
	}
	return ""
}

// count returns the number of interned strings, including the empty one.
func (si *stringInterner) count() int {
	return len(*si.lookup.Load())
}

var (
	countryInterner *stringInterner
	regionInterner  *stringInterner
	internersOnce   sync.Once
)

func initInterners() {
	countryInterner = newStringInterner(300)
	regionInterner = newStringInterner(8192)
}

func internCountry(code string) uint16 {
	internersOnce.Do(initInterners)
	return countryInterner.intern(code)
}

func internRegion(code string) uint16 {
	internersOnce.Do(initInterners)
	return regionInterner.intern(code)
}

// CountryCount returns the number of distinct interned country codes.
func CountryCount() int {
	internersOnce.Do(initInterners)
	return countryInterner.count()
}

// RegionCount returns the number of distinct interned region codes.
func RegionCount() int {
	internersOnce.Do(initInterners)
	return regionInterner.count()
}
