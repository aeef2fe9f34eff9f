package harmalysis

import "sync"

// Harmalysis is the resolved analysis of one parsed Roman-numeral query:
// the key(s) in play and the chord that was named, fully spelled.
type Harmalysis struct {
	// MainKey is the key established at the start of the query (either
	// written explicitly as a prefix, or inherited from the Analyzer's
	// established-key cell).
	MainKey Key

	// ReferenceKey is the innermost key the final chord is actually read
	// against — equal to MainKey unless a tonicization chain ("V/V")
	// nested one or more secondary keys.
	ReferenceKey Key

	// TonicizedKeys records every secondary key resolved along the way,
	// outermost first, empty when the query names no tonicization.
	TonicizedKeys []Key

	Chord *Chord
}

// KeyCell is a mutex-guarded established key, replacing the source's bare
// class attribute (a process-wide global) per spec.md §9's concurrency
// note: callers thread an explicit Analyzer rather than relying on
// hidden shared state.
type KeyCell struct {
	mu  sync.RWMutex
	key Key
}

// NewKeyCell seeds a cell with an initial established key.
func NewKeyCell(initial Key) *KeyCell {
	return &KeyCell{key: initial}
}

// Get returns the currently established key.
func (c *KeyCell) Get() Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key
}

// Set rebinds the established key, e.g. after a query supplies a new key
// prefix or a bracket-form inline key introduction.
func (c *KeyCell) Set(k Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = k
}

// Analyzer wraps the established-key cell so a caller can parse a
// sequence of queries where later ones omit the key prefix and inherit
// whatever key the last query established — exactly the source's
// behavior, minus the implicit shared global.
type Analyzer struct {
	cell *KeyCell
}

// NewAnalyzer returns an Analyzer whose established key starts at C
// major, matching the source's default.
func NewAnalyzer() *Analyzer {
	return &Analyzer{cell: NewKeyCell(CMajor())}
}

// EstablishedKey returns the key an Analyzer currently assumes when a
// query supplies no key prefix.
func (a *Analyzer) EstablishedKey() Key {
	return a.cell.Get()
}
