// Package harmalysis parses and resolves Roman-numeral harmonic analysis
// notation for Western tonal music.
//
// A query names a chord relative to an established key, either written
// explicitly as a prefix ("Bb:V7") or inherited from whatever key the
// previous query established. Parse, ParseRoman, and ParseChordLabel are
// the package's entry points; Analyzer carries established-key state
// across a sequence of queries for callers who need that.
package harmalysis
