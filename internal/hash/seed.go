// Package hash derives deterministic numeric seeds from string labels.
package hash

import "github.com/cespare/xxhash/v2"

// Seed computes the xxHash64 of the given label.
//
// The same label always produces the same seed, across runs and processes,
// which is what makes per-group colors reproducible.
func Seed(label string) uint64 {
	return xxhash.Sum64String(label)
}
