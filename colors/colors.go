// Package colors assigns reproducible pseudo-random display colors to
// group labels.
//
// A color is derived from nothing but the label itself: the label's
// xxHash64 seeds a PCG generator and a single 24-bit draw is formatted as
// an uppercase "#RRGGBB" string. The same label therefore maps to the same
// color in every session and every process, with no external palette.
//
// Note: the mapping is only stable for a fixed hash and generator. A port
// that swaps either will produce different (but internally consistent)
// colors.
package colors

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/arloliu/vizu/internal/hash"
)

// Registry maps group labels to display colors.
//
// The registry is append-only for its lifetime: once a label has been
// assigned a color, that color never changes. Each session owns exactly
// one registry; independently constructed sessions do not share state.
type Registry struct {
	mu       sync.Mutex
	assigned map[string]string
}

// New creates an empty color registry.
func New() *Registry {
	return &Registry{
		assigned: make(map[string]string),
	}
}

// Get returns the color for the given label, assigning one on first use.
//
// Returns:
//   - string: "#RRGGBB" with uppercase, zero-padded hex digits
func (r *Registry) Get(label string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.get(label)
}

// GetAll returns one color per label, in order. Each distinct label is
// resolved once; repeated labels reuse the resolved color, so the result
// is consistent with calling Get per label but cheaper for long columns.
func (r *Registry) GetAll(labels []string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = r.get(label)
	}

	return out
}

// Len returns the number of labels assigned so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.assigned)
}

// Known reports whether the label already has an assigned color.
func (r *Registry) Known(label string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.assigned[label]

	return ok
}

// get implements the check-then-insert under the caller-held lock.
func (r *Registry) get(label string) string {
	if c, ok := r.assigned[label]; ok {
		return c
	}

	c := derive(label)
	r.assigned[label] = c

	return c
}

// derive computes the label's color: one 24-bit draw from a PCG seeded
// with the label's hash.
func derive(label string) string {
	seed := hash.Seed(label)
	rng := rand.New(rand.NewPCG(seed, seed))

	return fmt.Sprintf("#%06X", rng.Uint64N(1<<24))
}
