package blueprint

import (
	"fmt"
	"sort"
	"sync"
)

// registry holds every known blueprint keyed by exam code. It is seeded
// with the built-in tables in init() and extended from config at startup.
var (
	mu       sync.RWMutex
	registry = make(map[string]Blueprint)
)

func init() {
	for _, b := range builtin() {
		registry[b.Exam] = b
	}
}

// Register adds or replaces a blueprint after validating it.
func Register(b Blueprint) error {
	if err := Validate(b); err != nil {
		return fmt.Errorf("register blueprint %q: %w", b.Exam, err)
	}
	mu.Lock()
	defer mu.Unlock()
	registry[b.Exam] = b
	return nil
}

// Get returns the blueprint for an exam code.
func Get(exam string) (Blueprint, bool) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := registry[exam]
	return b, ok
}

// For returns the blueprint for an exam code, or an empty blueprint with
// no weighted domains when the exam is unknown.
func For(exam string) Blueprint {
	if b, ok := Get(exam); ok {
		return b
	}
	return Blueprint{Exam: exam}
}

// All returns every registered blueprint sorted by exam code.
func All() []Blueprint {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Blueprint, 0, len(registry))
	for _, b := range registry {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Exam < out[j].Exam
	})
	return out
}
