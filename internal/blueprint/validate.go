package blueprint

import (
	"fmt"

	"github.com/abhisek/examprep/internal/validate"
)

// Validate checks a blueprint's structure: required fields, unique
// domains, and weights that add up to exactly 100 percent.
func Validate(b Blueprint) error {
	if err := validate.Struct(b); err != nil {
		return err
	}

	seen := make(map[string]bool, len(b.Entries))
	for _, e := range b.Entries {
		if seen[e.Domain] {
			return fmt.Errorf("duplicate domain %q", e.Domain)
		}
		seen[e.Domain] = true
	}

	if total := b.TotalWeight(); total != 100 {
		return fmt.Errorf("weights sum to %d, want 100", total)
	}
	return nil
}
