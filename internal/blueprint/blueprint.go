package blueprint

import "sort"

// Entry is one content domain of an exam outline and its share of the exam.
type Entry struct {
	Domain string `mapstructure:"domain" json:"domain" validate:"required"`
	Name   string `mapstructure:"name" json:"name"`
	Weight int    `mapstructure:"weight" json:"weight" validate:"gt=0,lte=100"`
}

// Blueprint is a certification exam's official content outline.
type Blueprint struct {
	Exam    string  `mapstructure:"exam" json:"exam" validate:"required"`
	Name    string  `mapstructure:"name" json:"name"`
	Entries []Entry `mapstructure:"entries" json:"entries" validate:"required,min=1,dive"`
}

// Weight returns the exam weight (percent) of a domain, or 0 if the
// domain is not part of this blueprint.
func (b Blueprint) Weight(domain string) int {
	for _, e := range b.Entries {
		if e.Domain == domain {
			return e.Weight
		}
	}
	return 0
}

// Has reports whether the domain is listed in the blueprint.
func (b Blueprint) Has(domain string) bool {
	for _, e := range b.Entries {
		if e.Domain == domain {
			return true
		}
	}
	return false
}

// Domains returns the blueprint's domain tags in outline order.
func (b Blueprint) Domains() []string {
	out := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = e.Domain
	}
	return out
}

// DisplayName returns a human-readable name for a domain.
func (b Blueprint) DisplayName(domain string) string {
	for _, e := range b.Entries {
		if e.Domain == domain && e.Name != "" {
			return e.Name
		}
	}
	return domain
}

// TotalWeight returns the sum of all entry weights.
func (b Blueprint) TotalWeight() int {
	total := 0
	for _, e := range b.Entries {
		total += e.Weight
	}
	return total
}

// ByWeight returns the entries sorted heaviest first. Ties keep outline order.
func (b Blueprint) ByWeight() []Entry {
	out := make([]Entry, len(b.Entries))
	copy(out, b.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}
