package selector

import "github.com/abhisek/examprep/internal/blueprint"

// allocate splits slots across entries in proportion to their weights,
// giving each at least one slot and never more than avail allows.
// entries must be ordered heaviest first and each must have avail > 0.
//
// When the minimums overshoot slots the lightest domains give theirs
// up. Slots still free after the proportional pass go round-robin,
// heaviest first, to domains with spare candidates.
func allocate(entries []blueprint.Entry, avail map[string]int, slots int) map[string]int {
	alloc := make(map[string]int, len(entries))
	if slots <= 0 || len(entries) == 0 {
		return alloc
	}

	weight := 0
	for _, e := range entries {
		weight += e.Weight
	}

	total := 0
	for _, e := range entries {
		n := max(1, slots*e.Weight/weight)
		n = min(n, avail[e.Domain])
		alloc[e.Domain] = n
		total += n
	}

	for i := len(entries) - 1; i >= 0 && total > slots; i-- {
		d := entries[i].Domain
		take := min(alloc[d], total-slots)
		alloc[d] -= take
		total -= take
	}

	for total < slots {
		progressed := false
		for _, e := range entries {
			if total == slots {
				break
			}
			if alloc[e.Domain] < avail[e.Domain] {
				alloc[e.Domain]++
				total++
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return alloc
}
