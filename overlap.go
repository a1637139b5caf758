package prosecheck

import "sort"

// RemoveOverlaps resolves competing lints whose spans overlap, keeping
// exactly one lint per conflicting region: the lowest-Priority lint wins; on
// a priority tie, the earlier-sorted lint (by span start, then span end)
// wins and the later candidate is dropped outright, never replacing it.
// Non-overlapping lints are always kept. The result is sorted by ascending
// span start, which is convenient for callers that print lints directly;
// ApplyAll sorts its input by descending span start itself, so the order
// doesn't matter to it.
func RemoveOverlaps(lints []Lint) []Lint {
	if len(lints) <= 1 {
		return append([]Lint(nil), lints...)
	}

	ordered := append([]Lint(nil), lints...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Span, ordered[j].Span
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return ordered[i].Priority < ordered[j].Priority
	})

	var kept []Lint
	for _, candidate := range ordered {
		if len(kept) == 0 {
			kept = append(kept, candidate)
			continue
		}
		last := &kept[len(kept)-1]
		if !last.Span.Overlaps(candidate.Span) {
			kept = append(kept, candidate)
			continue
		}
		if candidate.Priority < last.Priority {
			*last = candidate
		}
	}
	return kept
}
