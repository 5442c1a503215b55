package corpus

import (
	"fmt"
	"strings"
)

// SourceCount is the number of items one source contributed to a run.
type SourceCount struct {
	Name  string
	Count int
}

// Summary reports per-source and total item counts for a run.
type Summary struct {
	Sources []SourceCount
}

// Total returns the sum of all source counts.
func (s *Summary) Total() int {
	total := 0
	for _, sc := range s.Sources {
		total += sc.Count
	}
	return total
}

// Count returns the item count for the named source, or 0 if absent.
func (s *Summary) Count(name string) int {
	for _, sc := range s.Sources {
		if sc.Name == name {
			return sc.Count
		}
	}
	return 0
}

// String renders the summary line, e.g. "Quran: 7 | Sunnah: 5 | Total: 12".
func (s *Summary) String() string {
	parts := make([]string, 0, len(s.Sources)+1)
	for _, sc := range s.Sources {
		parts = append(parts, fmt.Sprintf("%s: %d", sc.Name, sc.Count))
	}
	parts = append(parts, fmt.Sprintf("Total: %d", s.Total()))
	return strings.Join(parts, " | ")
}
