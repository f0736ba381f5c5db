package resolver

import (
	"regexp"
	"strconv"
	"strings"

	"castsync/internal/taxonomy"
)

var (
	yearRangeFull  = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
	yearRangeShort = regexp.MustCompile(`(\d{4})\s*-\s*(\d{2})`)
)

type yearRange struct {
	start, end int
}

// parseYearRange extracts a "YYYY-YYYY" or "YYYY-YY" range from a
// label; a 2-digit end year is expanded into the 1900s.
func parseYearRange(text string) (yearRange, bool) {
	match := yearRangeFull.FindStringSubmatch(text)
	if match == nil {
		match = yearRangeShort.FindStringSubmatch(text)
	}
	if match == nil {
		return yearRange{}, false
	}
	start, _ := strconv.Atoi(match[1])
	end, _ := strconv.Atoi(match[2])
	if end < 100 {
		end += 1900
	}
	return yearRange{start: start, end: end}, true
}

// EraName resolves free text to an era label in three tiers: exact
// normalized match, then label-contains-input, then the era whose
// embedded year range overlaps the input's range the most. Ties keep
// the first era that reached the best overlap, in taxonomy order.
func (r *Resolver) EraName(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	normalized := taxonomy.Normalize(text)
	for _, era := range r.tax.Eras {
		if taxonomy.Normalize(era) == normalized {
			return era
		}
	}
	for _, era := range r.tax.Eras {
		if strings.Contains(taxonomy.Normalize(era), normalized) {
			return era
		}
	}

	input, ok := parseYearRange(text)
	if !ok {
		return ""
	}
	best := ""
	bestOverlap := 0
	for _, era := range r.tax.Eras {
		candidate, ok := parseYearRange(era)
		if !ok {
			continue
		}
		overlap := min(input.end, candidate.end) - max(input.start, candidate.start)
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = era
		}
	}
	return best
}
