package resolver

import (
	"regexp"
	"strconv"

	"castsync/internal/models"
	"castsync/internal/taxonomy"
)

const (
	// Plausibility band for sizes found in free text.
	fingerSizeScanMin = 38
	fingerSizeScanMax = 80

	// Band actually accepted for the rings attribute.
	FingerSizeMin = 44
	FingerSizeMax = 71

	// Size assumed when the description mentions none.
	defaultFingerSize = 52
)

var (
	sizeAfterTaille    = regexp.MustCompile(`taille\s*(\d{2})`)
	standaloneTwoDigit = regexp.MustCompile(`\b(\d{2})\b`)
)

// ExtractFingerSize scans a description for a ring size: a 2-digit
// number following the word "taille" first, then any standalone 2-digit
// number in the plausible band, left to right. Descriptions with no
// usable size fall back to 52.
func ExtractFingerSize(description string) int {
	folded := taxonomy.Normalize(description)
	if match := sizeAfterTaille.FindStringSubmatch(folded); match != nil {
		size, _ := strconv.Atoi(match[1])
		if size >= fingerSizeScanMin && size <= fingerSizeScanMax {
			return size
		}
	}
	for _, match := range standaloneTwoDigit.FindAllStringSubmatch(folded, -1) {
		size, _ := strconv.Atoi(match[1])
		if size >= fingerSizeScanMin && size <= fingerSizeScanMax {
			return size
		}
	}
	return defaultFingerSize
}

// NormalizeFingerSize applies the strict gate: only ring products keep
// a finger size, and only inside the accepted band. Everything else is
// not applicable, reported as nil rather than a sentinel value.
func NormalizeFingerSize(category models.Category, size int) *int {
	if category != models.CategoryRings {
		return nil
	}
	if size < FingerSizeMin || size > FingerSizeMax {
		return nil
	}
	return &size
}
