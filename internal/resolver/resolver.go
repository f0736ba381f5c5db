package resolver

import (
	"strings"

	"castsync/internal/models"
	"castsync/internal/taxonomy"
)

// Resolver matches free-text vendor fields against the controlled
// vocabulary. Every lookup is total: unmatched input resolves to the
// zero value, never an error.
type Resolver struct {
	tax *taxonomy.Taxonomy
}

func New(tax *taxonomy.Taxonomy) *Resolver {
	return &Resolver{tax: tax}
}

// matchOne returns the first active entry whose normalized name equals
// the normalized input or appears inside it. Collection order is
// priority order.
func matchOne(entries []taxonomy.Entry, text string) string {
	normalized := taxonomy.Normalize(text)
	for _, e := range entries {
		if !e.Active {
			continue
		}
		name := taxonomy.Normalize(e.Name)
		if name == normalized || strings.Contains(normalized, name) {
			return e.Name
		}
	}
	return ""
}

// matchAll returns every active entry whose normalized name appears
// inside the normalized input, in taxonomy order.
func matchAll(entries []taxonomy.Entry, text string) []string {
	normalized := taxonomy.Normalize(text)
	var names []string
	for _, e := range entries {
		if !e.Active {
			continue
		}
		if strings.Contains(normalized, taxonomy.Normalize(e.Name)) {
			names = append(names, e.Name)
		}
	}
	return names
}

// BrandName resolves at most one brand from free text.
func (r *Resolver) BrandName(text string) string {
	return matchOne(r.tax.Brands, text)
}

// MaterialNames collects every material mentioned in the text.
func (r *Resolver) MaterialNames(text string) []string {
	return matchAll(r.tax.Materials, text)
}

// GemNames collects every gemstone mentioned in the text. Blank input
// short-circuits without touching the taxonomy.
func (r *Resolver) GemNames(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return matchAll(r.tax.Gems, text)
}

// ConditionName resolves at most one condition from free text.
func (r *Resolver) ConditionName(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return matchOne(r.tax.Conditions, text)
}

// GenreNames splits the input on commas and matches each part,
// accumulating unique hits in first-seen order. When no part matches it
// falls back to a substring pass over the whole unsplit string.
func (r *Resolver) GenreNames(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var names []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if name := matchOne(r.tax.Genres, part); name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		return names
	}
	return matchAll(r.tax.Genres, text)
}

// ModelName resolves a model label against the model list of the given
// category. Categories without a model list resolve to nothing.
func (r *Resolver) ModelName(category models.Category, label string) string {
	if strings.TrimSpace(label) == "" {
		return ""
	}
	list := r.tax.ModelsFor(category)
	if list == nil {
		return ""
	}
	return matchOne(list, label)
}
