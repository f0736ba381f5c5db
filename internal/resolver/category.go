package resolver

import (
	"strings"

	"castsync/internal/models"
	"castsync/internal/taxonomy"
)

// categoryRules is the classification priority order: the first rule
// with any keyword present in the cleaned title wins.
var categoryRules = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryRings, []string{"bague", "solitaire", "alliance"}},
	{models.CategoryBracelets, []string{"bracelet"}},
	{models.CategoryNecklaces, []string{"collier"}},
	{models.CategoryEarrings, []string{"boucle d'oreille", "boucle d'oreilles", "boucles d'oreilles"}},
	{models.CategoryPendants, []string{"pendentif", "croix", "medaille"}},
	{models.CategoryBrooches, []string{"broche"}},
	{models.CategoryWatches, []string{"montre"}},
	{models.CategorySets, []string{"parure"}},
	{models.CategoryAccessories, []string{"accessoire", "boucles de ceinture", "peigne"}},
}

// cleanTitle keeps letters, digits, spaces and apostrophes after accent
// folding, so the keyword checks see plain ascii words.
func cleanTitle(title string) string {
	folded := taxonomy.Normalize(title)
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '\'':
			b.WriteRune(r)
		case r == '’': // curly apostrophe
			b.WriteRune('\'')
		}
	}
	return b.String()
}

// Classify derives the product category from a vendor title. Titles
// matching no rule get the empty category, which downstream disables
// model resolution and the finger-size attribute.
func Classify(title string) models.Category {
	cleaned := cleanTitle(title)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(cleaned, keyword) {
				return rule.category
			}
		}
	}
	return ""
}
