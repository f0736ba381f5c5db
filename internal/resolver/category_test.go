package resolver

import (
	"testing"

	"castsync/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected models.Category
	}{
		{"bague", "Bague Trinity or jaune", models.CategoryRings},
		{"solitaire", "Solitaire diamant 1 carat", models.CategoryRings},
		{"alliance", "Alliance platine", models.CategoryRings},
		{"bracelet", "Bracelet jonc argent", models.CategoryBracelets},
		{"collier", "Collier perles de culture", models.CategoryNecklaces},
		{"earrings singular", "Boucle d'oreille seule", models.CategoryEarrings},
		{"earrings plural", "Boucles d'oreilles créoles", models.CategoryEarrings},
		{"earrings curly apostrophe", "Boucles d’oreilles saphir", models.CategoryEarrings},
		{"pendentif", "Pendentif cœur or rose", models.CategoryPendants},
		{"croix", "Croix ancienne en or", models.CategoryPendants},
		{"medaille accented", "Médaille Vierge or jaune", models.CategoryPendants},
		{"broche", "Broche trembleuse diamants", models.CategoryBrooches},
		{"montre", "Montre Tank Française", models.CategoryWatches},
		{"parure", "Parure émeraudes et diamants", models.CategorySets},
		{"accessoire", "Accessoire de coiffure", models.CategoryAccessories},
		{"boucles de ceinture", "Boucles de ceinture argent", models.CategoryAccessories},
		{"peigne", "Peigne en écaille", models.CategoryAccessories},
		{"case insensitive", "BAGUE OR GRIS", models.CategoryRings},
		{"unknown", "Bijou ancien", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.title))
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	// Earlier rules win when several keywords are present.
	assert.Equal(t, models.CategoryRings, Classify("Bague et collier assortis"))
	assert.Equal(t, models.CategoryBracelets, Classify("Bracelet montre acier"))
	assert.Equal(t, models.CategoryNecklaces, Classify("Collier pendentif croix"))
}
