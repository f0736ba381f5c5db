package resolver

import (
	"testing"

	"castsync/internal/models"
	"castsync/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	tax, err := taxonomy.Load()
	require.NoError(t, err)
	return New(tax)
}

func TestBrandName(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"exact match", "Cartier", "Cartier"},
		{"contained in text", "Bague Cartier Trinity en or jaune", "Cartier"},
		{"accent insensitive", "Bracelet HERMES en argent", "Hermès"},
		{"first match wins", "Collier Cartier style Boucheron", "Cartier"},
		{"inactive brand excluded", "Bague Pomellato", ""},
		{"no match", "Bague ancienne en or", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.BrandName(tt.input))
		})
	}
}

func TestMaterialNames(t *testing.T) {
	r := newTestResolver(t)

	// All hits, reported in taxonomy order regardless of text order.
	assert.Equal(t, []string{"Or gris", "Or jaune"},
		r.MaterialNames("Bague en or jaune et or gris"))
	assert.Equal(t, []string{"Platine"}, r.MaterialNames("Monture platine"))
	assert.Nil(t, r.MaterialNames("Bague en bois"))

	// Inactive materials never match.
	assert.Nil(t, r.MaterialNames("Bracelet en titane"))
}

func TestGemNames(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, []string{"Diamant", "Saphir"},
		r.GemNames("Saphir central entouré de diamants"))
	assert.Equal(t, []string{"Émeraude"}, r.GemNames("emeraude de Colombie"))
	assert.Nil(t, r.GemNames("   "))
	assert.Nil(t, r.GemNames("Pas de pierre"))
}

func TestConditionName(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, "Très bon état", r.ConditionName("Tres bon etat général"))
	assert.Equal(t, "", r.ConditionName(""))
	assert.Equal(t, "", r.ConditionName("Comme neuf"))
}

func TestGenreNames(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single", "Femme", []string{"Femme"}},
		{"comma split keeps input order", "Homme, Femme", []string{"Homme", "Femme"}},
		{"duplicates collapsed", "Femme, femme", []string{"Femme"}},
		{"fallback to whole string", "bijou pour homme élégant", []string{"Homme"}},
		{"blank", "   ", nil},
		{"no match", "bijou ancien", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.GenreNames(tt.input))
		})
	}
}

func TestActiveEntriesRoundTrip(t *testing.T) {
	r := newTestResolver(t)
	tax, err := taxonomy.Load()
	require.NoError(t, err)

	// Feeding an exact taxonomy name back in must resolve to that entry.
	for _, e := range tax.Brands {
		if e.Active {
			assert.Equal(t, e.Name, r.BrandName(e.Name))
		}
	}
	for _, e := range tax.Materials {
		if e.Active {
			assert.Contains(t, r.MaterialNames(e.Name), e.Name)
		}
	}
	for _, e := range tax.Gems {
		if e.Active {
			assert.Contains(t, r.GemNames(e.Name), e.Name)
		}
	}
	for _, e := range tax.Conditions {
		if e.Active {
			assert.Equal(t, e.Name, r.ConditionName(e.Name))
		}
	}
	for _, e := range tax.Genres {
		if e.Active {
			assert.Equal(t, []string{e.Name}, r.GenreNames(e.Name))
		}
	}
	for _, era := range tax.Eras {
		assert.Equal(t, era, r.EraName(era))
	}
}

func TestModelName(t *testing.T) {
	r := newTestResolver(t)
	tax, err := taxonomy.Load()
	require.NoError(t, err)

	assert.Equal(t, "Trinity", r.ModelName(models.CategoryRings, "Bague Trinity or tricolore"))
	assert.Equal(t, "Tank", r.ModelName(models.CategoryWatches, "Montre Tank Française"))
	assert.Equal(t, "Jonc", r.ModelName(models.CategoryBracelets, "Bracelet jonc ouvert"))

	// Ring models never leak into another category's lookup.
	assert.Equal(t, "", r.ModelName(models.CategoryNecklaces, "Trinity"))

	// Categories without a vocabulary resolve to nothing.
	assert.Equal(t, "", r.ModelName(models.CategorySets, "Parure Alhambra"))
	assert.Equal(t, "", r.ModelName("", "Trinity"))
	assert.Equal(t, "", r.ModelName(models.CategoryRings, "   "))

	// Every active ring model resolves to itself.
	for _, e := range tax.Models.Rings {
		if e.Active {
			assert.Equal(t, e.Name, r.ModelName(models.CategoryRings, e.Name))
		}
	}
}
