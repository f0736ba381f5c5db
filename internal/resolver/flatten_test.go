package resolver

import (
	"testing"

	"castsync/internal/feed"
	"castsync/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFlattenProduct(t *testing.T) {
	r := newTestResolver(t)

	record := feed.Record{
		SKU:         "JMB-001",
		Title:       "Bague Cartier Trinity",
		Description: "Or jaune, or gris et or rose, diamants. Taille 53. Très bon état. Femme",
	}

	flat := r.FlattenProduct(record)

	assert.Equal(t, "JMB-001", flat.SKU)
	assert.Equal(t, models.CategoryRings, flat.Category)
	assert.Equal(t, "Cartier", flat.Brand)
	assert.Equal(t, []string{"Or gris", "Or jaune", "Or rose"}, flat.Materials)
	assert.Equal(t, []string{"Diamant"}, flat.Gems)
	assert.Equal(t, "Très bon état", flat.Condition)
	assert.Equal(t, []string{"Femme"}, flat.Genres)
	assert.Equal(t, "Trinity", flat.Model)
	if assert.NotNil(t, flat.FingerSize) {
		assert.Equal(t, 53, *flat.FingerSize)
	}
}

func TestFlattenProductDedicatedFields(t *testing.T) {
	r := newTestResolver(t)

	// Dedicated feed columns take priority over title and description.
	record := feed.Record{
		SKU:                "JMB-002",
		Title:              "Collier ancien",
		Description:        "Collier en or jaune orné de diamants",
		Material:           "platine",
		GemCharacteristics: "saphir birman",
		ModelName:          "Sautoir long",
	}

	flat := r.FlattenProduct(record)

	assert.Equal(t, models.CategoryNecklaces, flat.Category)
	assert.Equal(t, []string{"Platine"}, flat.Materials)
	assert.Equal(t, []string{"Saphir"}, flat.Gems)
	assert.Equal(t, "Sautoir", flat.Model)
	assert.Equal(t, "Sautoir long", flat.Style)
	assert.Nil(t, flat.FingerSize)
}

func TestFlattenProductExplicitFingerSize(t *testing.T) {
	r := newTestResolver(t)

	base := feed.Record{
		SKU:         "JMB-003",
		Title:       "Bague solitaire diamant",
		Description: "Monture platine, taille 50",
	}

	// An explicit size field wins over description scanning.
	explicit := base
	explicit.FingerSize = "56.0"
	flat := r.FlattenProduct(explicit)
	if assert.NotNil(t, flat.FingerSize) {
		assert.Equal(t, 56, *flat.FingerSize)
	}

	// An unparseable explicit value means no size, not a fallback scan.
	garbage := base
	garbage.FingerSize = "ajustable"
	assert.Nil(t, r.FlattenProduct(garbage).FingerSize)

	// Without the field the description is scanned.
	flat = r.FlattenProduct(base)
	if assert.NotNil(t, flat.FingerSize) {
		assert.Equal(t, 50, *flat.FingerSize)
	}

	// Out-of-band explicit sizes are dropped by the gate.
	tooBig := base
	tooBig.FingerSize = "75"
	assert.Nil(t, r.FlattenProduct(tooBig).FingerSize)
}

func TestFlattenProductModelFallsBackToTitle(t *testing.T) {
	r := newTestResolver(t)

	record := feed.Record{
		SKU:   "JMB-004",
		Title: "Bague Toi et Moi saphir et diamant",
	}

	flat := r.FlattenProduct(record)
	assert.Equal(t, "Toi et Moi", flat.Model)
	assert.Equal(t, "", flat.Style)
}
