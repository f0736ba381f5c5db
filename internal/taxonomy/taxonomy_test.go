package taxonomy

import (
	"testing"

	"castsync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	tax, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, tax.Brands)
	assert.NotEmpty(t, tax.Materials)
	assert.NotEmpty(t, tax.Gems)
	assert.NotEmpty(t, tax.Conditions)
	assert.NotEmpty(t, tax.Genres)
	assert.NotEmpty(t, tax.Eras)
	assert.NotEmpty(t, tax.Models.Rings)
	assert.NotEmpty(t, tax.Styles.Bracelets)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does-not-exist.json")
	assert.Error(t, err)
}

func TestModelsFor(t *testing.T) {
	tax, err := Load()
	require.NoError(t, err)

	assert.Equal(t, tax.Models.Rings, tax.ModelsFor(models.CategoryRings))
	assert.Equal(t, tax.Models.Necklaces, tax.ModelsFor(models.CategoryNecklaces))
	assert.Equal(t, tax.Models.Earrings, tax.ModelsFor(models.CategoryEarrings))
	assert.Equal(t, tax.Models.Broaches, tax.ModelsFor(models.CategoryBrooches))
	assert.Equal(t, tax.Models.Watches, tax.ModelsFor(models.CategoryWatches))

	// Bracelets and pendants use style lists, not model lists.
	assert.Equal(t, tax.Styles.Bracelets, tax.ModelsFor(models.CategoryBracelets))
	assert.Equal(t, tax.Styles.Pendants, tax.ModelsFor(models.CategoryPendants))

	assert.Nil(t, tax.ModelsFor(models.CategorySets))
	assert.Nil(t, tax.ModelsFor(models.CategoryAccessories))
	assert.Nil(t, tax.ModelsFor(""))
}
