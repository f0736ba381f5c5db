package metafields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	desired := []Metafield{
		{Namespace: Namespace, Key: "condition", Type: TypeSingleLineText, Value: "Bon état"},
		{Namespace: Namespace, Key: "materials", Type: TypeSingleLineList, Value: `["Or jaune"]`},
	}

	t.Run("matching values", func(t *testing.T) {
		current := []StoredValue{
			{Key: "condition", Value: "Bon état"},
			{Key: "materials", Value: `["Or jaune"]`},
		}
		assert.True(t, Equal(desired, current))
	})

	t.Run("extra stored keys are ignored", func(t *testing.T) {
		current := []StoredValue{
			{Key: "condition", Value: "Bon état"},
			{Key: "materials", Value: `["Or jaune"]`},
			{Key: "era", Value: "Vintage 1970-1989"},
		}
		assert.True(t, Equal(desired, current))
	})

	t.Run("missing key", func(t *testing.T) {
		current := []StoredValue{{Key: "condition", Value: "Bon état"}}
		assert.False(t, Equal(desired, current))
	})

	t.Run("value mismatch", func(t *testing.T) {
		current := []StoredValue{
			{Key: "condition", Value: "État neuf"},
			{Key: "materials", Value: `["Or jaune"]`},
		}
		assert.False(t, Equal(desired, current))
	})

	t.Run("empty desired is vacuously equal", func(t *testing.T) {
		assert.True(t, Equal(nil, nil))
		assert.True(t, Equal(nil, []StoredValue{{Key: "condition", Value: "x"}}))
	})
}

func TestEqualNumberDecimal(t *testing.T) {
	desired := []Metafield{
		{Namespace: Namespace, Key: "tour_de_doigt", Type: TypeNumberDecimal, Value: "52"},
	}

	assert.True(t, Equal(desired, []StoredValue{{Key: "tour_de_doigt", Value: "52.0"}}))
	assert.True(t, Equal(desired, []StoredValue{{Key: "tour_de_doigt", Value: "52"}}))
	assert.False(t, Equal(desired, []StoredValue{{Key: "tour_de_doigt", Value: "53"}}))

	// Unparseable stored values compare literally.
	assert.False(t, Equal(desired, []StoredValue{{Key: "tour_de_doigt", Value: "n/a"}}))
}

func TestEqualListRoundTrip(t *testing.T) {
	desired := []Metafield{
		{Namespace: Namespace, Key: "genre", Type: TypeSingleLineList, Value: `["Femme","Homme"]`},
	}

	// Whitespace differences disappear after the JSON round trip.
	assert.True(t, Equal(desired, []StoredValue{{Key: "genre", Value: `[ "Femme", "Homme" ]`}}))
	assert.False(t, Equal(desired, []StoredValue{{Key: "genre", Value: `["Homme","Femme"]`}}))
}
