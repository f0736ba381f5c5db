package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "CARTIER", "cartier"},
		{"strips accents", "Émeraude", "emeraude"},
		{"strips mixed accents", "Très bon état", "tres bon etat"},
		{"trims whitespace", "  or jaune  ", "or jaune"},
		{"keeps cedilla base letter", "Façon", "facon"},
		{"empty input", "", ""},
		{"keeps digits and punctuation", "Art Déco 1920-1940", "art deco 1920-1940"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Émeraude", "Boucles d'oreilles", "  Hermès  ", "déjà-vu"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
