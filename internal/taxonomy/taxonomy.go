package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"castsync/internal/models"
)

//go:embed taxonomy.json
var defaultDocument []byte

// Entry is one controlled-vocabulary term. Inactive entries stay in the
// reference document but are excluded from all matching.
type Entry struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ModelLists holds the per-category model vocabularies.
type ModelLists struct {
	Rings     []Entry `json:"rings"`
	Necklaces []Entry `json:"necklaces"`
	Earrings  []Entry `json:"earrings"`
	Broaches  []Entry `json:"broaches"`
	Watches   []Entry `json:"watches"`
}

// StyleLists holds the categories whose vocabulary is a style list
// rather than a model list.
type StyleLists struct {
	Bracelets []Entry `json:"bracelets"`
	Pendants  []Entry `json:"pendants"`
}

// Taxonomy is the controlled vocabulary the resolver matches against.
// Loaded once at startup and read-only afterwards.
type Taxonomy struct {
	Brands     []Entry    `json:"brands"`
	Materials  []Entry    `json:"materials"`
	Gems       []Entry    `json:"gems"`
	Conditions []Entry    `json:"conditions"`
	Genres     []Entry    `json:"genres"`
	Eras       []string   `json:"eras"` // plain labels with embedded year ranges
	Models     ModelLists `json:"models"`
	Styles     StyleLists `json:"styles"`
}

type document struct {
	Product Taxonomy `json:"product"`
}

// Load parses the embedded reference document.
func Load() (*Taxonomy, error) {
	return parse(defaultDocument)
}

// LoadFile reads a taxonomy document from disk instead of the embedded
// default, for overrides and test fixtures.
func LoadFile(path string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Taxonomy, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy document: %w", err)
	}
	return &doc.Product, nil
}

// ModelsFor selects the model or style list for a product category.
// Categories without a vocabulary return nil.
func (t *Taxonomy) ModelsFor(category models.Category) []Entry {
	switch category {
	case models.CategoryRings:
		return t.Models.Rings
	case models.CategoryNecklaces:
		return t.Models.Necklaces
	case models.CategoryBracelets:
		return t.Styles.Bracelets
	case models.CategoryEarrings:
		return t.Models.Earrings
	case models.CategoryBrooches:
		return t.Models.Broaches
	case models.CategoryWatches:
		return t.Models.Watches
	case models.CategoryPendants:
		return t.Styles.Pendants
	}
	return nil
}
