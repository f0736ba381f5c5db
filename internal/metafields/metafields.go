package metafields

import (
	"encoding/json"
	"strconv"

	"castsync/internal/models"
)

// Namespace is the metafield namespace owned by this sync.
const Namespace = "castapp"

const (
	TypeSingleLineText = "single_line_text_field"
	TypeSingleLineList = "list.single_line_text_field"
	TypeNumberDecimal  = "number_decimal"
)

// Metafield is one typed attribute entry in the platform's payload
// format.
type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

// modelKeyByCategory maps product categories to their model metafield
// key. Categories absent from the table (pendants, sets, accessories)
// carry no model attribute.
var modelKeyByCategory = map[models.Category]string{
	models.CategoryRings:     "ring_model",
	models.CategoryNecklaces: "necklace_model",
	models.CategoryBracelets: "bracelet_model",
	models.CategoryEarrings:  "earrings_model",
	models.CategoryBrooches:  "brooch_model",
	models.CategoryWatches:   "watch_model",
}

// Build produces the attribute payload for a normalized product. Empty
// fields are omitted, never emitted as null.
func Build(product models.FlatProduct) []Metafield {
	var fields []Metafield

	add := func(key, fieldType, value string) {
		fields = append(fields, Metafield{
			Namespace: Namespace,
			Key:       key,
			Type:      fieldType,
			Value:     value,
		})
	}
	addList := func(key string, values []string) {
		encoded, _ := json.Marshal(values)
		add(key, TypeSingleLineList, string(encoded))
	}

	if product.Brand != "" {
		addList("brands", []string{product.Brand})
	}
	if len(product.Materials) > 0 {
		addList("materials", product.Materials)
	}
	if len(product.Gems) > 0 {
		add("gem_primary", TypeSingleLineText, product.Gems[0])
		if len(product.Gems) > 1 {
			addList("gem_secondary", product.Gems[1:])
		}
	}
	if product.Condition != "" {
		add("condition", TypeSingleLineText, product.Condition)
	}
	if len(product.Genres) > 0 {
		addList("genre", product.Genres)
	}
	if product.Style != "" {
		add("style", TypeSingleLineText, product.Style)
	}
	if product.Era != "" {
		add("era", TypeSingleLineText, product.Era)
	}
	if product.Category == models.CategoryRings && product.FingerSize != nil {
		add("tour_de_doigt", TypeNumberDecimal, strconv.Itoa(*product.FingerSize))
	}
	if product.SKU != "" {
		add("sku_seller", TypeSingleLineText, product.SKU)
	}
	if key, ok := modelKeyByCategory[product.Category]; ok && product.Model != "" {
		add(key, TypeSingleLineText, product.Model)
	}

	return fields
}
