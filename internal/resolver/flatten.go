package resolver

import (
	"strconv"
	"strings"

	"castsync/internal/feed"
	"castsync/internal/models"
)

// FlattenProduct resolves one raw vendor record into its normalized
// form. Title and description together are the default search text;
// dedicated feed fields take priority where present.
func (r *Resolver) FlattenProduct(record feed.Record) models.FlatProduct {
	text := record.Title + " " + record.Description
	category := Classify(record.Title)

	materialText := record.Material
	if strings.TrimSpace(materialText) == "" {
		materialText = text
	}
	gemText := record.GemCharacteristics
	if strings.TrimSpace(gemText) == "" {
		gemText = text
	}

	// An explicit size field wins over description scanning; an
	// unparseable explicit value means no size at all rather than a
	// fallback.
	var size *int
	if raw := strings.TrimSpace(record.FingerSize); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			size = NormalizeFingerSize(category, int(v))
		}
	} else {
		size = NormalizeFingerSize(category, ExtractFingerSize(record.Description))
	}

	modelLabel := record.ModelName
	if strings.TrimSpace(modelLabel) == "" {
		modelLabel = record.Title
	}

	return models.FlatProduct{
		SKU:         record.SKU,
		Title:       record.Title,
		Description: record.Description,
		Brand:       r.BrandName(text),
		Materials:   r.MaterialNames(materialText),
		Gems:        r.GemNames(gemText),
		Category:    category,
		FingerSize:  size,
		Style:       record.ModelName,
		Era:         r.EraName(record.Description),
		Condition:   r.ConditionName(record.Description),
		Genres:      r.GenreNames(record.Description),
		Model:       r.ModelName(category, modelLabel),
	}
}
