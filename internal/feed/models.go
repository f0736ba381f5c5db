package feed

import (
	"encoding/json"
	"strings"
)

// Record is one raw item of the vendor's JSON feed export. Numeric
// fields arrive as decimal strings and stay raw until reconciliation.
type Record struct {
	SKU                string    `json:"sku"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Price              string    `json:"price"`
	Stock              string    `json:"stock"`
	ImageLink          string    `json:"image_link"`
	AdditionalImages   ImageList `json:"additional_image_link"`
	Material           string    `json:"matiere"`
	GemCharacteristics string    `json:"caracteristiques_des_pierres"`
	ModelName          string    `json:"nom_du_modele"`
	FingerSize         string    `json:"taille_de_doigt"`
	Resizable          string    `json:"mise_a_la_taille_possible"`
	Brand              string    `json:"brand"`
}

// ImageList tolerates both shapes the feed uses for additional images:
// a JSON array of URLs or a single comma-separated string.
type ImageList []string

func (l *ImageList) UnmarshalJSON(data []byte) error {
	var urls []string
	if err := json.Unmarshal(data, &urls); err == nil {
		*l = urls
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	var out []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}
