package models

// Category is the storefront product type derived from a vendor title.
// The empty value means the title matched no known category; downstream
// that disables model resolution and the finger-size attribute.
type Category string

const (
	CategoryRings       Category = "Bagues"
	CategoryBracelets   Category = "Bracelets"
	CategoryNecklaces   Category = "Colliers"
	CategoryEarrings    Category = "Boucles d'oreilles"
	CategoryPendants    Category = "Pendentifs"
	CategoryBrooches    Category = "Broches"
	CategoryWatches     Category = "Montres"
	CategorySets        Category = "Parures"
	CategoryAccessories Category = "Accessoires"
)

// FlatProduct is the normalized form of one vendor record, with every
// free-text field resolved against the controlled vocabulary. Computed
// fresh on each reconciliation pass, never persisted.
type FlatProduct struct {
	SKU         string   `json:"sku"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Brand       string   `json:"brand"`
	Materials   []string `json:"materials"`
	Gems        []string `json:"gems"` // first entry is the primary gemstone
	Category    Category `json:"category"`
	FingerSize  *int     `json:"finger_size"` // nil means not applicable
	Style       string   `json:"style"`
	Era         string   `json:"era"`
	Condition   string   `json:"condition"`
	Genres      []string `json:"genres"`
	Model       string   `json:"model"` // category-specific model name
}
