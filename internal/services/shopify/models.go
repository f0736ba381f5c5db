package shopify

// Variant is one catalog variant on the storefront, flattened from the
// GraphQL productVariants connection. SKU may be empty; such variants
// are tracked separately and never matched.
type Variant struct {
	ProductID         string `json:"product_id"`
	ProductTitle      string `json:"product_title"`
	VariantID         string `json:"variant_id"`
	VariantTitle      string `json:"variant_title"`
	InventoryItemID   string `json:"inventory_item_id"`
	Tracked           bool   `json:"tracked"`
	InventoryQuantity int    `json:"inventory_quantity"`
	Price             string `json:"price"`
	SKU               string `json:"sku"`
}

type variantsQueryData struct {
	ProductVariants struct {
		PageInfo struct {
			HasNextPage bool   `json:"hasNextPage"`
			EndCursor   string `json:"endCursor"`
		} `json:"pageInfo"`
		Edges []struct {
			Node struct {
				ID                string `json:"id"`
				Title             string `json:"title"`
				SKU               string `json:"sku"`
				InventoryQuantity int    `json:"inventoryQuantity"`
				Price             string `json:"price"`
				Product           struct {
					ID    string `json:"id"`
					Title string `json:"title"`
				} `json:"product"`
				InventoryItem struct {
					ID      string `json:"id"`
					Tracked bool   `json:"tracked"`
				} `json:"inventoryItem"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"productVariants"`
}
