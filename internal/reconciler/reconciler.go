package reconciler

import (
	"strconv"
	"strings"

	"castsync/internal/feed"
	"castsync/internal/models"
	"castsync/internal/resolver"
	"castsync/internal/services/shopify"
)

// MaxImagesPerProduct caps how many media entries a new listing gets.
const MaxImagesPerProduct = 10

// ProductToAdd is a vendor product with no catalog counterpart.
type ProductToAdd struct {
	models.FlatProduct
	Price  int      `json:"price"`
	Stock  int      `json:"stock"`
	Images []string `json:"images"`
}

// ProductToUpdate pairs a matched vendor record with the catalog ids it
// must be written to. An entry is emitted for every matched SKU whether
// or not anything changed; consumers decide what to act on.
type ProductToUpdate struct {
	models.FlatProduct
	ProductID       string `json:"product_id"`
	ProductTitle    string `json:"product_title"`
	VariantID       string `json:"variant_id"`
	InventoryItemID string `json:"inventory_item_id"`
	Tracked         bool   `json:"tracked"`
	Price           int    `json:"price"`
	Stock           int    `json:"stock"`
	PriceChanged    bool   `json:"price_changed"`
	StockChanged    bool   `json:"stock_changed"`
	StockDelta      int    `json:"stock_delta"` // new minus current
}

// ProductToDeactivate zeroes the stock of a catalog variant that
// vanished from the feed, without deleting the listing.
type ProductToDeactivate struct {
	SKU             string `json:"sku"`
	ProductID       string `json:"product_id"`
	VariantID       string `json:"variant_id"`
	InventoryItemID string `json:"inventory_item_id"`
	StockDelta      int    `json:"stock_delta"` // negative of current quantity
}

// Conflict is a feed record skipped because its SKU was already queued
// for creation earlier in the same pass.
type Conflict struct {
	SKU   string `json:"sku"`
	Title string `json:"title"`
}

// UnmappedVariant is a catalog variant without a SKU; it can never be
// matched and is reported for visibility only.
type UnmappedVariant struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Title     string `json:"title"`
}

// Result is the outcome of one reconciliation pass. Every SKU present
// on both sides lands in ToUpdate, feed-only SKUs in ToAdd, and
// platform SKUs absent from the feed in ToDeactivate.
type Result struct {
	ToAdd         []ProductToAdd
	ToUpdate      []ProductToUpdate
	ToDeactivate  []ProductToDeactivate
	DuplicateSKUs []string
	Conflicts     []Conflict
	Unmapped      []UnmappedVariant
}

type Reconciler struct {
	resolver *resolver.Resolver
}

func New(res *resolver.Resolver) *Reconciler {
	return &Reconciler{resolver: res}
}

type indexEntry struct {
	productID       string
	productTitle    string
	variantID       string
	inventoryItemID string
	tracked         bool
	quantity        int
	price           string
}

// Reconcile classifies every vendor record against the catalog. Catalog
// variants sharing a SKU are excluded from the match index entirely;
// writing against an ambiguous SKU risks updating the wrong listing, so
// a vendor record carrying such a SKU is treated as brand-new instead.
func (r *Reconciler) Reconcile(records []feed.Record, variants []shopify.Variant) *Result {
	result := &Result{}

	skuCount := make(map[string]int)
	for _, v := range variants {
		if v.SKU != "" {
			skuCount[v.SKU]++
		}
	}
	duplicates := make(map[string]bool)
	for _, v := range variants {
		if v.SKU != "" && skuCount[v.SKU] > 1 && !duplicates[v.SKU] {
			duplicates[v.SKU] = true
			result.DuplicateSKUs = append(result.DuplicateSKUs, v.SKU)
		}
	}

	index := make(map[string]indexEntry)
	for _, v := range variants {
		if v.SKU == "" {
			result.Unmapped = append(result.Unmapped, UnmappedVariant{
				ProductID: v.ProductID,
				VariantID: v.VariantID,
				Title:     v.VariantTitle,
			})
			continue
		}
		if duplicates[v.SKU] {
			continue
		}
		index[v.SKU] = indexEntry{
			productID:       v.ProductID,
			productTitle:    v.ProductTitle,
			variantID:       v.VariantID,
			inventoryItemID: v.InventoryItemID,
			tracked:         v.Tracked,
			quantity:        v.InventoryQuantity,
			price:           v.Price,
		}
	}

	added := make(map[string]bool)
	for _, record := range records {
		sku := record.SKU
		if sku == "" {
			// Known gap: feed records without a SKU are dropped with no
			// diagnostic. They can neither match nor be created.
			continue
		}
		if entry, ok := index[sku]; ok {
			price := truncateDecimal(record.Price)
			stock := truncateDecimal(record.Stock)
			result.ToUpdate = append(result.ToUpdate, ProductToUpdate{
				FlatProduct:     r.resolver.FlattenProduct(record),
				ProductID:       entry.productID,
				ProductTitle:    entry.productTitle,
				VariantID:       entry.variantID,
				InventoryItemID: entry.inventoryItemID,
				Tracked:         entry.tracked,
				Price:           price,
				Stock:           stock,
				PriceChanged:    truncateDecimal(entry.price) != price,
				StockChanged:    entry.quantity != stock,
				StockDelta:      stock - entry.quantity,
			})
			// Whatever stays in the index after the feed walk has
			// vanished from the feed.
			delete(index, sku)
		} else if !added[sku] {
			added[sku] = true
			result.ToAdd = append(result.ToAdd, ProductToAdd{
				FlatProduct: r.resolver.FlattenProduct(record),
				Price:       truncateDecimal(record.Price),
				Stock:       truncateDecimal(record.Stock),
				Images:      buildImageList(record),
			})
		} else {
			result.Conflicts = append(result.Conflicts, Conflict{SKU: sku, Title: record.Title})
		}
	}

	// Second walk over the catalog keeps deactivations in catalog order.
	for _, v := range variants {
		entry, ok := index[v.SKU]
		if !ok || v.SKU == "" {
			continue
		}
		result.ToDeactivate = append(result.ToDeactivate, ProductToDeactivate{
			SKU:             v.SKU,
			ProductID:       entry.productID,
			VariantID:       entry.variantID,
			InventoryItemID: entry.inventoryItemID,
			StockDelta:      -entry.quantity,
		})
		delete(index, v.SKU)
	}

	return result
}

// truncateDecimal parses a decimal string to an int, truncating any
// fractional part. Malformed input yields zero.
func truncateDecimal(s string) int {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(n)
}

// buildImageList assembles the primary plus additional image URLs,
// dropping empties and capping the list.
func buildImageList(record feed.Record) []string {
	urls := make([]string, 0, len(record.AdditionalImages)+1)
	for _, u := range append([]string{record.ImageLink}, record.AdditionalImages...) {
		if strings.TrimSpace(u) == "" {
			continue
		}
		urls = append(urls, u)
		if len(urls) == MaxImagesPerProduct {
			break
		}
	}
	return urls
}
