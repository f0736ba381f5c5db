package shopify

import "fmt"

const variantsPageSize = 250

// VendorVariants pages through every catalog variant belonging to the
// vendor, following cursors until the connection is exhausted.
func (c *Client) VendorVariants(vendor string) ([]Variant, error) {
	c.logger.Info("Fetching catalog variants for vendor %s", vendor)

	operation := fmt.Sprintf(`
	query vendorVariants($query: String!, $after: String) {
	  productVariants(first: %d, query: $query, after: $after) {
	    pageInfo {
	      hasNextPage
	      endCursor
	    }
	    edges {
	      node {
	        id
	        title
	        sku
	        inventoryQuantity
	        price
	        product {
	          id
	          title
	        }
	        inventoryItem {
	          id
	          tracked
	        }
	      }
	    }
	  }
	}`, variantsPageSize)

	var variants []Variant
	cursor := ""
	for {
		variables := map[string]interface{}{
			"query": fmt.Sprintf("vendor:%s", vendor),
		}
		if cursor != "" {
			variables["after"] = cursor
		}

		var data variantsQueryData
		if err := c.request(operation, variables, &data); err != nil {
			return nil, fmt.Errorf("failed to fetch vendor variants: %w", err)
		}

		for _, edge := range data.ProductVariants.Edges {
			node := edge.Node
			variants = append(variants, Variant{
				ProductID:         node.Product.ID,
				ProductTitle:      node.Product.Title,
				VariantID:         node.ID,
				VariantTitle:      node.Title,
				InventoryItemID:   node.InventoryItem.ID,
				Tracked:           node.InventoryItem.Tracked,
				InventoryQuantity: node.InventoryQuantity,
				Price:             node.Price,
				SKU:               node.SKU,
			})
		}

		if !data.ProductVariants.PageInfo.HasNextPage {
			break
		}
		cursor = data.ProductVariants.PageInfo.EndCursor
	}

	c.logger.Info("Fetched %d catalog variants", len(variants))
	return variants, nil
}
