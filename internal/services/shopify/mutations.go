package shopify

import (
	"fmt"
	"strconv"

	"castsync/internal/metafields"
)

// fingerSizeOption is the variant option carrying the ring size.
const fingerSizeOption = "Tour de doigt"

// CreateProductInput carries everything needed to publish a brand-new
// product listing. FingerSize is expected pre-gated: non-nil only for
// ring products inside the accepted band.
type CreateProductInput struct {
	Title       string
	Description string
	Vendor      string
	ProductType string
	Images      []string
	Metafields  []metafields.Metafield
	FingerSize  *int
}

// CreatedProduct identifies a freshly created listing and its default
// option, needed by the follow-up variant configuration call.
type CreatedProduct struct {
	ProductID   string
	VariantID   string
	OptionName  string
	OptionValue string
}

type productCreateData struct {
	ProductCreate struct {
		Product struct {
			ID       string `json:"id"`
			Variants struct {
				Edges []struct {
					Node struct {
						ID string `json:"id"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"variants"`
			Options []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"options"`
		} `json:"product"`
		UserErrors []userError `json:"userErrors"`
	} `json:"productCreate"`
}

// CreateProduct publishes a new listing in draft status, with media and
// metafields attached in the same mutation.
func (c *Client) CreateProduct(input CreateProductInput) (*CreatedProduct, error) {
	c.logger.Info("Creating product: %s", input.Title)

	operation := `
	mutation productCreate($product: ProductCreateInput!, $media: [CreateMediaInput!]) {
	  productCreate(product: $product, media: $media) {
	    product {
	      id
	      variants(first: 10) {
	        edges {
	          node {
	            id
	          }
	        }
	      }
	      options {
	        id
	        name
	      }
	    }
	    userErrors {
	      field
	      message
	    }
	  }
	}`

	product := map[string]interface{}{
		"title":           input.Title,
		"vendor":          input.Vendor,
		"productType":     input.ProductType,
		"status":          "DRAFT",
		"tags":            []string{"tomoderate", "nouveau"},
		"descriptionHtml": input.Description,
		"metafields":      input.Metafields,
	}
	if input.FingerSize != nil {
		product["productOptions"] = []map[string]interface{}{
			{
				"name":   fingerSizeOption,
				"values": []map[string]string{{"name": strconv.Itoa(*input.FingerSize)}},
			},
		}
	}

	media := make([]map[string]string, 0, len(input.Images))
	for _, url := range input.Images {
		media = append(media, map[string]string{
			"alt":              input.Title,
			"mediaContentType": "IMAGE",
			"originalSource":   url,
		})
	}

	var data productCreateData
	err := c.request(operation, map[string]interface{}{"product": product, "media": media}, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	c.logUserErrors("productCreate", data.ProductCreate.UserErrors)

	created := data.ProductCreate.Product
	if created.ID == "" || len(created.Variants.Edges) == 0 {
		return nil, fmt.Errorf("product create returned no product for %q", input.Title)
	}

	result := &CreatedProduct{
		ProductID:   created.ID,
		VariantID:   created.Variants.Edges[0].Node.ID,
		OptionValue: "Default Title",
	}
	if len(created.Options) > 0 {
		result.OptionName = created.Options[0].Name
	}
	c.logger.Info("Created product %s", result.ProductID)
	return result, nil
}

type productSetData struct {
	ProductSet struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		UserErrors []userError `json:"userErrors"`
	} `json:"productSet"`
}

// SetVariant configures the single variant of a freshly created
// product: price, stock at the configured location, seller SKU, cost at
// the configured rate, and the finger-size option for gated rings.
func (c *Client) SetVariant(created *CreatedProduct, sku string, price, stock int, fingerSize *int) error {
	c.logger.Info("Configuring variant %s", created.VariantID)

	operation := `
	mutation productSetOptions($productSet: ProductSetInput!, $synchronous: Boolean!) {
	  productSet(synchronous: $synchronous, input: $productSet) {
	    product {
	      id
	    }
	    userErrors {
	      code
	      field
	      message
	    }
	  }
	}`

	variant := map[string]interface{}{
		"id": created.VariantID,
		"inventoryQuantities": []map[string]interface{}{
			{
				"locationId": c.locationID,
				"name":       "available",
				"quantity":   stock,
			},
		},
		"inventoryItem": map[string]interface{}{
			"cost":    float64(price) * c.costRate,
			"sku":     sku,
			"tracked": true,
		},
		"price": price,
	}

	var options []map[string]interface{}
	if fingerSize != nil {
		size := strconv.Itoa(*fingerSize)
		options = []map[string]interface{}{
			{
				"name":     fingerSizeOption,
				"position": 1,
				"values":   []map[string]string{{"name": size}},
			},
		}
		variant["optionValues"] = []map[string]string{
			{"optionName": fingerSizeOption, "name": size},
		}
	} else {
		options = []map[string]interface{}{
			{
				"name":     created.OptionName,
				"position": 1,
				"values":   []map[string]string{{"name": created.OptionValue}},
			},
		}
		variant["optionValues"] = []map[string]string{
			{"optionName": created.OptionName, "name": created.OptionValue},
		}
	}

	productSet := map[string]interface{}{
		"id":             created.ProductID,
		"variants":       []map[string]interface{}{variant},
		"productOptions": options,
	}

	var data productSetData
	err := c.request(operation, map[string]interface{}{"productSet": productSet, "synchronous": false}, &data)
	if err != nil {
		return fmt.Errorf("failed to set variant: %w", err)
	}
	c.logUserErrors("productSet", data.ProductSet.UserErrors)
	return nil
}

type variantsBulkUpdateData struct {
	ProductVariantsBulkUpdate struct {
		ProductVariants []struct {
			ID    string `json:"id"`
			Price string `json:"price"`
		} `json:"productVariants"`
		UserErrors []userError `json:"userErrors"`
	} `json:"productVariantsBulkUpdate"`
}

// UpdateVariantPrice rewrites the price of an existing variant.
func (c *Client) UpdateVariantPrice(productID, variantID string, price int) error {
	c.logger.Info("Updating price of product %s", productID)

	operation := `
	mutation productVariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
	  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
	    productVariants {
	      id
	      price
	    }
	    userErrors {
	      field
	      message
	    }
	  }
	}`

	variables := map[string]interface{}{
		"productId": productID,
		"variants": []map[string]string{
			{"id": variantID, "price": strconv.Itoa(price)},
		},
	}

	var data variantsBulkUpdateData
	if err := c.request(operation, variables, &data); err != nil {
		return fmt.Errorf("failed to update variant price: %w", err)
	}
	c.logUserErrors("productVariantsBulkUpdate", data.ProductVariantsBulkUpdate.UserErrors)
	return nil
}

type inventoryAdjustData struct {
	InventoryAdjustQuantities struct {
		UserErrors []userError `json:"userErrors"`
	} `json:"inventoryAdjustQuantities"`
}

// AdjustInventory applies a signed stock delta to an inventory item at
// the configured location.
func (c *Client) AdjustInventory(inventoryItemID string, delta int) error {
	operation := `
	mutation inventoryAdjustQuantities($input: InventoryAdjustQuantitiesInput!) {
	  inventoryAdjustQuantities(input: $input) {
	    userErrors {
	      field
	      message
	    }
	    inventoryAdjustmentGroup {
	      createdAt
	      reason
	      changes {
	        name
	        delta
	      }
	    }
	  }
	}`

	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"reason": "correction",
			"name":   "available",
			"changes": []map[string]interface{}{
				{
					"delta":           delta,
					"inventoryItemId": inventoryItemID,
					"locationId":      c.locationID,
				},
			},
		},
	}

	var data inventoryAdjustData
	if err := c.request(operation, variables, &data); err != nil {
		return fmt.Errorf("failed to adjust inventory: %w", err)
	}
	c.logUserErrors("inventoryAdjustQuantities", data.InventoryAdjustQuantities.UserErrors)
	return nil
}

type productMetafieldsData struct {
	Product struct {
		Metafields struct {
			Edges []struct {
				Node struct {
					Key   string `json:"key"`
					Value string `json:"value"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"metafields"`
	} `json:"product"`
}

// ProductMetafields fetches the attributes currently stored on a
// product in the sync's namespace, for the idempotence check.
func (c *Client) ProductMetafields(productID string) ([]metafields.StoredValue, error) {
	operation := fmt.Sprintf(`
	query getProductMetafields($id: ID!) {
	  product(id: $id) {
	    metafields(first: 50, namespace: %q) {
	      edges {
	        node {
	          key
	          value
	        }
	      }
	    }
	  }
	}`, metafields.Namespace)

	var data productMetafieldsData
	if err := c.request(operation, map[string]interface{}{"id": productID}, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch product metafields: %w", err)
	}

	var stored []metafields.StoredValue
	for _, edge := range data.Product.Metafields.Edges {
		stored = append(stored, metafields.StoredValue{Key: edge.Node.Key, Value: edge.Node.Value})
	}
	return stored, nil
}

type productUpdateData struct {
	ProductUpdate struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		UserErrors []userError `json:"userErrors"`
	} `json:"productUpdate"`
}

// UpdateProductMetafields rewrites a product's attributes in place.
func (c *Client) UpdateProductMetafields(productID string, fields []metafields.Metafield) error {
	if len(fields) == 0 {
		return nil
	}
	c.logger.Info("Updating metafields of product %s", productID)

	operation := `
	mutation productUpdate($input: ProductInput!) {
	  productUpdate(input: $input) {
	    product {
	      id
	    }
	    userErrors {
	      field
	      message
	    }
	  }
	}`

	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"id":         productID,
			"metafields": fields,
		},
	}

	var data productUpdateData
	if err := c.request(operation, variables, &data); err != nil {
		return fmt.Errorf("failed to update metafields: %w", err)
	}
	c.logUserErrors("productUpdate", data.ProductUpdate.UserErrors)
	return nil
}
