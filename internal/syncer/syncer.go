package syncer

import (
	"fmt"
	"strings"
	"time"

	"castsync/internal/config"
	"castsync/internal/database"
	"castsync/internal/events"
	"castsync/internal/feed"
	"castsync/internal/logger"
	"castsync/internal/metafields"
	"castsync/internal/models"
	"castsync/internal/reconciler"
	"castsync/internal/resolver"
	"castsync/internal/services/shopify"
	"castsync/internal/taxonomy"
)

// sampleSize limits how many products a dry run describes in detail.
const sampleSize = 3

// Syncer runs full reconciliation passes: fetch both sides, classify,
// then apply the change sets through the platform client one product at
// a time.
type Syncer struct {
	config     *config.Config
	logger     *logger.Logger
	db         *database.Database
	feed       *feed.Client
	shopify    *shopify.Client
	reconciler *reconciler.Reconciler
	publisher  *events.Publisher
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database, publisher *events.Publisher) (*Syncer, error) {
	var tax *taxonomy.Taxonomy
	var err error
	if cfg.TaxonomyPath != "" {
		tax, err = taxonomy.LoadFile(cfg.TaxonomyPath)
	} else {
		tax, err = taxonomy.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	res := resolver.New(tax)
	return &Syncer{
		config:     cfg,
		logger:     logger,
		db:         db,
		feed:       feed.NewClient(cfg.FeedURL, logger),
		shopify:    shopify.NewClient(cfg.ShopifyStoreDomain, cfg.ShopifyAPIVersion, cfg.ShopifyAccessToken, cfg.ShopifyLocationID, cfg.CostPercentage, logger),
		reconciler: reconciler.New(res),
		publisher:  publisher,
	}, nil
}

// Run executes one reconciliation pass and records it as a SyncRun.
func (s *Syncer) Run(runID string) (*models.SyncRun, error) {
	run := &models.SyncRun{
		ID:        runID,
		Vendor:    s.config.VendorName,
		Status:    models.RunStatusRunning,
		DryRun:    s.config.DryRun,
		StartedAt: time.Now().UTC(),
	}
	if s.db != nil {
		if err := s.db.DB.Create(run).Error; err != nil {
			s.logger.Error("Failed to record sync run: %v", err)
		}
	}

	err := s.pass(run)

	finished := time.Now().UTC()
	run.FinishedAt = &finished
	if err != nil {
		run.Status = models.RunStatusFailed
		msg := err.Error()
		run.Error = &msg
	} else {
		run.Status = models.RunStatusCompleted
	}
	if s.db != nil {
		if dbErr := s.db.DB.Save(run).Error; dbErr != nil {
			s.logger.Error("Failed to save sync run: %v", dbErr)
		}
	}
	return run, err
}

func (s *Syncer) pass(run *models.SyncRun) error {
	records, err := s.feed.FetchRecords()
	if err != nil {
		return err
	}
	run.FeedCount = len(records)

	variants, err := s.shopify.VendorVariants(s.config.VendorName)
	if err != nil {
		return err
	}
	run.PlatformCount = len(variants)

	result := s.reconciler.Reconcile(records, variants)
	run.Added = len(result.ToAdd)
	run.Updated = len(result.ToUpdate)
	run.Deactivated = len(result.ToDeactivate)
	run.DuplicateSKUs = len(result.DuplicateSKUs)
	run.FeedConflicts = len(result.Conflicts)

	s.logger.Info("Reconciliation: %d to add, %d to update, %d to deactivate",
		len(result.ToAdd), len(result.ToUpdate), len(result.ToDeactivate))
	if len(result.DuplicateSKUs) > 0 {
		s.logger.Warn("Excluded %d duplicate catalog SKUs: %s",
			len(result.DuplicateSKUs), strings.Join(result.DuplicateSKUs, ", "))
	}
	for _, conflict := range result.Conflicts {
		s.logger.Warn("Duplicate SKU in feed, skipped: %s - %s", conflict.SKU, conflict.Title)
	}
	if len(result.Unmapped) > 0 {
		s.logger.Warn("%d catalog variants carry no SKU and cannot be matched", len(result.Unmapped))
	}

	if s.config.DryRun {
		s.describeDryRun(result)
		return nil
	}

	s.applyAdds(result.ToAdd)
	s.applyUpdates(result.ToUpdate, run)
	s.applyDeactivations(result.ToDeactivate)
	return nil
}

// describeDryRun logs what a real pass would do, including a capped
// sample of attribute payloads for inspection.
func (s *Syncer) describeDryRun(result *reconciler.Result) {
	s.logger.Info("Dry run: %d products would be added, %d updated, %d set to zero stock",
		len(result.ToAdd), len(result.ToUpdate), len(result.ToDeactivate))

	for i, item := range result.ToAdd {
		if i == sampleSize {
			break
		}
		fields := metafields.Build(item.FlatProduct)
		keys := make([]string, 0, len(fields))
		for _, f := range fields {
			keys = append(keys, f.Key)
		}
		s.logger.Info("Sample add %d: SKU %s - %s - %d EUR - stock %d - attributes: %s",
			i+1, item.SKU, item.Title, item.Price, item.Stock, strings.Join(keys, ", "))
	}
}

func (s *Syncer) applyAdds(items []reconciler.ProductToAdd) {
	for _, item := range items {
		fields := metafields.Build(item.FlatProduct)
		created, err := s.shopify.CreateProduct(shopify.CreateProductInput{
			Title:       item.Title,
			Description: item.Description,
			Vendor:      s.config.VendorName,
			ProductType: string(item.Category),
			Images:      item.Images,
			Metafields:  fields,
			FingerSize:  item.FingerSize,
		})
		if err != nil {
			s.logger.Error("Failed to create product %s: %v", item.SKU, err)
			continue
		}
		if err := s.shopify.SetVariant(created, item.SKU, item.Price, item.Stock, item.FingerSize); err != nil {
			s.logger.Error("Failed to configure variant for %s: %v", item.SKU, err)
			continue
		}
		s.publisher.Publish(events.TypeProductCreated, item.SKU, map[string]interface{}{
			"product_id": created.ProductID,
			"title":      item.Title,
		})
	}
}

func (s *Syncer) applyUpdates(items []reconciler.ProductToUpdate, run *models.SyncRun) {
	for _, item := range items {
		if item.PriceChanged {
			if err := s.shopify.UpdateVariantPrice(item.ProductID, item.VariantID, item.Price); err != nil {
				s.logger.Error("Failed to update price for %s: %v", item.SKU, err)
			}
		}
		if item.StockChanged {
			if err := s.shopify.AdjustInventory(item.InventoryItemID, item.StockDelta); err != nil {
				s.logger.Error("Failed to adjust stock for %s: %v", item.SKU, err)
			}
		}

		fields := metafields.Build(item.FlatProduct)
		if len(fields) == 0 {
			run.MetafieldsSkipped++
		} else {
			current, err := s.shopify.ProductMetafields(item.ProductID)
			switch {
			case err != nil:
				s.logger.Error("Failed to fetch metafields for %s: %v", item.SKU, err)
			case metafields.Equal(fields, current):
				run.MetafieldsSkipped++
			default:
				if err := s.shopify.UpdateProductMetafields(item.ProductID, fields); err != nil {
					s.logger.Error("Failed to update metafields for %s: %v", item.SKU, err)
				} else {
					run.MetafieldsWritten++
				}
			}
		}

		s.publisher.Publish(events.TypeProductUpdated, item.SKU, map[string]interface{}{
			"product_id":    item.ProductID,
			"price_changed": item.PriceChanged,
			"stock_changed": item.StockChanged,
			"stock_delta":   item.StockDelta,
		})
	}
	if run.MetafieldsWritten > 0 || run.MetafieldsSkipped > 0 {
		s.logger.Info("Metafields: %d updated, %d unchanged", run.MetafieldsWritten, run.MetafieldsSkipped)
	}
}

func (s *Syncer) applyDeactivations(items []reconciler.ProductToDeactivate) {
	for _, item := range items {
		if err := s.shopify.AdjustInventory(item.InventoryItemID, item.StockDelta); err != nil {
			s.logger.Error("Failed to deactivate variant %s: %v", item.VariantID, err)
			continue
		}
		s.publisher.Publish(events.TypeProductDeactivated, item.SKU, map[string]interface{}{
			"product_id":  item.ProductID,
			"variant_id":  item.VariantID,
			"stock_delta": item.StockDelta,
		})
	}
}
