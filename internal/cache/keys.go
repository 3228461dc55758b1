package cache

import (
	"context"
	"fmt"

	"billing-service/internal/domain"

	"go.uber.org/zap"
)

// Cache keys for read views.
const (
	InvoiceListKey    = "invoices:list"
	BuyerListKey      = "buyers:list"
	ProductListKey    = "products:list"
	StatementsPattern = "statements:*"
)

// StatementKey identifies a cached statement for one buyer and date window.
func StatementKey(buyerID string, filter domain.StatementFilter) string {
	return fmt.Sprintf("statements:%s:%s:%s", buyerID, deref(filter.StartDate), deref(filter.EndDate))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// InvalidateCollection drops the views that depend on a collection. Statements
// read invoices and buyers, so writes to either drop every statement.
func InvalidateCollection(ctx context.Context, c Cache, collection string, logger *zap.Logger) {
	if c == nil {
		return
	}

	var keys, patterns []string
	switch collection {
	case "invoices":
		keys, patterns = []string{InvoiceListKey}, []string{StatementsPattern}
	case "buyers":
		keys, patterns = []string{BuyerListKey}, []string{StatementsPattern}
	case "products":
		keys = []string{ProductListKey}
	default:
		logger.Warn("No cached views for collection", zap.String("collection", collection))
		return
	}

	for _, key := range keys {
		if err := c.Delete(ctx, key); err != nil {
			logger.Warn("Failed to delete cache key", zap.String("key", key), zap.Error(err))
		}
	}
	for _, pattern := range patterns {
		if err := c.DeleteByPattern(ctx, pattern); err != nil {
			logger.Warn("Failed to delete cache by pattern", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}
