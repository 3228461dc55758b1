package services

import (
	"context"
	"fmt"

	"billing-service/internal/cache"
	"billing-service/internal/domain"
	"billing-service/internal/repository"

	"go.uber.org/zap"
)

// StatementService aggregates a buyer's invoices.
type StatementService struct {
	base
	buyers   repository.BuyerRepository
	invoices repository.InvoiceRepository
}

func NewStatementService(buyers repository.BuyerRepository, invoices repository.InvoiceRepository, opts Options) *StatementService {
	return &StatementService{base: newBase(opts), buyers: buyers, invoices: invoices}
}

// Statement resolves the buyer, then sums the invoices dated within the
// query's bounds. A buyer without invoices gets a zero statement.
func (s *StatementService) Statement(ctx context.Context, q StatementQuery) (*domain.Statement, error) {
	if err := parseID(buyerResource, q.BuyerID); err != nil {
		return nil, err
	}
	buyer, err := s.buyers.FindByID(ctx, q.BuyerID)
	if err != nil {
		return nil, storeError(buyerResource, q.BuyerID, err)
	}
	filter, err := domain.NewStatementFilter(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}

	key := cache.StatementKey(buyer.ID, filter)
	var st domain.Statement
	if s.cached(ctx, key, &st) {
		return &st, nil
	}

	invoices, err := s.invoices.FindForStatement(ctx, *buyer, filter)
	if err != nil {
		return nil, fmt.Errorf("find invoices for buyer %s: %w", buyer.ID, err)
	}
	st = domain.BuildStatement(*buyer, invoices, filter)

	s.logger.Debug("Statement built",
		zap.String("buyer_id", buyer.ID),
		zap.Int("invoice_count", st.InvoiceCount),
	)
	s.remember(ctx, key, st)
	return &st, nil
}
