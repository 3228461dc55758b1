package services

import (
	"context"
	"fmt"

	"billing-service/internal/cache"
	"billing-service/internal/domain"
	"billing-service/internal/events"
	"billing-service/internal/repository"
	apperrors "billing-service/pkg/errors"

	"go.uber.org/zap"
)

const invoiceResource = "invoice"

type InvoiceService struct {
	base
	repository repository.InvoiceRepository
}

func NewInvoiceService(repo repository.InvoiceRepository, opts Options) *InvoiceService {
	return &InvoiceService{base: newBase(opts), repository: repo}
}

// Create stores a new invoice, either as sent or with computed totals.
func (s *InvoiceService) Create(ctx context.Context, cmd CreateInvoiceCommand) (*domain.Invoice, error) {
	required := domain.PassthroughInvoiceFields
	if cmd.Compute {
		required = domain.ComputedInvoiceFields
	}
	var invoice domain.Invoice
	if err := validateNew(cmd.Attributes, required, &invoice); err != nil {
		return nil, err
	}

	if cmd.Compute {
		totals, err := domain.CalculateTotals(invoice.Items)
		if err != nil {
			return nil, err
		}
		invoice.ApplyTotals(totals)
	}

	invoice.ID = newID()
	invoice.CreatedAt = now()
	invoice.UpdatedAt = invoice.CreatedAt
	s.checkGSTIN(&invoice)

	if err := s.repository.Create(ctx, &invoice); err != nil {
		return nil, fmt.Errorf("save invoice: %w", err)
	}

	s.invalidate(ctx, repository.InvoicesCollection)
	s.publish(ctx, events.InvoiceCreatedEvent{
		InvoiceID:   invoice.ID,
		InvoiceNo:   invoice.InvoiceNo,
		BuyerID:     invoice.BuyerID,
		BuyerName:   invoice.BuyerName,
		TotalAmount: invoice.TotalAmount,
		OccurredAt:  invoice.CreatedAt,
	})

	s.logger.Info("Invoice created",
		zap.String("invoice_id", invoice.ID),
		zap.String("invoice_no", invoice.InvoiceNo),
		zap.Bool("computed", cmd.Compute),
	)
	return &invoice, nil
}

// Calculate previews the totals for items without storing anything.
func (s *InvoiceService) Calculate(ctx context.Context, items []domain.Item) (domain.Totals, error) {
	return domain.CalculateTotals(items)
}

func (s *InvoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	if err := parseID(invoiceResource, id); err != nil {
		return nil, err
	}
	invoice, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(invoiceResource, id, err)
	}
	return invoice, nil
}

// List returns every invoice projected to the invoice schema.
func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if s.cached(ctx, cache.InvoiceListKey, &invoices) {
		return invoices, nil
	}

	stored, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	invoices = make([]domain.Invoice, len(stored))
	for i, inv := range stored {
		invoices[i] = inv.Projected()
	}

	s.remember(ctx, cache.InvoiceListKey, invoices)
	return invoices, nil
}

// Update merges the patch over the stored invoice. Totals are stored as sent.
func (s *InvoiceService) Update(ctx context.Context, cmd UpdateRecordCommand) (*domain.Invoice, error) {
	if err := parseID(invoiceResource, cmd.ID); err != nil {
		return nil, err
	}
	patch := domain.Writable(cmd.Patch)
	if len(patch) == 0 {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	current, err := s.repository.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, storeError(invoiceResource, cmd.ID, err)
	}

	var invoice domain.Invoice
	if err := domain.Merge(current, patch, &invoice); err != nil {
		return nil, err
	}
	if err := invoice.Validate(); err != nil {
		return nil, err
	}
	invoice.UpdatedAt = now()
	s.checkGSTIN(&invoice)

	if err := s.repository.Update(ctx, &invoice); err != nil {
		return nil, storeError(invoiceResource, cmd.ID, err)
	}

	s.invalidate(ctx, repository.InvoicesCollection)
	s.publish(ctx, events.InvoiceUpdatedEvent{
		InvoiceID:   invoice.ID,
		InvoiceNo:   invoice.InvoiceNo,
		TotalAmount: invoice.TotalAmount,
		OccurredAt:  invoice.UpdatedAt,
	})
	return &invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, cmd DeleteRecordCommand) error {
	if err := parseID(invoiceResource, cmd.ID); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, cmd.ID); err != nil {
		return storeError(invoiceResource, cmd.ID, err)
	}

	s.invalidate(ctx, repository.InvoicesCollection)
	s.publish(ctx, events.InvoiceDeletedEvent{InvoiceID: cmd.ID, OccurredAt: now()})
	s.logger.Info("Invoice deleted", zap.String("invoice_id", cmd.ID))
	return nil
}

func (s *InvoiceService) checkGSTIN(invoice *domain.Invoice) {
	if !invoice.HasValidGSTIN() {
		s.logger.Warn("GSTIN has unexpected length",
			zap.String("invoice_no", invoice.InvoiceNo),
			zap.Int("length", len(invoice.GSTIN)),
			zap.Int("expected", domain.GSTINLength),
		)
	}
}
