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

const buyerResource = "buyer"

type BuyerService struct {
	base
	repository repository.BuyerRepository
}

func NewBuyerService(repo repository.BuyerRepository, opts Options) *BuyerService {
	return &BuyerService{base: newBase(opts), repository: repo}
}

func (s *BuyerService) Create(ctx context.Context, cmd CreateRecordCommand) (*domain.Buyer, error) {
	var buyer domain.Buyer
	if err := validateNew(cmd.Attributes, domain.BuyerFields, &buyer); err != nil {
		return nil, err
	}

	buyer.ID = newID()
	buyer.CreatedAt = now()
	buyer.UpdatedAt = buyer.CreatedAt

	if err := s.repository.Create(ctx, &buyer); err != nil {
		return nil, fmt.Errorf("save buyer: %w", err)
	}

	s.invalidate(ctx, repository.BuyersCollection)
	s.publish(ctx, events.BuyerCreatedEvent{BuyerID: buyer.ID, Name: buyer.Name, OccurredAt: buyer.CreatedAt})
	s.logger.Info("Buyer created", zap.String("buyer_id", buyer.ID))
	return &buyer, nil
}

func (s *BuyerService) Get(ctx context.Context, id string) (*domain.Buyer, error) {
	if err := parseID(buyerResource, id); err != nil {
		return nil, err
	}
	buyer, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(buyerResource, id, err)
	}
	return buyer, nil
}

func (s *BuyerService) List(ctx context.Context) ([]domain.Buyer, error) {
	var buyers []domain.Buyer
	if s.cached(ctx, cache.BuyerListKey, &buyers) {
		return buyers, nil
	}

	stored, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	buyers = make([]domain.Buyer, len(stored))
	for i, b := range stored {
		buyers[i] = b.Projected()
	}

	s.remember(ctx, cache.BuyerListKey, buyers)
	return buyers, nil
}

// Update merges the patch over the stored buyer. Renaming a buyer keeps its
// invoices, which reference it by id.
func (s *BuyerService) Update(ctx context.Context, cmd UpdateRecordCommand) (*domain.Buyer, error) {
	if err := parseID(buyerResource, cmd.ID); err != nil {
		return nil, err
	}
	patch := domain.Writable(cmd.Patch)
	if len(patch) == 0 {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	current, err := s.repository.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, storeError(buyerResource, cmd.ID, err)
	}

	var buyer domain.Buyer
	if err := domain.Merge(current, patch, &buyer); err != nil {
		return nil, err
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	buyer.UpdatedAt = now()

	if err := s.repository.Update(ctx, &buyer); err != nil {
		return nil, storeError(buyerResource, cmd.ID, err)
	}

	s.invalidate(ctx, repository.BuyersCollection)
	s.publish(ctx, events.BuyerUpdatedEvent{BuyerID: buyer.ID, Name: buyer.Name, OccurredAt: buyer.UpdatedAt})
	return &buyer, nil
}

// Delete removes the buyer only; its invoices are kept.
func (s *BuyerService) Delete(ctx context.Context, cmd DeleteRecordCommand) error {
	if err := parseID(buyerResource, cmd.ID); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, cmd.ID); err != nil {
		return storeError(buyerResource, cmd.ID, err)
	}

	s.invalidate(ctx, repository.BuyersCollection)
	s.publish(ctx, events.BuyerDeletedEvent{BuyerID: cmd.ID, OccurredAt: now()})
	s.logger.Info("Buyer deleted", zap.String("buyer_id", cmd.ID))
	return nil
}
