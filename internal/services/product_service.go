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

const productResource = "product"

type ProductService struct {
	base
	repository repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository, opts Options) *ProductService {
	return &ProductService{base: newBase(opts), repository: repo}
}

// Create stores a product. Stock and rate default to 0 and hsn_code to "".
func (s *ProductService) Create(ctx context.Context, cmd CreateRecordCommand) (*domain.Product, error) {
	var product domain.Product
	if err := validateNew(cmd.Attributes, domain.ProductFields, &product); err != nil {
		return nil, err
	}

	product.ID = newID()
	product.CreatedAt = now()
	product.UpdatedAt = product.CreatedAt

	if err := s.repository.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.invalidate(ctx, repository.ProductsCollection)
	s.publish(ctx, events.ProductCreatedEvent{
		ProductID:     product.ID,
		Name:          product.Name,
		StockQuantity: product.StockQuantity,
		OccurredAt:    product.CreatedAt,
	})
	s.logger.Info("Product created", zap.String("product_id", product.ID))
	return &product, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if err := parseID(productResource, id); err != nil {
		return nil, err
	}
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(productResource, id, err)
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if s.cached(ctx, cache.ProductListKey, &products) {
		return products, nil
	}

	stored, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products = make([]domain.Product, len(stored))
	for i, p := range stored {
		products[i] = p.Projected()
	}

	s.remember(ctx, cache.ProductListKey, products)
	return products, nil
}

// Update changes only the product schema attributes; anything else in the
// patch is ignored.
func (s *ProductService) Update(ctx context.Context, cmd UpdateRecordCommand) (*domain.Product, error) {
	if err := parseID(productResource, cmd.ID); err != nil {
		return nil, err
	}
	patch := domain.Only(cmd.Patch, domain.ProductPatchFields...)
	if len(patch) == 0 {
		return nil, apperrors.NewValidationError("no valid fields to update")
	}

	current, err := s.repository.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, storeError(productResource, cmd.ID, err)
	}

	var product domain.Product
	if err := domain.Merge(current, patch, &product); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	product.UpdatedAt = now()

	if err := s.repository.Update(ctx, &product); err != nil {
		return nil, storeError(productResource, cmd.ID, err)
	}

	s.invalidate(ctx, repository.ProductsCollection)
	s.publish(ctx, events.ProductUpdatedEvent{
		ProductID:     product.ID,
		Name:          product.Name,
		StockQuantity: product.StockQuantity,
		OccurredAt:    product.UpdatedAt,
	})
	return &product, nil
}

// AdjustStock adds a signed delta to the stored stock and returns the product.
// The result may be negative.
func (s *ProductService) AdjustStock(ctx context.Context, cmd AdjustStockCommand) (*domain.Product, error) {
	if err := parseID(productResource, cmd.ID); err != nil {
		return nil, err
	}
	if !cmd.Quantity.IsSet() {
		return nil, apperrors.NewMissingFields("quantity")
	}
	delta, ok := cmd.Quantity.Float()
	if !ok {
		return nil, apperrors.NewValidationError("invalid quantity format", "quantity")
	}

	product, err := s.repository.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, storeError(productResource, cmd.ID, err)
	}

	product.AdjustStock(delta)
	if err := s.repository.Update(ctx, product); err != nil {
		return nil, storeError(productResource, cmd.ID, err)
	}

	s.invalidate(ctx, repository.ProductsCollection)
	s.publish(ctx, events.StockAdjustedEvent{
		ProductID:  product.ID,
		Delta:      delta,
		NewStock:   product.StockQuantity,
		OccurredAt: product.UpdatedAt,
	})
	s.logger.Info("Stock adjusted",
		zap.String("product_id", product.ID),
		zap.Float64("delta", delta),
		zap.Float64("stock_quantity", product.StockQuantity),
	)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, cmd DeleteRecordCommand) error {
	if err := parseID(productResource, cmd.ID); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, cmd.ID); err != nil {
		return storeError(productResource, cmd.ID, err)
	}

	s.invalidate(ctx, repository.ProductsCollection)
	s.publish(ctx, events.ProductDeletedEvent{ProductID: cmd.ID, OccurredAt: now()})
	s.logger.Info("Product deleted", zap.String("product_id", cmd.ID))
	return nil
}
