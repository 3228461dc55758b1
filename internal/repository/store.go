package repository

import (
	"context"
	"fmt"

	"billing-service/internal/config"

	"go.uber.org/zap"
)

// Store bundles the typed repositories over one document store
type Store struct {
	Invoices InvoiceRepository
	Buyers   BuyerRepository
	Products ProductRepository

	ping  func(ctx context.Context) error
	close func() error
}

// Open connects the store selected by cfg.StoreDriver
func Open(cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Info("Using in-memory document store")
		return NewMemoryStore(), nil
	case "sqlite", "":
		db, err := NewSQLiteStore(cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using SQLite document store", zap.String("path", cfg.SQLitePath))
		return NewSQLiteBackedStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func NewMemoryStore() *Store {
	return &Store{
		Invoices: NewInvoiceRepository(NewMemoryCollection()),
		Buyers:   NewBuyerRepository(NewMemoryCollection()),
		Products: NewProductRepository(NewMemoryCollection()),
		ping:     func(context.Context) error { return nil },
		close:    func() error { return nil },
	}
}

func NewSQLiteBackedStore(db *SQLiteStore) *Store {
	return &Store{
		Invoices: NewInvoiceRepository(db.Collection(InvoicesCollection)),
		Buyers:   NewBuyerRepository(db.Collection(BuyersCollection)),
		Products: NewProductRepository(db.Collection(ProductsCollection)),
		ping:     db.Ping,
		close:    db.Close,
	}
}

// Ping reports whether the underlying store is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close() error {
	return s.close()
}
