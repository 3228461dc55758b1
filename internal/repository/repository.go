package repository

import (
	"context"
	"errors"

	"billing-service/internal/domain"
)

// Collection names in the document store.
const (
	InvoicesCollection = "invoices"
	BuyersCollection   = "buyers"
	ProductsCollection = "products"
)

var ErrNotFound = errors.New("document not found")

// Collection is a flat mapping from identifier to a JSON document. Each call
// is atomic for the one document it touches; nothing spans documents.
type Collection interface {
	Insert(ctx context.Context, id string, doc []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
	// List returns every document in insertion order.
	List(ctx context.Context) ([][]byte, error)
	// Find returns the documents matching filter in insertion order.
	Find(ctx context.Context, filter Filter) ([][]byte, error)
	// Replace overwrites an existing document; ErrNotFound if id is unknown.
	Replace(ctx context.Context, id string, doc []byte) error
	// Delete removes a document; ErrNotFound if nothing was removed.
	Delete(ctx context.Context, id string) error
}

// Filter selects documents by top-level string attributes. A document matches
// when it satisfies any Match clause (all attributes of that clause equal,
// absent or null reading as "") and lies within Range. A Filter without Match
// clauses matches every document.
type Filter struct {
	Match []map[string]string
	Range *Range
}

// Range bounds one attribute by string comparison, inclusive. Nil bounds are open.
type Range struct {
	Attribute string
	From      *string
	To        *string
}

func (r *Range) contains(value string) bool {
	if r == nil {
		return true
	}
	if r.From != nil && value < *r.From {
		return false
	}
	if r.To != nil && value > *r.To {
		return false
	}
	return true
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id string) error
	// FindForStatement returns the buyer's invoices dated within filter.
	FindForStatement(ctx context.Context, buyer domain.Buyer, filter domain.StatementFilter) ([]domain.Invoice, error)
}

// BuyerRepository defines the interface for buyer persistence
type BuyerRepository interface {
	Create(ctx context.Context, buyer *domain.Buyer) error
	FindByID(ctx context.Context, id string) (*domain.Buyer, error)
	List(ctx context.Context) ([]domain.Buyer, error)
	Update(ctx context.Context, buyer *domain.Buyer) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}
