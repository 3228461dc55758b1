package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"billing-service/internal/domain"
)

// documents maps a Collection to values of T through JSON.
type documents[T any] struct {
	name string
	col  Collection
}

func (d documents[T]) create(ctx context.Context, id string, v *T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", d.name, err)
	}
	return d.col.Insert(ctx, id, doc)
}

func (d documents[T]) get(ctx context.Context, id string) (*T, error) {
	doc, err := d.col.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("decode %s document %s: %w", d.name, id, err)
	}
	return &v, nil
}

func (d documents[T]) list(ctx context.Context) ([]T, error) {
	docs, err := d.col.List(ctx)
	if err != nil {
		return nil, err
	}
	return d.decodeAll(docs)
}

func (d documents[T]) find(ctx context.Context, filter Filter) ([]T, error) {
	docs, err := d.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return d.decodeAll(docs)
}

func (d documents[T]) decodeAll(docs [][]byte) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", d.name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (d documents[T]) replace(ctx context.Context, id string, v *T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", d.name, err)
	}
	return d.col.Replace(ctx, id, doc)
}

func (d documents[T]) delete(ctx context.Context, id string) error {
	return d.col.Delete(ctx, id)
}

type invoiceRepository struct {
	docs documents[domain.Invoice]
}

func NewInvoiceRepository(col Collection) InvoiceRepository {
	return &invoiceRepository{docs: documents[domain.Invoice]{name: InvoicesCollection, col: col}}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	return r.docs.create(ctx, invoice.ID, invoice)
}

func (r *invoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	return r.docs.get(ctx, id)
}

func (r *invoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	return r.docs.list(ctx)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	return r.docs.replace(ctx, invoice.ID, invoice)
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

// FindForStatement matches invoices that reference the buyer by id, plus
// invoices written before buyer ids were recorded that carry the buyer's name.
func (r *invoiceRepository) FindForStatement(ctx context.Context, buyer domain.Buyer, filter domain.StatementFilter) ([]domain.Invoice, error) {
	f := Filter{
		Match: []map[string]string{
			{"buyer_id": buyer.ID},
			{"buyer_id": "", "buyer_name": buyer.Name},
		},
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		f.Range = &Range{Attribute: "date", From: filter.StartDate, To: filter.EndDate}
	}
	return r.docs.find(ctx, f)
}

type buyerRepository struct {
	docs documents[domain.Buyer]
}

func NewBuyerRepository(col Collection) BuyerRepository {
	return &buyerRepository{docs: documents[domain.Buyer]{name: BuyersCollection, col: col}}
}

func (r *buyerRepository) Create(ctx context.Context, buyer *domain.Buyer) error {
	return r.docs.create(ctx, buyer.ID, buyer)
}

func (r *buyerRepository) FindByID(ctx context.Context, id string) (*domain.Buyer, error) {
	return r.docs.get(ctx, id)
}

func (r *buyerRepository) List(ctx context.Context) ([]domain.Buyer, error) {
	return r.docs.list(ctx)
}

func (r *buyerRepository) Update(ctx context.Context, buyer *domain.Buyer) error {
	return r.docs.replace(ctx, buyer.ID, buyer)
}

func (r *buyerRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

type productRepository struct {
	docs documents[domain.Product]
}

func NewProductRepository(col Collection) ProductRepository {
	return &productRepository{docs: documents[domain.Product]{name: ProductsCollection, col: col}}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.docs.create(ctx, product.ID, product)
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.docs.get(ctx, id)
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.docs.list(ctx)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.docs.replace(ctx, product.ID, product)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}
