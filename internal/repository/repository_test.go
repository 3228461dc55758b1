package repository

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"billing-service/internal/config"
	"billing-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func stores(t *testing.T) map[string]*Store {
	t.Helper()

	db, err := NewSQLiteStore(filepath.Join(t.TempDir(), "billing.db"), zap.NewNop())
	require.NoError(t, err)
	sqlite := NewSQLiteBackedStore(db)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]*Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func strPtr(s string) *string { return &s }

func TestStore_BuyerLifecycle(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			buyer := &domain.Buyer{ID: "b-1", Name: "Acme", Address: "Pune"}

			require.NoError(t, store.Buyers.Create(ctx, buyer))

			found, err := store.Buyers.FindByID(ctx, "b-1")
			require.NoError(t, err)
			assert.Equal(t, "Acme", found.Name)

			found.Address = "Mumbai"
			require.NoError(t, store.Buyers.Update(ctx, found))

			found, err = store.Buyers.FindByID(ctx, "b-1")
			require.NoError(t, err)
			assert.Equal(t, "Mumbai", found.Address)

			require.NoError(t, store.Buyers.Delete(ctx, "b-1"))
			_, err = store.Buyers.FindByID(ctx, "b-1")
			assert.True(t, errors.Is(err, ErrNotFound))
			assert.True(t, errors.Is(store.Buyers.Delete(ctx, "b-1"), ErrNotFound))
		})
	}
}

func TestStore_UpdateUnknownIsNotFound(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Products.Update(context.Background(), &domain.Product{ID: "missing", Name: "Rice"})
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, id := range []string{"p-3", "p-1", "p-2"} {
				require.NoError(t, store.Products.Create(ctx, &domain.Product{ID: id, Name: id}))
			}

			products, err := store.Products.List(ctx)

			require.NoError(t, err)
			require.Len(t, products, 3)
			assert.Equal(t, "p-3", products[0].ID)
			assert.Equal(t, "p-1", products[1].ID)
			assert.Equal(t, "p-2", products[2].ID)
		})
	}
}

func TestStore_CollectionsAreSeparate(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Buyers.Create(ctx, &domain.Buyer{ID: "x", Name: "Acme", Address: "Pune"}))

			_, err := store.Products.FindByID(ctx, "x")
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestInvoiceRepository_FindForStatement(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			buyer := domain.Buyer{ID: "b-1", Name: "Acme"}
			invoices := []*domain.Invoice{
				{ID: "i-1", InvoiceNo: "1", Date: "2024-03-31", BuyerID: "b-1", BuyerName: "Acme"},
				{ID: "i-2", InvoiceNo: "2", Date: "2024-04-01", BuyerID: "b-1", BuyerName: "Acme Renamed"},
				{ID: "i-3", InvoiceNo: "3", Date: "2024-04-15", BuyerName: "Acme"},
				{ID: "i-4", InvoiceNo: "4", Date: "2024-04-20", BuyerID: "b-2", BuyerName: "Acme"},
				{ID: "i-5", InvoiceNo: "5", Date: "2024-04-30", BuyerName: "Other"},
			}
			for _, inv := range invoices {
				require.NoError(t, store.Invoices.Create(ctx, inv))
			}

			all, err := store.Invoices.FindForStatement(ctx, buyer, domain.StatementFilter{})
			require.NoError(t, err)
			assert.Equal(t, []string{"i-1", "i-2", "i-3"}, ids(all))

			april, err := store.Invoices.FindForStatement(ctx, buyer, domain.StatementFilter{
				StartDate: strPtr("2024-04-01"),
				EndDate:   strPtr("2024-04-15"),
			})
			require.NoError(t, err)
			assert.Equal(t, []string{"i-2", "i-3"}, ids(april))
		})
	}
}

func ids(invoices []domain.Invoice) []string {
	out := make([]string, len(invoices))
	for i, inv := range invoices {
		out[i] = inv.ID
	}
	return out
}

func TestStore_KeepsExtras(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			buyer := &domain.Buyer{ID: "b-1", Name: "Acme", Address: "Pune",
				Extras: domain.Extras{"phone": []byte(`"12345"`)}}
			require.NoError(t, store.Buyers.Create(ctx, buyer))

			found, err := store.Buyers.FindByID(ctx, "b-1")

			require.NoError(t, err)
			assert.JSONEq(t, `"12345"`, string(found.Extras["phone"]))
		})
	}
}

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS documents")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := NewSQLiteStoreFromDB(db, zap.NewNop())
	require.NoError(t, err)
	return store, mock
}

func TestSQLiteCollection_GetQueryFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT data FROM documents")).
		WithArgs(InvoicesCollection, "i-1").
		WillReturnError(errors.New("disk I/O error"))

	_, err := store.Collection(InvoicesCollection).Get(context.Background(), "i-1")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCollection_ReplaceNoRowsIsNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE documents SET data")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Collection(BuyersCollection).Replace(context.Background(), "b-1", []byte(`{}`))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCollection_FindUsesJSONFilter(t *testing.T) {
	store, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"data"}).AddRow(`{"id":"i-1"}`)
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(json_extract(data, ?), '') = ?")).
		WithArgs(InvoicesCollection, "$.buyer_id", "b-1", "$.date", "2024-04-01").
		WillReturnRows(rows)

	docs, err := store.Collection(InvoicesCollection).Find(context.Background(), Filter{
		Match: []map[string]string{{"buyer_id": "b-1"}},
		Range: &Range{Attribute: "date", From: strPtr("2024-04-01")},
	})

	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{StoreDriver: "mongo"}, zap.NewNop())
	assert.Error(t, err)
}
