package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"billing-service/internal/cache"
	"billing-service/internal/events"
	"billing-service/internal/repository"
	"billing-service/internal/services"
	"billing-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testApp struct {
	router *gin.Engine
	events *events.InMemoryEventPublisher
}

// newTestApp wires the real services over the in-memory store with the
// production middleware chain.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	store := repository.NewMemoryStore()
	publisher := events.NewEventPublisher(logger)
	readCache := cache.NewInMemoryCache(logger)
	opts := services.Options{Logger: logger, Events: publisher, Cache: readCache, CacheTTL: time.Minute}
	requestIDs := cache.NewRequestIDStore(cache.NewInMemoryCache(logger))

	router := gin.New()
	router.Use(middleware.RecoveryHandler(logger))
	router.Use(middleware.RequestIDMiddleware(logger))
	router.Use(middleware.IdempotencyMiddleware(requestIDs, logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.StoreResponseMiddleware(requestIDs, logger, time.Minute))

	RegisterRoutes(router, Handlers{
		Invoices:   NewInvoiceHandler(logger, services.NewInvoiceService(store.Invoices, opts)),
		Buyers:     NewBuyerHandler(logger, services.NewBuyerService(store.Buyers, opts)),
		Products:   NewProductHandler(logger, services.NewProductService(store.Products, opts)),
		Statements: NewStatementHandler(logger, services.NewStatementService(store.Buyers, store.Invoices, opts)),
		Health:     NewHealthHandler(logger, store),
	})

	return &testApp{router: router, events: publisher}
}

func (a *testApp) create(t *testing.T, path, body string) string {
	t.Helper()
	w := doRequest(a.router, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestIntegration_BuyerStatementFlow(t *testing.T) {
	app := newTestApp(t)

	buyer := app.create(t, "/buyers", `{"name":"Acme","address":"Pune","gstin":"27AAAAA0000A1Z5"}`)

	invoice := func(no, date string) string {
		return fmt.Sprintf(`{"invoice_no":%q,"date":%q,"buyer_id":%q,"buyer_name":"Acme","address":"Pune",
			"items":[{"product_name":"Rice","packing_qty":10,"units":2,"rate_per_kg":5}]}`, no, date, buyer)
	}
	app.create(t, "/invoices/compute", invoice("INV-1", "2024-03-31"))
	app.create(t, "/invoices/compute", invoice("INV-2", "2024-04-01"))
	app.create(t, "/invoices/compute", invoice("INV-3", "2024-04-30"))

	w := doRequest(app.router, http.MethodGet,
		"/statements/"+buyer+"?start_date=2024-04-01&end_date=2024-04-30", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	response := decodeBody(t, w)
	assert.Equal(t, "Acme", response["buyer"])
	assert.Equal(t, 2.0, response["invoice_count"])
	assert.Equal(t, 40.0, response["total_qty"])
	assert.Equal(t, 236.0, response["total_amount"])

	w = doRequest(app.router, http.MethodGet, "/statements/"+buyer+"?start_date=04/01/2024", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(app.router, http.MethodGet, "/statements/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidIdentifier", decodeBody(t, w)["error"])

	assert.Len(t, app.events.Events(), 4)
}

func TestIntegration_InvoiceExtrasOnlyOnReadOne(t *testing.T) {
	app := newTestApp(t)

	id := app.create(t, "/invoices", `{"invoice_no":"INV-9","date":"2024-05-02","buyer_name":"Acme",
		"address":"Pune","items":[],"subtotal":10,"cgst":0.9,"sgst":0.9,"total_amount":11.8,"note":"urgent"}`)

	w := doRequest(app.router, http.MethodGet, "/invoices/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "urgent", decodeBody(t, w)["note"])

	w = doRequest(app.router, http.MethodGet, "/invoices", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "urgent")
	assert.Contains(t, w.Body.String(), "INV-9")
}

func TestIntegration_ProductStockAndNotFound(t *testing.T) {
	app := newTestApp(t)

	id := app.create(t, "/products", `{"name":"Rice","stock_quantity":10}`)

	w := doRequest(app.router, http.MethodPut, "/products/"+id+"/stock", `{"quantity":-15}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, -5.0, decodeBody(t, w)["stock_quantity"])

	w = doRequest(app.router, http.MethodPut, "/products/"+id+"/stock", `{"quantity":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(app.router, http.MethodGet, "/products/"+strings.ReplaceAll(id, "-", ""), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidIdentifier", decodeBody(t, w)["error"])

	w = doRequest(app.router, http.MethodDelete, "/products/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(app.router, http.MethodDelete, "/products/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_IdempotentCreate(t *testing.T) {
	app := newTestApp(t)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/buyers", strings.NewReader(`{"name":"Acme","address":"Pune"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.RequestIDHeader, "retry-1")
		w := httptest.NewRecorder()
		app.router.ServeHTTP(w, req)
		return w
	}

	first := send()
	second := send()

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.ReplayHeader))
	assert.Equal(t, decodeBody(t, first)["id"], decodeBody(t, second)["id"])

	w := doRequest(app.router, http.MethodGet, "/buyers", "")
	var buyers []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &buyers))
	assert.Len(t, buyers, 1)
}
