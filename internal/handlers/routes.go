package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "billing-service"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups every endpoint handler of the API.
type Handlers struct {
	Invoices   *InvoiceHandler
	Buyers     *BuyerHandler
	Products   *ProductHandler
	Statements *StatementHandler
	Health     *HealthHandler
}

// RegisterRoutes mounts the billing API on router.
func RegisterRoutes(router gin.IRouter, h Handlers) {
	router.GET("/", root)
	router.GET("/health", h.Health.Health)

	invoices := router.Group("/invoices")
	{
		invoices.GET("", h.Invoices.ListInvoices)
		invoices.POST("", h.Invoices.CreateInvoice)
		invoices.POST("/compute", h.Invoices.ComputeInvoice)
		invoices.POST("/calculate", h.Invoices.CalculateInvoice)
		invoices.GET("/:id", h.Invoices.GetInvoice)
		invoices.PUT("/:id", h.Invoices.UpdateInvoice)
		invoices.DELETE("/:id", h.Invoices.DeleteInvoice)
	}

	buyers := router.Group("/buyers")
	{
		buyers.GET("", h.Buyers.ListBuyers)
		buyers.POST("", h.Buyers.CreateBuyer)
		buyers.GET("/:id", h.Buyers.GetBuyer)
		buyers.PUT("/:id", h.Buyers.UpdateBuyer)
		buyers.DELETE("/:id", h.Buyers.DeleteBuyer)
	}

	products := router.Group("/products")
	{
		products.GET("", h.Products.ListProducts)
		products.POST("", h.Products.CreateProduct)
		products.GET("/:id", h.Products.GetProduct)
		products.PUT("/:id", h.Products.UpdateProduct)
		products.PUT("/:id/stock", h.Products.AdjustStock)
		products.DELETE("/:id", h.Products.DeleteProduct)
	}

	router.GET("/statements/:buyer_id", h.Statements.GetStatement)
}

// root godoc
// @Summary  Liveness banner
// @Tags     health
// @Produce  json
// @Success  200  {object}  MessageResponse
// @Router   / [get]
func root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Billing backend is live!"})
}

type HealthHandler struct {
	logger *zap.Logger
	store  Pinger
}

func NewHealthHandler(logger *zap.Logger, store Pinger) *HealthHandler {
	return &HealthHandler{logger: logger, store: store}
}

// Health godoc
// @Summary      Health check endpoint
// @Description  Reports the service status and whether the store answers.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service is up"
// @Failure      503  {object}  map[string]string  "Store unreachable"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			h.logger.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"service": serviceName,
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}
