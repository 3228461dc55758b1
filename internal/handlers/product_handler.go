package handlers

import (
	"context"
	"net/http"

	"billing-service/internal/domain"
	"billing-service/internal/services"
	"billing-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductService interface {
	Create(ctx context.Context, cmd services.CreateRecordCommand) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, cmd services.UpdateRecordCommand) (*domain.Product, error)
	AdjustStock(ctx context.Context, cmd services.AdjustStockCommand) (*domain.Product, error)
	Delete(ctx context.Context, cmd services.DeleteRecordCommand) error
}

type ProductHandler struct {
	logger  *zap.Logger
	service ProductService
}

func NewProductHandler(logger *zap.Logger, service ProductService) *ProductHandler {
	return &ProductHandler{logger: logger, service: service}
}

// ListProducts handles GET /products
// @Summary      List products
// @Description  Records written before stock or HSN tracking read back with 0 and "".
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id
// @Summary  Get a product
// @Tags     products
// @Produce  json
// @Param    id   path      string  true  "Product ID (UUID)"
// @Success  200  {object}  domain.Product
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products
// @Summary  Create a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    X-Request-ID  header    string          false  "Request ID for idempotent retries"
// @Param    request       body      ProductRequest  true   "Product"
// @Success  201           {object}  CreatedResponse
// @Failure  400           {object}  ErrorResponse
// @Router   /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	attrs, err := bindObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	product, err := h.service.Create(c.Request.Context(), services.CreateRecordCommand{Attributes: attrs})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Message: "Product added successfully", ID: product.ID})
}

// UpdateProduct handles PUT /products/:id
// @Summary      Update a product
// @Description  Only name, hsn_code, stock_quantity and default_rate_per_kg are changed.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Product ID (UUID)"
// @Param        request  body      ProductRequest  true  "Attributes to change"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	patch, err := bindObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), services.UpdateRecordCommand{ID: c.Param("id"), Patch: patch}); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product updated successfully"})
}

// AdjustStock handles PUT /products/:id/stock
// @Summary      Adjust stock
// @Description  Adds a signed delta to stock_quantity. The result may be negative.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string        true  "Product ID (UUID)"
// @Param        request  body      StockRequest  true  "Signed delta"
// @Success      200      {object}  StockResponse
// @Failure      400      {object}  ErrorResponse  "Missing or non-numeric quantity"
// @Failure      404      {object}  ErrorResponse
// @Router       /products/{id}/stock [put]
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	product, err := h.service.AdjustStock(c.Request.Context(), services.AdjustStockCommand{
		ID:       c.Param("id"),
		Quantity: req.Quantity,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, StockResponse{
		Message:       "Stock quantity updated successfully",
		StockQuantity: product.StockQuantity,
	})
}

// DeleteProduct handles DELETE /products/:id
// @Summary  Delete a product
// @Tags     products
// @Produce  json
// @Param    id   path      string  true  "Product ID (UUID)"
// @Success  200  {object}  MessageResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), services.DeleteRecordCommand{ID: c.Param("id")}); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
