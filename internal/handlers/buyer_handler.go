package handlers

import (
	"context"
	"net/http"

	"billing-service/internal/domain"
	"billing-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BuyerService interface {
	Create(ctx context.Context, cmd services.CreateRecordCommand) (*domain.Buyer, error)
	Get(ctx context.Context, id string) (*domain.Buyer, error)
	List(ctx context.Context) ([]domain.Buyer, error)
	Update(ctx context.Context, cmd services.UpdateRecordCommand) (*domain.Buyer, error)
	Delete(ctx context.Context, cmd services.DeleteRecordCommand) error
}

type BuyerHandler struct {
	logger  *zap.Logger
	service BuyerService
}

func NewBuyerHandler(logger *zap.Logger, service BuyerService) *BuyerHandler {
	return &BuyerHandler{logger: logger, service: service}
}

// ListBuyers handles GET /buyers
// @Summary  List buyers
// @Tags     buyers
// @Produce  json
// @Success  200  {array}  domain.Buyer
// @Router   /buyers [get]
func (h *BuyerHandler) ListBuyers(c *gin.Context) {
	buyers, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, buyers)
}

// GetBuyer handles GET /buyers/:id
// @Summary  Get a buyer
// @Tags     buyers
// @Produce  json
// @Param    id   path      string  true  "Buyer ID (UUID)"
// @Success  200  {object}  domain.Buyer
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /buyers/{id} [get]
func (h *BuyerHandler) GetBuyer(c *gin.Context) {
	buyer, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, buyer)
}

// CreateBuyer handles POST /buyers
// @Summary  Create a buyer
// @Tags     buyers
// @Accept   json
// @Produce  json
// @Param    X-Request-ID  header    string        false  "Request ID for idempotent retries"
// @Param    request       body      BuyerRequest  true   "Buyer"
// @Success  201           {object}  CreatedResponse
// @Failure  400           {object}  ErrorResponse  "name and address are required"
// @Router   /buyers [post]
func (h *BuyerHandler) CreateBuyer(c *gin.Context) {
	attrs, err := bindObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	buyer, err := h.service.Create(c.Request.Context(), services.CreateRecordCommand{Attributes: attrs})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Message: "Buyer added successfully", ID: buyer.ID})
}

// UpdateBuyer handles PUT /buyers/:id
// @Summary  Update a buyer
// @Tags     buyers
// @Accept   json
// @Produce  json
// @Param    id       path      string        true  "Buyer ID (UUID)"
// @Param    request  body      BuyerRequest  true  "Attributes to change"
// @Success  200      {object}  MessageResponse
// @Failure  400      {object}  ErrorResponse
// @Failure  404      {object}  ErrorResponse
// @Router   /buyers/{id} [put]
func (h *BuyerHandler) UpdateBuyer(c *gin.Context) {
	patch, err := bindObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), services.UpdateRecordCommand{ID: c.Param("id"), Patch: patch}); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Buyer updated successfully"})
}

// DeleteBuyer handles DELETE /buyers/:id
// @Summary  Delete a buyer
// @Tags     buyers
// @Produce  json
// @Param    id   path      string  true  "Buyer ID (UUID)"
// @Success  200  {object}  MessageResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /buyers/{id} [delete]
func (h *BuyerHandler) DeleteBuyer(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), services.DeleteRecordCommand{ID: c.Param("id")}); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Buyer deleted successfully"})
}
