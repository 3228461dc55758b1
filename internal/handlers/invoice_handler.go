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

// InvoiceService is what the invoice endpoints need from the service layer
type InvoiceService interface {
	Create(ctx context.Context, cmd services.CreateInvoiceCommand) (*domain.Invoice, error)
	Calculate(ctx context.Context, items []domain.Item) (domain.Totals, error)
	Get(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Update(ctx context.Context, cmd services.UpdateRecordCommand) (*domain.Invoice, error)
	Delete(ctx context.Context, cmd services.DeleteRecordCommand) error
}

type InvoiceHandler struct {
	logger  *zap.Logger
	service InvoiceService
}

func NewInvoiceHandler(logger *zap.Logger, service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{logger: logger, service: service}
}

// ListInvoices handles GET /invoices
// @Summary      List invoices
// @Description  Returns every invoice projected to the invoice schema.
// @Tags         invoices
// @Produce      json
// @Success      200  {array}   domain.Invoice
// @Failure      500  {object}  ErrorResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice handles GET /invoices/:id
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID (UUID)"
// @Success      200  {object}  domain.Invoice
// @Failure      400  {object}  ErrorResponse  "Malformed identifier"
// @Failure      404  {object}  ErrorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice handles POST /invoices
// @Summary      Create an invoice with caller totals
// @Description  Stores the invoice as sent. subtotal, cgst, sgst and total_amount are required and not checked.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string          false  "Request ID for idempotent retries"
// @Param        request       body      InvoiceRequest  true   "Invoice"
// @Success      201           {object}  CreatedResponse
// @Failure      400           {object}  ErrorResponse  "Missing fields, bad date or bad buyer_id"
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	h.create(c, false)
}

// ComputeInvoice handles POST /invoices/compute
// @Summary      Create an invoice with computed totals
// @Description  Fills total_qty and amount on every item, then subtotal, 9% CGST, 9% SGST and total_amount.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string          false  "Request ID for idempotent retries"
// @Param        request       body      InvoiceRequest  true   "Invoice"
// @Success      201           {object}  CreatedResponse
// @Failure      400           {object}  ErrorResponse  "Missing fields, empty items or non-numeric quantities"
// @Router       /invoices/compute [post]
func (h *InvoiceHandler) ComputeInvoice(c *gin.Context) {
	h.create(c, true)
}

func (h *InvoiceHandler) create(c *gin.Context, compute bool) {
	attrs, err := bindObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	invoice, err := h.service.Create(c.Request.Context(), services.CreateInvoiceCommand{
		Attributes: attrs,
		Compute:    compute,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{Message: "Invoice saved", ID: invoice.ID})
}

// CalculateInvoice handles POST /invoices/calculate
// @Summary      Preview invoice totals
// @Description  Runs the tax calculator without storing anything.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request  body      CalculateRequest  true  "Items"
// @Success      200      {object}  domain.Totals
// @Failure      400      {object}  ErrorResponse
// @Router       /invoices/calculate [post]
func (h *InvoiceHandler) CalculateInvoice(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	totals, err := h.service.Calculate(c.Request.Context(), req.Items)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// UpdateInvoice handles PUT /invoices/:id
// @Summary      Update an invoice
// @Description  Merges the given attributes over the stored invoice. Totals are stored as sent.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Invoice ID (UUID)"
// @Param        request  body      InvoiceRequest  true  "Attributes to change"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	patch, err := bindObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), services.UpdateRecordCommand{ID: c.Param("id"), Patch: patch}); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Invoice updated successfully"})
}

// DeleteInvoice handles DELETE /invoices/:id
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID (UUID)"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), services.DeleteRecordCommand{ID: c.Param("id")}); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Invoice deleted successfully"})
}

// bindObject reads the request body as a JSON object.
func bindObject(c *gin.Context) (services.Attributes, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return domain.DecodeObject(body)
}
