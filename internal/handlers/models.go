package handlers

import "billing-service/internal/domain"

// ErrorResponse represents an error response
// @Description Error response. Validation errors list every offending field.
type ErrorResponse struct {
	// Error code: ValidationError, InvalidIdentifier, NotFound or InternalError
	Error string `json:"error" example:"ValidationError"`
	// Human-readable message
	Message string `json:"message" example:"missing fields: name, address"`
	// Additional details (identifier, field list)
	Details string `json:"details" example:"Fields: name, address"`
	// Offending fields
	Fields []string `json:"fields,omitempty"`
}

// MessageResponse represents a success response with a message
type MessageResponse struct {
	Message string `json:"message" example:"Buyer updated successfully"`
}

// CreatedResponse is returned by every create endpoint
type CreatedResponse struct {
	Message string `json:"message" example:"Buyer added successfully"`
	// Generated record identifier (UUID)
	ID string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// StockResponse is returned after a stock adjustment
type StockResponse struct {
	Message       string  `json:"message" example:"Stock quantity updated successfully"`
	StockQuantity float64 `json:"stock_quantity" example:"-5"`
}

// StockRequest carries a signed stock delta, as a number or numeric string
type StockRequest struct {
	Quantity domain.Quantity `json:"quantity" swaggertype:"number" example:"-15"`
}

// CalculateRequest carries the invoice lines to total
type CalculateRequest struct {
	Items []domain.Item `json:"items" binding:"required"`
}

// BuyerRequest documents the buyer body; unknown attributes are kept.
type BuyerRequest struct {
	Name    string `json:"name" example:"Acme Traders"`
	Address string `json:"address" example:"12 MG Road, Pune"`
	GSTIN   string `json:"gstin" example:"27AAAAA0000A1Z5"`
}

// ProductRequest documents the product body
type ProductRequest struct {
	Name             string  `json:"name" example:"Basmati Rice"`
	HSNCode          string  `json:"hsn_code" example:"1006"`
	StockQuantity    float64 `json:"stock_quantity" example:"100"`
	DefaultRatePerKg float64 `json:"default_rate_per_kg" example:"85.5"`
}

// ItemRequest documents one invoice line
type ItemRequest struct {
	ProductName string  `json:"product_name" example:"Basmati Rice"`
	HSNCode     string  `json:"hsn_code" example:"1006"`
	PackingQty  float64 `json:"packing_qty" example:"10"`
	Units       float64 `json:"units" example:"2"`
	RatePerKg   float64 `json:"rate_per_kg" example:"5"`
}

// InvoiceRequest documents the invoice body. The compute endpoint ignores
// subtotal, cgst, sgst and total_amount.
type InvoiceRequest struct {
	InvoiceNo   string        `json:"invoice_no" example:"INV-2024-001"`
	Date        string        `json:"date" example:"2024-04-01"`
	BuyerID     string        `json:"buyer_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	BuyerName   string        `json:"buyer_name" example:"Acme Traders"`
	Address     string        `json:"address" example:"12 MG Road, Pune"`
	GSTIN       string        `json:"gstin" example:"27AAAAA0000A1Z5"`
	Items       []ItemRequest `json:"items"`
	Subtotal    float64       `json:"subtotal" example:"100"`
	CGST        float64       `json:"cgst" example:"9"`
	SGST        float64       `json:"sgst" example:"9"`
	TotalAmount float64       `json:"total_amount" example:"118"`
}
