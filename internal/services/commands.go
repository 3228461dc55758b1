package services

import (
	"encoding/json"

	"billing-service/internal/domain"
)

// Attributes is a decoded JSON request body.
type Attributes = map[string]json.RawMessage

// CreateInvoiceCommand represents a command to store a new invoice
type CreateInvoiceCommand struct {
	Attributes Attributes
	// Compute fills item and invoice totals with the calculator; otherwise
	// the caller's totals are stored as sent.
	Compute bool
}

// CreateRecordCommand represents a command to store a new buyer or product
type CreateRecordCommand struct {
	Attributes Attributes
}

// UpdateRecordCommand represents a command to merge a patch over a record
type UpdateRecordCommand struct {
	ID    string
	Patch Attributes
}

// AdjustStockCommand represents a command to add a signed delta to stock
type AdjustStockCommand struct {
	ID       string
	Quantity domain.Quantity
}

// DeleteRecordCommand represents a command to delete a record
type DeleteRecordCommand struct {
	ID string
}

// StatementQuery selects a buyer's invoices. Empty dates are open bounds.
type StatementQuery struct {
	BuyerID   string
	StartDate string
	EndDate   string
}
