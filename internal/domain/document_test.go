package domain

import (
	"encoding/json"
	"errors"
	"testing"

	apperrors "billing-service/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice_KeepsUnknownAttributes(t *testing.T) {
	body := `{"invoice_no":"INV-1","date":"2024-04-01","buyer_name":"Acme","address":"Pune",
		"items":[],"subtotal":0,"cgst":0,"sgst":0,"total_amount":0,"status":"paid","_id":"legacy"}`

	var inv Invoice
	require.NoError(t, json.Unmarshal([]byte(body), &inv))

	assert.Equal(t, "INV-1", inv.InvoiceNo)
	assert.Equal(t, Extras{"status": json.RawMessage(`"paid"`)}, inv.Extras)

	out, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":"paid"`)
	assert.NotContains(t, string(out), `"_id"`)

	projected, err := json.Marshal(inv.Projected())
	require.NoError(t, err)
	assert.NotContains(t, string(projected), `"status"`)
}

func TestMissingFields_AbsentAndNull(t *testing.T) {
	attrs, err := DecodeObject([]byte(`{"name":"Acme","address":null,"gstin":""}`))
	require.NoError(t, err)

	missing := MissingFields(attrs, "name", "address", "phone")

	assert.Equal(t, []string{"address", "phone"}, missing)
}

func TestDecodeObject_RejectsNonObject(t *testing.T) {
	for _, body := range []string{`[]`, `"x"`, `null`, `{`} {
		_, err := DecodeObject([]byte(body))
		assert.True(t, errors.Is(err, apperrors.ErrValidation), body)
	}
}

func TestMerge_KeepsUnspecifiedFields(t *testing.T) {
	current := Buyer{ID: "b-1", Name: "Acme", Address: "Pune", GSTIN: "27AAAAA0000A1Z5"}
	patch := map[string]json.RawMessage{
		"address": json.RawMessage(`"Mumbai"`),
		"id":      json.RawMessage(`"hijack"`),
		"note":    json.RawMessage(`"vip"`),
	}

	var merged Buyer
	require.NoError(t, Merge(current, patch, &merged))

	assert.Equal(t, "b-1", merged.ID)
	assert.Equal(t, "Acme", merged.Name)
	assert.Equal(t, "Mumbai", merged.Address)
	assert.Equal(t, "27AAAAA0000A1Z5", merged.GSTIN)
	assert.Equal(t, json.RawMessage(`"vip"`), merged.Extras["note"])
}

func TestMerge_TypeMismatchIsValidationError(t *testing.T) {
	current := Product{ID: "p-1", Name: "Rice"}
	patch := map[string]json.RawMessage{"stock_quantity": json.RawMessage(`"lots"`)}

	var merged Product
	err := Merge(current, patch, &merged)

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, apperrors.CodeValidation, stdErr.Code)
	assert.Equal(t, []string{"stock_quantity"}, stdErr.Fields)
}

func TestBuyer_Validate(t *testing.T) {
	b := Buyer{Name: "", Address: ""}

	err := b.Validate()

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, []string{"name", "address"}, stdErr.Fields)
}

func TestInvoice_Validate(t *testing.T) {
	inv := Invoice{Date: "01/04/2024", BuyerID: "not-a-uuid"}

	err := inv.Validate()

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.ElementsMatch(t, []string{"date", "buyer_id"}, stdErr.Fields)

	ok := Invoice{Date: "2024-04-01"}
	assert.NoError(t, ok.Validate())
}

func TestInvoice_HasValidGSTIN(t *testing.T) {
	assert.True(t, (&Invoice{}).HasValidGSTIN())
	assert.True(t, (&Invoice{GSTIN: "27AAAAA0000A1Z5"}).HasValidGSTIN())
	assert.False(t, (&Invoice{GSTIN: "27AAAA"}).HasValidGSTIN())
}

func TestProduct_AdjustStock_AllowsNegative(t *testing.T) {
	p := Product{Name: "Rice", StockQuantity: 10}

	p.AdjustStock(-15)

	assert.Equal(t, -5.0, p.StockQuantity)
	assert.False(t, p.UpdatedAt.IsZero())
}
