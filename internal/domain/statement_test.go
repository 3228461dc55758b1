package domain

import (
	"errors"
	"testing"

	apperrors "billing-service/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatementFilter(t *testing.T) {
	f, err := NewStatementFilter("2024-04-01", "")
	require.NoError(t, err)
	require.NotNil(t, f.StartDate)
	assert.Equal(t, "2024-04-01", *f.StartDate)
	assert.Nil(t, f.EndDate)

	_, err = NewStatementFilter("", "2024-13-01")
	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, []string{"end_date"}, stdErr.Fields)
}

func TestBuildStatement_NoInvoices(t *testing.T) {
	buyer := Buyer{ID: "b-1", Name: "Acme", GSTIN: "27AAAAA0000A1Z5"}

	st := BuildStatement(buyer, nil, StatementFilter{})

	assert.Equal(t, "Acme", st.Buyer)
	assert.Equal(t, "27AAAAA0000A1Z5", st.BuyerGSTIN)
	assert.Equal(t, 0, st.InvoiceCount)
	assert.Equal(t, 0.0, st.TotalQty)
	assert.Equal(t, 0.0, st.TotalAmount)
	assert.NotNil(t, st.Invoices)
	assert.Empty(t, st.Invoices)
}

func TestBuildStatement_SumsAndSkipsBadQuantities(t *testing.T) {
	buyer := Buyer{ID: "b-1", Name: "Acme"}
	invoices := []Invoice{
		{
			ID: "i-2", InvoiceNo: "2", Date: "2024-05-10", TotalAmount: 118,
			Items: []Item{{TotalQty: Quantity(`"20"`)}, {TotalQty: Quantity(`"n/a"`)}},
		},
		{
			ID: "i-1", InvoiceNo: "1", Date: "2024-04-02", TotalAmount: 59.5,
			Items: []Item{{TotalQty: Quantity(`10`)}, {}},
		},
	}

	st := BuildStatement(buyer, invoices, StatementFilter{})

	assert.Equal(t, 2, st.InvoiceCount)
	assert.Equal(t, 30.0, st.TotalQty)
	assert.Equal(t, 177.5, st.TotalAmount)
	require.Len(t, st.Invoices, 2)
	assert.Equal(t, "i-1", st.Invoices[0].ID)
	assert.Equal(t, "i-2", st.Invoices[1].ID)
}
