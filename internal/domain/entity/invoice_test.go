package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItemDerivedAmounts(t *testing.T) {
	item := LineItem{
		Quantity:      2,
		Price:         decimal.RequireFromString("10.99"),
		VATPercentage: decimal.NewFromInt(15),
	}

	assert.Equal(t, "3.297", item.VATAmount().String())
	assert.Equal(t, "25.277", item.Amount().String())
}

func TestLineItemZeroVAT(t *testing.T) {
	item := LineItem{
		Quantity: 3,
		Price:    decimal.RequireFromString("5.50"),
	}

	assert.True(t, item.VATAmount().IsZero())
	assert.Equal(t, "16.5", item.Amount().String())
}

func TestInvoiceTotals(t *testing.T) {
	invoice := Invoice{
		LineItems: []LineItem{
			{
				Quantity:      2,
				Price:         decimal.RequireFromString("10.99"),
				VATPercentage: decimal.NewFromInt(15),
			},
			{
				Quantity: 1,
				Price:    decimal.NewFromInt(10),
			},
		},
	}

	assert.Equal(t, "31.98", invoice.SubTotal().String())
	assert.Equal(t, "3.297", invoice.TotalVAT().String())
	assert.Equal(t, "35.277", invoice.TotalAmount().String())
}

func TestInvoiceTotalsRecomputeAfterChange(t *testing.T) {
	invoice := Invoice{
		LineItems: []LineItem{
			{Quantity: 1, Price: decimal.NewFromInt(10), VATPercentage: decimal.NewFromInt(10)},
		},
	}
	assert.Equal(t, "11", invoice.TotalAmount().String())

	invoice.LineItems[0].Quantity = 4
	assert.Equal(t, "44", invoice.TotalAmount().String())
}

func TestInvoiceStatusDraftByDefault(t *testing.T) {
	now := time.Now()
	invoice := Invoice{}

	assert.Equal(t, InvoiceStatusDraft, invoice.Status(now))
}

func TestInvoiceStatusDraftBeforeDelivery(t *testing.T) {
	now := time.Now()
	future := now.Add(48 * time.Hour)
	invoice := Invoice{DeliveredDate: &future}

	assert.Equal(t, InvoiceStatusDraft, invoice.Status(now))
}

func TestInvoiceStatusOverdueAfterDelivery(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	invoice := Invoice{DeliveredDate: &past}

	assert.Equal(t, InvoiceStatusOverdue, invoice.Status(now))
}

func TestInvoiceStatusPaidWinsOverOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	receiptID := uuid.New()
	invoice := Invoice{DeliveredDate: &past, PaymentReceiptID: &receiptID}

	assert.Equal(t, InvoiceStatusPaid, invoice.Status(now))
}

func TestInventoryTotalUnits(t *testing.T) {
	inv := Inventory{UnitsPerCarton: 12, NumberOfCartons: 15}

	assert.Equal(t, 180, inv.TotalUnits())
}
