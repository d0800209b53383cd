package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestCalculateExclusiveTax(t *testing.T) {
	lines := []Line{
		{Quantity: 2, UnitPrice: d("2500")},
	}

	totals := Calculate(lines, Adjustments{
		TaxPercent: d("10"),
		TaxMode:    TaxExclusive,
	})

	assert.True(t, totals.Subtotal.Equal(d("5000")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.DPP.Equal(d("5000")), "dpp = %s", totals.DPP)
	assert.True(t, totals.TaxAmount.Equal(d("500")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(d("5500")), "grand = %s", totals.GrandTotal)
}

func TestCalculateInclusiveTaxExtraction(t *testing.T) {
	lines := []Line{
		{Quantity: 1, UnitPrice: d("11000")},
	}

	totals := Calculate(lines, Adjustments{
		TaxPercent: d("10"),
		TaxMode:    TaxInclusive,
	})

	assert.True(t, totals.DPP.Equal(d("10000")), "dpp = %s", totals.DPP)
	assert.True(t, totals.TaxAmount.Equal(d("1000")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(d("11000")), "grand = %s", totals.GrandTotal)
}

// Inclusive extraction must never change the discounted base: dpp plus
// tax always reassembles it exactly, regardless of awkward rates.
func TestCalculateInclusiveTaxReassemblesBase(t *testing.T) {
	cases := []struct {
		name  string
		price string
		pct   string
	}{
		{"round rate", "150000", "11"},
		{"repeating decimal", "99999", "7"},
		{"tiny amount", "13", "3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := Calculate(
				[]Line{{Quantity: 1, UnitPrice: d(tc.price)}},
				Adjustments{TaxPercent: d(tc.pct), TaxMode: TaxInclusive},
			)

			reassembled := totals.DPP.Add(totals.TaxAmount)
			require.True(t, reassembled.Equal(totals.DPPBase),
				"dpp %s + tax %s != base %s", totals.DPP, totals.TaxAmount, totals.DPPBase)
		})
	}
}

func TestCalculateLineAndInvoiceDiscounts(t *testing.T) {
	lines := []Line{
		{Quantity: 4, UnitPrice: d("1000"), DiscountPct: d("25")},
		{Quantity: 1, UnitPrice: d("6000")},
	}

	totals := Calculate(lines, Adjustments{
		InvoiceDiscount: d("500"),
		TaxPercent:      d("10"),
		TaxMode:         TaxExclusive,
		ShippingCost:    d("200"),
		MiscCost:        d("50"),
	})

	// subtotal 10000, line discount 1000, invoice discount 500
	assert.True(t, totals.Subtotal.Equal(d("10000")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.LineDiscount.Equal(d("1000")), "line discount = %s", totals.LineDiscount)
	assert.True(t, totals.DPPBase.Equal(d("8500")), "base = %s", totals.DPPBase)
	assert.True(t, totals.TaxAmount.Equal(d("850")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(d("9600")), "grand = %s", totals.GrandTotal)
}

func TestCalculateZeroTax(t *testing.T) {
	totals := Calculate(
		[]Line{{Quantity: 3, UnitPrice: d("700")}},
		Adjustments{TaxMode: TaxInclusive},
	)

	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.DPP.Equal(d("2100")))
	assert.True(t, totals.GrandTotal.Equal(d("2100")))
}

func TestLineSubtotal(t *testing.T) {
	got := LineSubtotal(Line{Quantity: 12, UnitPrice: d("2.50")})
	assert.True(t, got.Equal(d("30")), "got %s", got)
}
