package pricing

import (
	"github.com/shopspring/decimal"
)

// TaxMode selects how the tax percentage is applied to the taxable base.
type TaxMode string

const (
	// TaxExclusive adds the tax on top of the discounted base.
	TaxExclusive TaxMode = "eksklusif"
	// TaxInclusive treats the discounted base as already containing the
	// tax and extracts it.
	TaxInclusive TaxMode = "inklusif"
)

// Line is one order line as seen by the calculator.
type Line struct {
	Quantity    int64
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal
}

// Adjustments are the invoice-level figures applied after the lines.
type Adjustments struct {
	InvoiceDiscount decimal.Decimal
	TaxPercent      decimal.Decimal
	TaxMode         TaxMode
	ShippingCost    decimal.Decimal
	MiscCost        decimal.Decimal
}

// Totals is the calculator output. DPPBase is the discounted base before
// tax handling; DPP is the taxable base after inclusive extraction.
type Totals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	LineDiscount decimal.Decimal `json:"line_discount"`
	DPPBase      decimal.Decimal `json:"dpp_base"`
	DPP          decimal.Decimal `json:"dpp"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

var oneHundred = decimal.NewFromInt(100)

// LineSubtotal returns quantity times unit price for one line, before
// any discount.
func LineSubtotal(l Line) decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Calculate computes the invoice totals from the lines and adjustments.
//
//	subtotal   = sum(qty * unitPrice)
//	lineDisc   = sum(lineSubtotal * discountPct / 100)
//	dppBase    = subtotal - lineDisc - invoiceDiscount
//	exclusive: dpp = dppBase,                tax = dppBase * taxPct / 100
//	inclusive: dpp = dppBase / (1 + pct/100), tax = dppBase - dpp
//	grand      = dpp + tax + shipping + misc
//
// In inclusive mode tax is derived by subtraction so that dpp + tax
// always equals dppBase exactly, whatever rounding the division needed.
func Calculate(lines []Line, adj Adjustments) Totals {
	subtotal := decimal.Zero
	lineDiscount := decimal.Zero

	for _, l := range lines {
		ls := LineSubtotal(l)
		subtotal = subtotal.Add(ls)
		if !l.DiscountPct.IsZero() {
			lineDiscount = lineDiscount.Add(ls.Mul(l.DiscountPct).Div(oneHundred))
		}
	}

	dppBase := subtotal.Sub(lineDiscount).Sub(adj.InvoiceDiscount)

	var dpp, taxAmount decimal.Decimal
	switch {
	case adj.TaxPercent.IsZero():
		dpp = dppBase
		taxAmount = decimal.Zero
	case adj.TaxMode == TaxInclusive:
		divisor := decimal.NewFromInt(1).Add(adj.TaxPercent.Div(oneHundred))
		dpp = dppBase.Div(divisor)
		taxAmount = dppBase.Sub(dpp)
	default:
		dpp = dppBase
		taxAmount = dppBase.Mul(adj.TaxPercent).Div(oneHundred)
	}

	grandTotal := dpp.Add(taxAmount).Add(adj.ShippingCost).Add(adj.MiscCost)

	return Totals{
		Subtotal:     subtotal,
		LineDiscount: lineDiscount,
		DPPBase:      dppBase,
		DPP:          dpp,
		TaxAmount:    taxAmount,
		GrandTotal:   grandTotal,
	}
}
