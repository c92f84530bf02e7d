// Package pricing computes tax-inclusive totals for estimates and invoices.
package pricing

import "github.com/shopspring/decimal"

// TaxRate is the sales tax applied to every total.
var TaxRate = decimal.RequireFromString("0.06")

// Line is one priced quantity.
type Line struct {
	Price    float64
	Quantity int
}

// Subtotal sums price*quantity over all lines without tax.
func Subtotal(lines ...[]Line) decimal.Decimal {
	sum := decimal.Zero
	for _, set := range lines {
		for _, l := range set {
			sum = sum.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
	}
	return sum
}

// Taxed applies TaxRate to subtotal and rounds to cents.
func Taxed(subtotal decimal.Decimal) float64 {
	return subtotal.Mul(decimal.NewFromInt(1).Add(TaxRate)).Round(2).InexactFloat64()
}

// Total is Taxed(Subtotal(variationLines, customLines)).
func Total(variationLines, customLines []Line) float64 {
	return Taxed(Subtotal(variationLines, customLines))
}
