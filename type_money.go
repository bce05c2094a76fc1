package finreport

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a figure of the statement, in the statement's own currency unit.
// Statements are not converted, amounts are displayed in roubles.
type Amount struct {
	value decimal.Decimal
}

// A returns the amount of v.
func A(v float64) Amount { return Amount{value: decimal.NewFromFloat(v)} }

// rubles formats whole amounts with a space as thousand separator: "1 000 000 руб.".
var rubles = money.NewFormatter(0, ",", " ", "руб.", "1 $")

// String returns the amount rounded to the unit.
func (a Amount) String() string { return rubles.Format(a.value.Round(0).IntPart()) }

// SignedString returns the amount with its sign, "+" included.
func (a Amount) SignedString() string {
	if a.value.Round(0).IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}
