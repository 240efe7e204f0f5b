package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthsElapsed returns the number of whole calendar months between start
// and now, never negative. Loans that start in the future have nothing due.
func MonthsElapsed(start, now time.Time) int {
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// Overdue returns how far behind schedule a loan's repayments are at now.
// Expected repayment is capped at the principal (nothing is owed past full
// amortization) and the result never goes negative.
func Overdue(principal, emi, totalPaid decimal.Decimal, start, now time.Time) decimal.Decimal {
	expected := emi.Mul(decimal.NewFromInt(int64(MonthsElapsed(start, now))))
	if expected.GreaterThan(principal) {
		expected = principal
	}
	overdue := expected.Sub(totalPaid)
	if overdue.IsNegative() {
		return decimal.Zero
	}
	return overdue
}
