// Package finance holds the loan arithmetic: EMI, tenure, overdue balances
// and identifier generation. Everything here is pure computation so it can
// be tested without a database or HTTP server.
package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	one           = decimal.NewFromInt(1)
	twelveHundred = decimal.NewFromInt(1200)
)

// TenureMonths returns the whole calendar-month difference between start
// and end. Day of month is ignored.
func TenureMonths(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// EMI computes the equal monthly installment for an amortized loan,
// rounded to 2 decimal places:
//
//	monthlyRate = annualRatePercent / 1200
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero interest rate would make the denominator zero, so it falls back
// to dividing the principal evenly over the tenure.
func EMI(principal, annualRatePercent decimal.Decimal, tenureMonths int) decimal.Decimal {
	months := decimal.NewFromInt(int64(tenureMonths))
	monthlyRate := annualRatePercent.Div(twelveHundred)
	if monthlyRate.IsZero() {
		return principal.Div(months).Round(2)
	}
	factor := one.Add(monthlyRate).Pow(months)
	emi := principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(one))
	return emi.Round(2)
}
