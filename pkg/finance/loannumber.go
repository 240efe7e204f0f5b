package finance

import (
	"fmt"
	"strconv"
	"strings"
)

// FirstLoanNumber is assigned to a user's first loan.
const FirstLoanNumber = "LN001"

// NextLoanNumber derives the next sequential loan number from the number of
// the user's most recently created loan. Numbers are zero-padded to three
// digits; past LN999 they simply widen (LN1000, LN1001, ...).
func NextLoanNumber(last string) (string, error) {
	if last == "" {
		return FirstLoanNumber, nil
	}
	if !strings.HasPrefix(last, "LN") {
		return "", fmt.Errorf("malformed loan number %q", last)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(last, "LN"))
	if err != nil {
		return "", fmt.Errorf("malformed loan number %q: %w", last, err)
	}
	return fmt.Sprintf("LN%03d", n+1), nil
}
