package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan belongs to exactly one user. LoanNumber is a per-user sequential
// identifier (LN001, LN002, ...): unique within the owning user, not
// globally. Dates are kept as ISO-8601 strings, matching the wire format.
type Loan struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time       `json:"-"`
	UpdatedAt          time.Time       `json:"-"`
	UserID             uint            `gorm:"not null;uniqueIndex:idx_user_loan_number" json:"userId"`
	LoanNumber         string          `gorm:"size:32;not null;uniqueIndex:idx_user_loan_number" json:"loanNumber"`
	Amount             decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	InterestRate       decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"interestRate"`
	StartDate          string          `gorm:"size:64;not null" json:"startDate"`
	EndDate            string          `gorm:"size:64;not null" json:"endDate"`
	EMI                decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"emi"`
	OutstandingBalance decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"outstandingBalance"`

	// OverdueAmount is derived from the payment history on every read and
	// never persisted.
	OverdueAmount decimal.Decimal `gorm:"-" json:"overdueAmount"`

	Payments []Payment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
