package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted by the API.
const (
	MethodCash     = "Cash"
	MethodCard     = "Card"
	MethodTransfer = "Transfer"
)

// Payment is an append-only journal entry against a loan. PaymentNo is
// unique across the whole system. There is no update or delete path.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
	LoanID        uint            `gorm:"index;not null" json:"loanId"`
	PaymentNo     string          `gorm:"size:64;not null;uniqueIndex" json:"paymentNo"`
	PaymentDate   string          `gorm:"size:64;not null" json:"paymentDate"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"totalAmount"`
	PaymentMethod string          `gorm:"size:16;not null" json:"paymentMethod"`
}
