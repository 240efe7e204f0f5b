package store

import (
	"github.com/shopspring/decimal"

	"loantrack/apperror"
	"loantrack/models"
)

// CreatePayment appends a payment to the caller's loan, resolved with the
// same existence-then-ownership rule as loan reads. A duplicate payment
// number is a conflict and leaves the journal untouched.
func (s *Store) CreatePayment(loanNumber string, callerUserID uint, paymentNo, paymentDate string, amount decimal.Decimal, method string) (*models.Payment, error) {
	loan, err := s.loanForCaller(loanNumber, callerUserID)
	if err != nil {
		return nil, err
	}
	payment := &models.Payment{
		LoanID:        loan.ID,
		PaymentNo:     paymentNo,
		PaymentDate:   paymentDate,
		TotalAmount:   amount,
		PaymentMethod: method,
	}
	if err := s.db.Create(payment).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperror.NewConflictError("Payment number already exists", err)
		}
		return nil, apperror.NewInternalError("failed to record payment", err)
	}
	return payment, nil
}

// PaymentsByLoan returns a loan's payments in insertion order. No payments
// is an empty list, not an error.
func (s *Store) PaymentsByLoan(loanID uint) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := s.db.Where("loan_id = ?", loanID).Order("id").Find(&payments).Error; err != nil {
		return nil, apperror.NewInternalError("failed to list payments", err)
	}
	return payments, nil
}

// PaymentsForCaller lists payments for the caller's loan by number.
func (s *Store) PaymentsForCaller(loanNumber string, callerUserID uint) ([]models.Payment, error) {
	loan, err := s.loanForCaller(loanNumber, callerUserID)
	if err != nil {
		return nil, err
	}
	return s.PaymentsByLoan(loan.ID)
}
