package store

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loantrack/apperror"
	"loantrack/models"
	"loantrack/pkg/finance"
)

// CreateLoan assigns the next sequential loan number for the user and
// inserts the loan. Numbering and insert run in one transaction so two
// concurrent creations for the same user cannot skip or duplicate a number.
// The outstanding balance starts at the principal.
func (s *Store) CreateLoan(userID uint, amount, interestRate decimal.Decimal, startDate, endDate string, emi decimal.Decimal) (*models.Loan, error) {
	loan := &models.Loan{
		UserID:             userID,
		Amount:             amount,
		InterestRate:       interestRate,
		StartDate:          startDate,
		EndDate:            endDate,
		EMI:                emi,
		OutstandingBalance: amount,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var last models.Loan
		lastNumber := ""
		err := tx.Where("user_id = ?", userID).Order("id desc").First(&last).Error
		switch {
		case err == nil:
			lastNumber = last.LoanNumber
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		number, err := finance.NextLoanNumber(lastNumber)
		if err != nil {
			return err
		}
		loan.LoanNumber = number
		return tx.Create(loan).Error
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperror.NewConflictError("Loan number already exists", err)
		}
		return nil, apperror.NewInternalError("failed to create loan", err)
	}
	return loan, nil
}

// LoansByUser returns all of a user's loans, oldest first, each with its
// overdue amount computed as of now.
func (s *Store) LoansByUser(userID uint, now time.Time) ([]models.Loan, error) {
	loans := []models.Loan{}
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&loans).Error; err != nil {
		return nil, apperror.NewInternalError("failed to list loans", err)
	}
	for i := range loans {
		if err := s.computeOverdue(&loans[i], now); err != nil {
			return nil, err
		}
	}
	return loans, nil
}

// LoanByNumber resolves a loan number on behalf of a caller and recomputes
// its overdue amount. Existence is checked before ownership: a number no
// user holds reports not found, a number held by another user reports
// forbidden.
func (s *Store) LoanByNumber(loanNumber string, callerUserID uint, now time.Time) (*models.Loan, error) {
	loan, err := s.loanForCaller(loanNumber, callerUserID)
	if err != nil {
		return nil, err
	}
	if err := s.computeOverdue(loan, now); err != nil {
		return nil, err
	}
	return loan, nil
}

// loanForCaller fetches the caller's loan by number, distinguishing
// not-found from forbidden without leaking loan data.
func (s *Store) loanForCaller(loanNumber string, callerUserID uint) (*models.Loan, error) {
	var loan models.Loan
	err := s.db.Where("loan_number = ? AND user_id = ?", loanNumber, callerUserID).First(&loan).Error
	if err == nil {
		return &loan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewInternalError("failed to fetch loan", err)
	}
	var count int64
	if err := s.db.Model(&models.Loan{}).Where("loan_number = ?", loanNumber).Count(&count).Error; err != nil {
		return nil, apperror.NewInternalError("failed to fetch loan", err)
	}
	if count > 0 {
		return nil, apperror.NewForbiddenError("Unauthorized access to this loan", nil)
	}
	return nil, apperror.NewNotFoundError("Loan not found", nil)
}

// computeOverdue fills in the derived overdue amount from the payment
// history. The value is a pure function of (now, loan, payments) and is
// never persisted.
func (s *Store) computeOverdue(loan *models.Loan, now time.Time) error {
	payments, err := s.PaymentsByLoan(loan.ID)
	if err != nil {
		return err
	}
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.TotalAmount)
	}
	start, err := finance.ParseDate(loan.StartDate)
	if err != nil {
		return apperror.NewInternalError("malformed loan start date", err)
	}
	loan.OverdueAmount = finance.Overdue(loan.Amount, loan.EMI, totalPaid, start, now)
	return nil
}
