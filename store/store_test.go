package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loantrack/apperror"
	"loantrack/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "loantrack.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Loan{}, &models.Payment{}))
	return New(db)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createTestUser(t *testing.T, s *Store, email, username string) *models.User {
	t.Helper()
	user, err := s.CreateUser(email, username, []byte("$2a$10$fakehashfortestingonly"))
	require.NoError(t, err)
	return user
}

func createTestLoan(t *testing.T, s *Store, userID uint, amount, emi string, start time.Time) *models.Loan {
	t.Helper()
	loan, err := s.CreateLoan(userID, d(amount), d("0"),
		start.Format("2006-01-02"), start.AddDate(1, 0, 0).Format("2006-01-02"), d(emi))
	require.NoError(t, err)
	return loan
}

func TestCreateUserConflict(t *testing.T) {
	s := newTestStore(t)
	original := createTestUser(t, s, "a@example.com", "alice")

	_, err := s.CreateUser("a@example.com", "alice2", []byte("hash"))
	assert.True(t, apperror.IsConflict(err), "duplicate email should conflict, got %v", err)

	_, err = s.CreateUser("a2@example.com", "alice", []byte("hash"))
	assert.True(t, apperror.IsConflict(err), "duplicate username should conflict, got %v", err)

	// The original row is untouched by the failed attempts.
	got, err := s.FindUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, "a@example.com", got.Email)
}

func TestFindUserAbsent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.FindUserByUsername("nobody")
	assert.True(t, apperror.IsNotFound(err))
	_, err = s.FindUserByID(42)
	assert.True(t, apperror.IsNotFound(err))
}

func TestLoanNumberSequence(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "a@example.com", "alice")
	start := time.Now().AddDate(0, -1, 0)

	first := createTestLoan(t, s, user.ID, "12000", "1000", start)
	assert.Equal(t, "LN001", first.LoanNumber)

	second := createTestLoan(t, s, user.ID, "6000", "500", start)
	assert.Equal(t, "LN002", second.LoanNumber)

	// Another user's sequence is independent.
	other := createTestUser(t, s, "b@example.com", "bob")
	otherLoan := createTestLoan(t, s, other.ID, "3000", "250", start)
	assert.Equal(t, "LN001", otherLoan.LoanNumber)
}

func TestLoanNumberContinuesFromLatest(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "a@example.com", "alice")

	seeded := &models.Loan{
		UserID: user.ID, LoanNumber: "LN007",
		Amount: d("1000"), StartDate: "2026-01-01", EndDate: "2027-01-01",
		EMI: d("100"), OutstandingBalance: d("1000"),
	}
	require.NoError(t, s.db.Create(seeded).Error)

	next := createTestLoan(t, s, user.ID, "2000", "200", time.Now())
	assert.Equal(t, "LN008", next.LoanNumber)
}

func TestLoanOwnership(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	owner := createTestUser(t, s, "a@example.com", "alice")
	stranger := createTestUser(t, s, "b@example.com", "bob")
	createTestLoan(t, s, owner.ID, "12000", "1000", now.AddDate(0, -1, 0))

	// The owner sees the loan.
	loan, err := s.LoanByNumber("LN001", owner.ID, now)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, loan.UserID)

	// A caller who is not the owner gets forbidden, not loan data.
	_, err = s.LoanByNumber("LN001", stranger.ID, now)
	assert.True(t, apperror.IsForbidden(err), "got %v", err)

	// A number no user holds is not found, checked before ownership.
	_, err = s.LoanByNumber("LN999", stranger.ID, now)
	assert.True(t, apperror.IsNotFound(err), "got %v", err)
}

func TestCreatePaymentDuplicateNumber(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	user := createTestUser(t, s, "a@example.com", "alice")
	loan := createTestLoan(t, s, user.ID, "12000", "1000", now.AddDate(0, -3, 0))

	_, err := s.CreatePayment(loan.LoanNumber, user.ID, "PMT-1", "2026-07-01", d("1000"), models.MethodCash)
	require.NoError(t, err)

	_, err = s.CreatePayment(loan.LoanNumber, user.ID, "PMT-1", "2026-08-01", d("1000"), models.MethodCard)
	assert.True(t, apperror.IsConflict(err), "duplicate paymentNo should conflict, got %v", err)

	// The failed attempt left the journal and the balance unchanged.
	payments, err := s.PaymentsByLoan(loan.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	got, err := s.LoanByNumber(loan.LoanNumber, user.ID, now)
	require.NoError(t, err)
	assert.True(t, got.OverdueAmount.Equal(d("2000")), "overdue %s", got.OverdueAmount)
}

func TestPaymentsEmptyList(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "a@example.com", "alice")
	loan := createTestLoan(t, s, user.ID, "12000", "1000", time.Now())

	payments, err := s.PaymentsForCaller(loan.LoanNumber, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestOverdueComputedOnRead(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	user := createTestUser(t, s, "a@example.com", "alice")
	loan := createTestLoan(t, s, user.ID, "12000", "1000", now.AddDate(0, -3, 0))

	got, err := s.LoanByNumber(loan.LoanNumber, user.ID, now)
	require.NoError(t, err)
	assert.True(t, got.OverdueAmount.Equal(d("3000")), "overdue %s", got.OverdueAmount)

	_, err = s.CreatePayment(loan.LoanNumber, user.ID, "PMT-1", "2026-07-01", d("2000"), models.MethodTransfer)
	require.NoError(t, err)

	got, err = s.LoanByNumber(loan.LoanNumber, user.ID, now)
	require.NoError(t, err)
	assert.True(t, got.OverdueAmount.Equal(d("1000")), "overdue %s", got.OverdueAmount)
}

func TestOverdueRoundTrip(t *testing.T) {
	// Paying exactly N x EMI over N elapsed months keeps the loan current.
	s := newTestStore(t)
	now := time.Now()
	user := createTestUser(t, s, "a@example.com", "alice")
	loan := createTestLoan(t, s, user.ID, "12000", "1000", now.AddDate(0, -3, 0))

	for i, no := range []string{"PMT-a", "PMT-b", "PMT-c"} {
		date := now.AddDate(0, -3+i+1, 0).Format("2006-01-02")
		_, err := s.CreatePayment(loan.LoanNumber, user.ID, no, date, d("1000"), models.MethodCash)
		require.NoError(t, err)
	}

	got, err := s.LoanByNumber(loan.LoanNumber, user.ID, now)
	require.NoError(t, err)
	assert.True(t, got.OverdueAmount.IsZero(), "overdue %s", got.OverdueAmount)
}

func TestListLoansComputesOverdue(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	user := createTestUser(t, s, "a@example.com", "alice")
	createTestLoan(t, s, user.ID, "12000", "1000", now.AddDate(0, -2, 0))
	createTestLoan(t, s, user.ID, "6000", "500", now.AddDate(0, -1, 0))

	loans, err := s.LoansByUser(user.ID, now)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, "LN001", loans[0].LoanNumber)
	assert.True(t, loans[0].OverdueAmount.Equal(d("2000")), "overdue %s", loans[0].OverdueAmount)
	assert.True(t, loans[1].OverdueAmount.Equal(d("500")), "overdue %s", loans[1].OverdueAmount)
}

func TestDeleteCascades(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	user := createTestUser(t, s, "a@example.com", "alice")
	loan := createTestLoan(t, s, user.ID, "12000", "1000", now.AddDate(0, -1, 0))
	_, err := s.CreatePayment(loan.LoanNumber, user.ID, "PMT-1", "2026-08-01", d("1000"), models.MethodCash)
	require.NoError(t, err)

	// Deleting the loan removes its payments.
	require.NoError(t, s.db.Delete(&models.Loan{}, loan.ID).Error)
	var paymentCount int64
	require.NoError(t, s.db.Model(&models.Payment{}).Count(&paymentCount).Error)
	assert.Zero(t, paymentCount)

	// Deleting the user removes remaining loans transitively.
	second := createTestLoan(t, s, user.ID, "6000", "500", now)
	_, err = s.CreatePayment(second.LoanNumber, user.ID, "PMT-2", "2026-08-01", d("500"), models.MethodCard)
	require.NoError(t, err)

	require.NoError(t, s.db.Delete(&models.User{}, user.ID).Error)
	var loanCount int64
	require.NoError(t, s.db.Model(&models.Loan{}).Count(&loanCount).Error)
	assert.Zero(t, loanCount)
	require.NoError(t, s.db.Model(&models.Payment{}).Count(&paymentCount).Error)
	assert.Zero(t, paymentCount)
}
