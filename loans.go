package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"loantrack/apperror"
	"loantrack/pkg/finance"
)

func (a *app) createLoanHandler(c *gin.Context) {
	var req struct {
		Amount       float64 `json:"amount" binding:"required,gt=0"`
		StartDate    string  `json:"startDate" binding:"required"`
		EndDate      string  `json:"endDate" binding:"required"`
		InterestRate float64 `json:"interestRate" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := finance.ParseDate(req.StartDate)
	if err != nil {
		a.respondError(c, apperror.NewValidationError("Invalid start date", err))
		return
	}
	end, err := finance.ParseDate(req.EndDate)
	if err != nil {
		a.respondError(c, apperror.NewValidationError("Invalid end date", err))
		return
	}
	tenureMonths := finance.TenureMonths(start, end)
	if tenureMonths < 1 {
		a.respondError(c, apperror.NewValidationError("End date must be at least one month after start date", nil))
		return
	}

	amount := decimal.NewFromFloat(req.Amount)
	rate := decimal.NewFromFloat(req.InterestRate)
	emi := finance.EMI(amount, rate, tenureMonths)

	loan, err := a.store.CreateLoan(callerID(c), amount, rate, req.StartDate, req.EndDate, emi)
	if err != nil {
		a.respondError(c, err)
		return
	}
	a.log.WithFields(logrus.Fields{
		"user_id":     loan.UserID,
		"loan_number": loan.LoanNumber,
	}).Info("loan created")
	c.JSON(http.StatusCreated, gin.H{"message": "Loan created successfully", "loanNumber": loan.LoanNumber})
}

func (a *app) listLoansHandler(c *gin.Context) {
	loans, err := a.store.LoansByUser(callerID(c), time.Now())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Loans fetched successfully", "loans": loans})
}

func (a *app) getLoanHandler(c *gin.Context) {
	loan, err := a.store.LoanByNumber(c.Param("loanNumber"), callerID(c), time.Now())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Loan fetched successfully", "loan": loan})
}
