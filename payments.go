package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"loantrack/apperror"
	"loantrack/pkg/finance"
)

func (a *app) createPaymentHandler(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
		Date   string  `json:"date" binding:"required"`
		Method string  `json:"method" binding:"required,oneof=Cash Card Transfer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := finance.ParseDate(req.Date); err != nil {
		a.respondError(c, apperror.NewValidationError("Invalid date", err))
		return
	}
	paymentNo, err := finance.NewPaymentNumber()
	if err != nil {
		a.respondError(c, apperror.NewInternalError("failed to generate payment number", err))
		return
	}
	payment, err := a.store.CreatePayment(c.Param("loanNumber"), callerID(c),
		paymentNo, req.Date, decimal.NewFromFloat(req.Amount), req.Method)
	if err != nil {
		a.respondError(c, err)
		return
	}
	a.log.WithFields(logrus.Fields{
		"loan_id":    payment.LoanID,
		"payment_no": payment.PaymentNo,
	}).Info("payment recorded")
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Payment created successfully",
		"paymentId": payment.ID,
		"paymentNo": payment.PaymentNo,
	})
}

func (a *app) getPaymentsHandler(c *gin.Context) {
	payments, err := a.store.PaymentsForCaller(c.Param("loanNumber"), callerID(c))
	if err != nil {
		a.respondError(c, err)
		return
	}
	if len(payments) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No payments found for this loan", "payments": payments})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payments fetched successfully", "payments": payments})
}
