package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=payment.go -destination=mocks/mock.go -package=mocks

// PaymentGateway is the external payment capability. A false result is a
// decline; an error is a transport fault and must not be reported as one.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, patronID string, amount float64) (bool, error)
	RefundPayment(ctx context.Context, transactionID string, amount float64) (bool, error)
}

// PayLateFees settles the currently assessed fee through the gateway.
// The gateway is invoked at most once; it is never invoked when validation
// fails or no fee is owed.
func (s *Service) PayLateFees(ctx context.Context, patronID string, bookID int, now time.Time) (model.PaymentResult, error) {
	if !validPatronID(patronID) {
		return model.PaymentResult{}, errs.ErrInvalidPatronID
	}

	fee, err := s.CalculateLateFee(ctx, patronID, bookID, now)
	if err != nil {
		return model.PaymentResult{}, errors.Wrap(err, "assess late fee")
	}
	if fee.FeeAmount == 0 {
		return model.PaymentResult{}, errs.ErrNoFeesOwed
	}

	ok, err := s.gateway.ProcessPayment(ctx, patronID, fee.FeeAmount)
	if err != nil {
		s.log.Warn("payment gateway unreachable",
			zap.String("patronId", patronID),
			zap.Error(err))
		return model.PaymentResult{}, errs.ErrGatewayUnavailable
	}
	if !ok {
		return model.PaymentResult{}, errs.ErrPaymentDeclined
	}

	s.log.Info("late fees paid",
		zap.String("patronId", patronID),
		zap.Int("bookId", bookID),
		zap.Float64("amount", fee.FeeAmount))

	return model.PaymentResult{
		Message: fmt.Sprintf("Payment successful. $%.2f in late fees paid.", fee.FeeAmount),
		Amount:  fee.FeeAmount,
	}, nil
}

// RefundLateFeePayment reverses a prior fee payment through the gateway.
func (s *Service) RefundLateFeePayment(ctx context.Context, transactionID string, amount float64) (model.PaymentResult, error) {
	if strings.TrimSpace(transactionID) == "" {
		return model.PaymentResult{}, errs.ErrInvalidTransactionID
	}
	if amount <= 0 || amount > s.maxRefund {
		return model.PaymentResult{}, errs.ErrInvalidRefundAmount
	}

	ok, err := s.gateway.RefundPayment(ctx, transactionID, amount)
	if err != nil {
		s.log.Warn("payment gateway unreachable",
			zap.String("transactionId", transactionID),
			zap.Error(err))
		return model.PaymentResult{}, errs.ErrGatewayUnavailable
	}
	if !ok {
		return model.PaymentResult{}, errs.ErrRefundDeclined
	}

	s.log.Info("late fee refunded",
		zap.String("transactionId", transactionID),
		zap.Float64("amount", amount))

	return model.PaymentResult{
		Message: fmt.Sprintf("Refund successful. $%.2f refunded.", amount),
		Amount:  amount,
	}, nil
}
