package handler

import (
	"context"
	"time"

	"github.com/bookhive/lending-service/internal/model"
	"github.com/bookhive/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type LendingService interface {
	AddBook(ctx context.Context, req model.AddBookRequest) (model.AddBookResult, error)
	SearchBooks(ctx context.Context, term string, searchType model.SearchType) ([]model.Book, error)
	BorrowBook(ctx context.Context, patronID string, bookID int, now time.Time) (model.BorrowResult, error)
	ReturnBook(ctx context.Context, patronID string, bookID int, now time.Time) (model.ReturnResult, error)
	CalculateLateFee(ctx context.Context, patronID string, bookID int, now time.Time) (model.FeeAssessment, error)
	PayLateFees(ctx context.Context, patronID string, bookID int, now time.Time) (model.PaymentResult, error)
	RefundLateFeePayment(ctx context.Context, transactionID string, amount float64) (model.PaymentResult, error)
	PatronStatus(ctx context.Context, patronID string, now time.Time) (model.StatusReport, error)
}

var _ LendingService = (*service.Service)(nil)
