package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BorrowBook moves a (patron, book) pair into the borrowed state. Guards run
// in order and the first failure wins; the record insert and the
// availability decrement commit together.
func (s *Service) BorrowBook(ctx context.Context, patronID string, bookID int, now time.Time) (model.BorrowResult, error) {
	if !validPatronID(patronID) {
		return model.BorrowResult{}, errs.ErrInvalidPatronID
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.BorrowResult{}, errs.ErrBookNotFound
		}
		return model.BorrowResult{}, errors.Wrap(err, "get book")
	}
	if book.AvailableCopies <= 0 {
		return model.BorrowResult{}, errs.ErrBookNotAvailable
	}

	count, err := s.repo.ActiveBorrowCount(ctx, patronID)
	if err != nil {
		return model.BorrowResult{}, errors.Wrap(err, "count active borrows")
	}
	if count > model.BorrowingLimit {
		return model.BorrowResult{}, errs.ErrBorrowLimitReached
	}

	dueDate := now.AddDate(0, 0, model.LoanPeriodDays)
	if err := s.repo.CreateBorrow(ctx, patronID, bookID, now, dueDate); err != nil {
		if errors.Is(err, errs.ErrBookNotAvailable) || errors.Is(err, errs.ErrAlreadyBorrowed) {
			return model.BorrowResult{}, err
		}
		return model.BorrowResult{}, errors.Wrap(err, "create borrow record")
	}

	s.log.Info("book borrowed",
		zap.String("patronId", patronID),
		zap.Int("bookId", bookID),
		zap.Time("dueDate", dueDate))

	due := dueDate.Format(time.DateOnly)
	return model.BorrowResult{
		Message: fmt.Sprintf("Successfully borrowed %q. Due date: %s.", book.Title, due),
		DueDate: due,
	}, nil
}

// ReturnBook closes the unique active record for the pair and releases the
// copy back to the shelf.
func (s *Service) ReturnBook(ctx context.Context, patronID string, bookID int, now time.Time) (model.ReturnResult, error) {
	if !validPatronID(patronID) {
		return model.ReturnResult{}, errs.ErrInvalidPatronID
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.ReturnResult{}, errs.ErrBookNotFound
		}
		return model.ReturnResult{}, errors.Wrap(err, "get book")
	}

	if err := s.repo.CloseBorrow(ctx, patronID, bookID, now); err != nil {
		if errors.Is(err, errs.ErrNoActiveBorrow) {
			return model.ReturnResult{}, errs.ErrNoActiveBorrow
		}
		return model.ReturnResult{}, errors.Wrap(err, "close borrow record")
	}

	s.log.Info("book returned",
		zap.String("patronId", patronID),
		zap.Int("bookId", bookID))

	return model.ReturnResult{
		Message: fmt.Sprintf("Successfully returned %q.", book.Title),
	}, nil
}
