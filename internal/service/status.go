package service

import (
	"context"
	"time"

	"github.com/bookhive/lending-service/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// PatronStatus composes the patron's borrow count, active borrows and total
// outstanding late fees into one report.
func (s *Service) PatronStatus(ctx context.Context, patronID string, now time.Time) (model.StatusReport, error) {
	report := model.StatusReport{
		PatronID:      patronID,
		BorrowedBooks: []model.BorrowedBook{},
	}
	if !validPatronID(patronID) {
		report.Status = model.FeeStatusInvalidPatron
		return report, nil
	}

	var (
		count    int
		borrowed []model.BorrowedBook
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		count, err = s.repo.ActiveBorrowCount(ctx, patronID)
		return err
	})
	gg.Go(func() error {
		var err error
		borrowed, err = s.repo.ListActiveBorrows(ctx, patronID)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.StatusReport{}, errors.Wrap(err, "patron status")
	}

	totalFees := 0.0
	for _, b := range borrowed {
		if b.IsOverdue {
			totalFees += assessFee(b.DueDate, now).FeeAmount
		}
	}

	report.Status = model.PatronStatusActive
	report.BooksBorrowed = count
	report.BooksAvailableToBorrow = max(0, model.BorrowingLimit-count)
	report.BorrowingLimit = model.BorrowingLimit
	if borrowed != nil {
		report.BorrowedBooks = borrowed
	}
	report.TotalLateFees = round2(totalFees)
	return report, nil
}
