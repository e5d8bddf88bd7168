package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/pkg/errors"
)

// CalculateLateFee assesses the fee owed for one borrowed book. The
// assessment is a pure function of the active record's due date and now;
// validation outcomes are reported in the status field, never as errors.
func (s *Service) CalculateLateFee(ctx context.Context, patronID string, bookID int, now time.Time) (model.FeeAssessment, error) {
	if !validPatronID(patronID) {
		return model.FeeAssessment{Status: model.FeeStatusInvalidPatron}, nil
	}

	if _, err := s.repo.GetBookByID(ctx, bookID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.FeeAssessment{Status: model.FeeStatusBookNotFound}, nil
		}
		return model.FeeAssessment{}, errors.Wrap(err, "get book")
	}

	rec, err := s.repo.GetActiveBorrow(ctx, patronID, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.FeeAssessment{Status: model.FeeStatusNotBorrowed}, nil
		}
		return model.FeeAssessment{}, errors.Wrap(err, "get active borrow")
	}

	return assessFee(rec.DueDate, now), nil
}

func assessFee(dueDate, now time.Time) model.FeeAssessment {
	if !now.After(dueDate) {
		return model.FeeAssessment{Status: model.FeeStatusNotOverdue}
	}

	daysOverdue := int(now.Sub(dueDate).Hours() / 24)
	return model.FeeAssessment{
		FeeAmount:   round2(float64(daysOverdue) * model.DailyLateFee),
		DaysOverdue: daysOverdue,
		Status:      fmt.Sprintf("Book is overdue by %d days", daysOverdue),
	}
}
