package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AddBook validates and inserts a new catalog entry. A new book starts with
// all copies available.
func (s *Service) AddBook(ctx context.Context, req model.AddBookRequest) (model.AddBookResult, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.AddBookResult{}, errs.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > 200 {
		return model.AddBookResult{}, errs.ErrTitleTooLong
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		return model.AddBookResult{}, errs.ErrAuthorRequired
	}
	if utf8.RuneCountInString(author) > 100 {
		return model.AddBookResult{}, errs.ErrAuthorTooLong
	}

	if !validISBN(req.ISBN) {
		return model.AddBookResult{}, errs.ErrInvalidISBN
	}
	if req.TotalCopies <= 0 {
		return model.AddBookResult{}, errs.ErrInvalidCopies
	}

	if _, err := s.repo.GetBookByISBN(ctx, req.ISBN); err == nil {
		return model.AddBookResult{}, errs.ErrDuplicateISBN
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.AddBookResult{}, errors.Wrap(err, "check isbn")
	}

	id, err := s.repo.CreateBook(ctx, model.Book{
		Title:           title,
		Author:          author,
		ISBN:            req.ISBN,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
	})
	if err != nil {
		// lost the race on the unique isbn index
		if errors.Is(err, errs.ErrDuplicateISBN) {
			return model.AddBookResult{}, errs.ErrDuplicateISBN
		}
		return model.AddBookResult{}, errors.Wrap(err, "insert book")
	}

	s.log.Info("book added", zap.Int("bookId", id), zap.String("isbn", req.ISBN))

	return model.AddBookResult{
		BookID:  id,
		Message: fmt.Sprintf("Book %q has been successfully added to the catalog.", title),
	}, nil
}

// SearchBooks filters the catalog. Title and author match by
// case-insensitive containment, isbn by exact equality. An empty term or
// an unknown search type yields an empty result, not an error.
func (s *Service) SearchBooks(ctx context.Context, term string, searchType model.SearchType) ([]model.Book, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []model.Book{}, nil
	}
	switch searchType {
	case model.SearchByTitle, model.SearchByAuthor, model.SearchByISBN:
	default:
		return []model.Book{}, nil
	}

	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list books")
	}

	results := make([]model.Book, 0, len(books))
	for _, b := range books {
		switch searchType {
		case model.SearchByTitle:
			if strings.Contains(strings.ToLower(b.Title), term) {
				results = append(results, b)
			}
		case model.SearchByAuthor:
			if strings.Contains(strings.ToLower(b.Author), term) {
				results = append(results, b)
			}
		case model.SearchByISBN:
			if strings.ToLower(b.ISBN) == term {
				results = append(results, b)
			}
		}
	}
	return results, nil
}

func validISBN(isbn string) bool {
	if len(isbn) != 13 {
		return false
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
