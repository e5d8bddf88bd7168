package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/handler"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/bookhive/lending-service/pkg/kafka"
	"github.com/bookhive/lending-service/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/bookhive/lending-service/internal/handler/mocks"
)

func newTestRouter(t *testing.T) (*echo.Echo, *handler.Handler, *service_mocks.MockLendingService, *service_mocks.MockEnqueuer) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockLendingService(c)
	enqueuer := service_mocks.NewMockEnqueuer(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, enqueuer, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e, h, svc, enqueuer
}

func TestHandler_BorrowBook(t *testing.T) {
	t.Parallel()
	type input struct {
		bookID string
		body   string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {
				r.EXPECT().
					BorrowBook(context.Background(), "123456", 1, gomock.Any()).
					Return(model.BorrowResult{
						Message: `Successfully borrowed "Test Book". Due date: 2026-03-24.`,
						DueDate: "2026-03-24",
					}, nil)
				q.EXPECT().Enqueue(kafka.LendingTopic, gomock.Any()).Return(nil)
			},
			input: input{
				bookID: "1",
				body:   `{"patronId":"123456"}`,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Successfully borrowed \"Test Book\". Due date: 2026-03-24.","dueDate":"2026-03-24"}`,
			},
			wantErr: false,
		},
		{
			name:         "err. bookId not a number",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {},
			input: input{
				bookID: "abc",
				body:   `{"patronId":"123456"}`,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"bookId is invalid"}`,
			},
			wantErr: true,
		},
		{
			name: "err. invalid patron id",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {
				r.EXPECT().
					BorrowBook(context.Background(), "12345", 1, gomock.Any()).
					Return(model.BorrowResult{}, errs.ErrInvalidPatronID)
			},
			input: input{
				bookID: "1",
				body:   `{"patronId":"12345"}`,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid patron ID. Must be exactly 6 digits."}`,
			},
			wantErr: true,
		},
		{
			name: "err. book not found",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {
				r.EXPECT().
					BorrowBook(context.Background(), "123456", 1, gomock.Any()).
					Return(model.BorrowResult{}, errs.ErrBookNotFound)
			},
			input: input{
				bookID: "1",
				body:   `{"patronId":"123456"}`,
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found."}`,
			},
			wantErr: true,
		},
		{
			name: "err. no copies available",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {
				r.EXPECT().
					BorrowBook(context.Background(), "123456", 1, gomock.Any()).
					Return(model.BorrowResult{}, errs.ErrBookNotAvailable)
			},
			input: input{
				bookID: "1",
				body:   `{"patronId":"123456"}`,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"This book is currently not available."}`,
			},
			wantErr: true,
		},
		{
			name: "err. already borrowed",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {
				r.EXPECT().
					BorrowBook(context.Background(), "123456", 1, gomock.Any()).
					Return(model.BorrowResult{}, errs.ErrAlreadyBorrowed)
			},
			input: input{
				bookID: "1",
				body:   `{"patronId":"123456"}`,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"This book is already borrowed by this patron."}`,
			},
			wantErr: true,
		},
		{
			name: "err. borrowing limit reached",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {
				r.EXPECT().
					BorrowBook(context.Background(), "123456", 1, gomock.Any()).
					Return(model.BorrowResult{}, errs.ErrBorrowLimitReached)
			},
			input: input{
				bookID: "1",
				body:   `{"patronId":"123456"}`,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"You have reached the maximum borrowing limit of 5 books."}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc, enqueuer := newTestRouter(t)
			e.POST("/api/v1/books/:bookId/borrow", h.BorrowBook)

			r := httptest.NewRequest(
				http.MethodPost, fmt.Sprintf("/api/v1/books/%s/borrow", tt.input.bookID), strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, enqueuer)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {
				r.EXPECT().
					ReturnBook(context.Background(), "123456", 1, gomock.Any()).
					Return(model.ReturnResult{Message: `Successfully returned "Test Book".`}, nil)
				q.EXPECT().Enqueue(kafka.LendingTopic, gomock.Any()).Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Successfully returned \"Test Book\"."}`,
			},
			wantErr: false,
		},
		{
			name: "err. no active borrow record",
			mockBehavior: func(r *service_mocks.MockLendingService, q *service_mocks.MockEnqueuer) {
				r.EXPECT().
					ReturnBook(context.Background(), "123456", 1, gomock.Any()).
					Return(model.ReturnResult{}, errs.ErrNoActiveBorrow)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"No active borrow record found for this book and patron."}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc, enqueuer := newTestRouter(t)
			e.POST("/api/v1/books/:bookId/return", h.ReturnBook)

			r := httptest.NewRequest(
				http.MethodPost, "/api/v1/books/1/return", strings.NewReader(`{"patronId":"123456"}`))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, enqueuer)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_AddBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"title":"Test Book","author":"Author Name","isbn":"1234567890123","totalCopies":5}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					AddBook(context.Background(), model.AddBookRequest{
						Title:       "Test Book",
						Author:      "Author Name",
						ISBN:        "1234567890123",
						TotalCopies: 5,
					}).
					Return(model.AddBookResult{
						BookID:  7,
						Message: `Book "Test Book" has been successfully added to the catalog.`,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"bookId":7,"message":"Book \"Test Book\" has been successfully added to the catalog."}`,
			},
			wantErr: false,
		},
		{
			name: "err. title required",
			body: `{"title":"","author":"Author Name","isbn":"1234567890123","totalCopies":5}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					AddBook(context.Background(), gomock.Any()).
					Return(model.AddBookResult{}, errs.ErrTitleRequired)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Title is required."}`,
			},
			wantErr: true,
		},
		{
			name: "err. duplicate isbn",
			body: `{"title":"Test Book","author":"Author Name","isbn":"1234567890123","totalCopies":5}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					AddBook(context.Background(), gomock.Any()).
					Return(model.AddBookResult{}, errs.ErrDuplicateISBN)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"A book with this ISBN already exists."}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc, _ := newTestRouter(t)
			e.POST("/api/v1/books", h.AddBook)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SearchBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		term         string
		searchType   string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:       "ok",
			term:       "go",
			searchType: "title",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					SearchBooks(context.Background(), "go", model.SearchByTitle).
					Return([]model.Book{
						{
							ID:              2,
							Title:           "Learning Go",
							Author:          "Jon Bodner",
							ISBN:            "2222222222222",
							TotalCopies:     3,
							AvailableCopies: 2,
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":2,"title":"Learning Go","author":"Jon Bodner","isbn":"2222222222222","totalCopies":3,"availableCopies":2}]`,
			},
		},
		{
			name:       "empty term yields empty list",
			term:       "",
			searchType: "title",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					SearchBooks(context.Background(), "", model.SearchByTitle).
					Return([]model.Book{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name:       "err. internal",
			term:       "go",
			searchType: "title",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					SearchBooks(context.Background(), "go", model.SearchByTitle).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc, _ := newTestRouter(t)
			e.GET("/api/v1/books", h.SearchBooks)

			r := httptest.NewRequest(
				http.MethodGet, fmt.Sprintf("/api/v1/books?term=%s&type=%s", tt.term, tt.searchType), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_LateFee(t *testing.T) {
	t.Parallel()

	e, h, svc, _ := newTestRouter(t)
	e.GET("/api/v1/patrons/:patronId/books/:bookId/fee", h.LateFee)

	svc.EXPECT().
		CalculateLateFee(context.Background(), "123456", 1, gomock.Any()).
		Return(model.FeeAssessment{
			FeeAmount:   5.00,
			DaysOverdue: 10,
			Status:      "Book is overdue by 10 days",
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/patrons/123456/books/1/fee", http.NoBody)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"feeAmount":5,"daysOverdue":10,"status":"Book is overdue by 10 days"}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_PayLateFees(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					PayLateFees(context.Background(), "123456", 1, gomock.Any()).
					Return(model.PaymentResult{
						Message: "Payment successful. $5.00 in late fees paid.",
						Amount:  5.00,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Payment successful. $5.00 in late fees paid.","amount":5}`,
			},
			wantErr: false,
		},
		{
			name: "err. no fees owed",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					PayLateFees(context.Background(), "123456", 1, gomock.Any()).
					Return(model.PaymentResult{}, errs.ErrNoFeesOwed)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"No late fees owed for this book."}`,
			},
			wantErr: true,
		},
		{
			name: "err. payment declined",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					PayLateFees(context.Background(), "123456", 1, gomock.Any()).
					Return(model.PaymentResult{}, errs.ErrPaymentDeclined)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"Payment declined. Please try another payment method."}`,
			},
			wantErr: true,
		},
		{
			name: "err. provider unreachable",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					PayLateFees(context.Background(), "123456", 1, gomock.Any()).
					Return(model.PaymentResult{}, errs.ErrGatewayUnavailable)
			},
			response: response{
				expectedCode: http.StatusServiceUnavailable,
				expectedBody: `{"message":"Payment failed due to a network error. Please try again later."}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc, _ := newTestRouter(t)
			e.POST("/api/v1/patrons/:patronId/books/:bookId/fee/pay", h.PayLateFees)

			r := httptest.NewRequest(
				http.MethodPost, "/api/v1/patrons/123456/books/1/fee/pay", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Refund(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"transactionId":"txn123","amount":5.00}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					RefundLateFeePayment(context.Background(), "txn123", 5.00).
					Return(model.PaymentResult{
						Message: "Refund successful. $5.00 refunded.",
						Amount:  5.00,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Refund successful. $5.00 refunded.","amount":5}`,
			},
			wantErr: false,
		},
		{
			name: "err. invalid amount",
			body: `{"transactionId":"txn123","amount":16.00}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					RefundLateFeePayment(context.Background(), "txn123", 16.00).
					Return(model.PaymentResult{}, errs.ErrInvalidRefundAmount)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid refund amount."}`,
			},
			wantErr: true,
		},
		{
			name: "err. refund declined",
			body: `{"transactionId":"txn123","amount":5.00}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					RefundLateFeePayment(context.Background(), "txn123", 5.00).
					Return(model.PaymentResult{}, errs.ErrRefundDeclined)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"Refund declined by the payment provider."}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, svc, _ := newTestRouter(t)
			e.POST("/api/v1/refunds", h.Refund)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/refunds", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PatronStatus(t *testing.T) {
	t.Parallel()

	e, h, svc, _ := newTestRouter(t)
	e.GET("/api/v1/patrons/:patronId", h.PatronStatus)

	svc.EXPECT().
		PatronStatus(context.Background(), "123456", gomock.Any()).
		Return(model.StatusReport{
			PatronID:               "123456",
			Status:                 model.PatronStatusActive,
			BooksBorrowed:          1,
			BooksAvailableToBorrow: 4,
			BorrowingLimit:         model.BorrowingLimit,
			BorrowedBooks:          []model.BorrowedBook{},
			TotalLateFees:          0,
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/patrons/123456", http.NoBody)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"patronId":"123456","status":"Active","booksBorrowed":1,"booksAvailableToBorrow":4,"borrowingLimit":5,"borrowedBooks":[],"totalLateFees":0}`,
		strings.Trim(w.Body.String(), "\n"))
}
