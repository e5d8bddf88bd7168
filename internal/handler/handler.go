package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/bookhive/lending-service/pkg/kafka"
	"github.com/bookhive/lending-service/pkg/validate"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	lendingSvc LendingService
	enqueuer   Enqueuer
	log        *zap.Logger
}

func New(lendingSvc LendingService, enqueuer Enqueuer, log *zap.Logger) *Handler {
	h := &Handler{
		lendingSvc: lendingSvc,
		enqueuer:   enqueuer,
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/books", h.AddBook)
	api.GET("/books", h.SearchBooks)
	api.POST("/books/:bookId/borrow", h.BorrowBook)
	api.POST("/books/:bookId/return", h.ReturnBook)

	api.GET("/patrons/:patronId", h.PatronStatus)
	api.GET("/patrons/:patronId/books/:bookId/fee", h.LateFee)
	api.POST("/patrons/:patronId/books/:bookId/fee/pay", h.PayLateFees)
	api.POST("/refunds", h.Refund)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.lendingSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	term := c.QueryParam("term")
	searchType := model.SearchType(c.QueryParam("type"))

	books, err := h.lendingSvc.SearchBooks(c.Request().Context(), term, searchType)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) BorrowBook(c echo.Context) error {
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookId is invalid"))
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.lendingSvc.BorrowBook(c.Request().Context(), req.PatronID, bookID, time.Now())
	if err != nil {
		return httpError(err)
	}

	h.publish(model.EventBorrowed, req.PatronID, bookID)
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookId is invalid"))
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.lendingSvc.ReturnBook(c.Request().Context(), req.PatronID, bookID, time.Now())
	if err != nil {
		return httpError(err)
	}

	h.publish(model.EventReturned, req.PatronID, bookID)
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) PatronStatus(c echo.Context) error {
	report, err := h.lendingSvc.PatronStatus(c.Request().Context(), c.Param("patronId"), time.Now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) LateFee(c echo.Context) error {
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookId is invalid"))
	}

	fee, err := h.lendingSvc.CalculateLateFee(c.Request().Context(), c.Param("patronId"), bookID, time.Now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fee)
}

func (h *Handler) PayLateFees(c echo.Context) error {
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookId is invalid"))
	}

	res, err := h.lendingSvc.PayLateFees(c.Request().Context(), c.Param("patronId"), bookID, time.Now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Refund(c echo.Context) error {
	var req model.RefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.lendingSvc.RefundLateFeePayment(c.Request().Context(), req.TransactionID, req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// publish is fire-and-forget; lending events are advisory.
func (h *Handler) publish(eventType model.EventType, patronID string, bookID int) {
	if h.enqueuer == nil {
		return
	}
	event := model.LendingEvent{
		EventID:  uuid.NewString(),
		Type:     eventType,
		PatronID: patronID,
		BookID:   bookID,
		Date:     time.Now().UTC(),
	}
	if err := h.enqueuer.Enqueue(kafka.LendingTopic, event); err != nil {
		h.log.Warn("enqueue lending event", zap.Error(err))
	}
}

func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidPatronID),
		errors.Is(err, errs.ErrTitleRequired),
		errors.Is(err, errs.ErrTitleTooLong),
		errors.Is(err, errs.ErrAuthorRequired),
		errors.Is(err, errs.ErrAuthorTooLong),
		errors.Is(err, errs.ErrInvalidISBN),
		errors.Is(err, errs.ErrInvalidCopies),
		errors.Is(err, errs.ErrInvalidTransactionID),
		errors.Is(err, errs.ErrInvalidRefundAmount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrBookNotFound),
		errors.Is(err, errs.ErrNoActiveBorrow):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrBookNotAvailable),
		errors.Is(err, errs.ErrBorrowLimitReached),
		errors.Is(err, errs.ErrAlreadyBorrowed),
		errors.Is(err, errs.ErrDuplicateISBN),
		errors.Is(err, errs.ErrNoFeesOwed),
		errors.Is(err, errs.ErrPaymentDeclined),
		errors.Is(err, errs.ErrRefundDeclined):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrGatewayUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
