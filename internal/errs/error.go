package errs

import (
	"errors"
)

// Sentinel errors carry the user-facing message verbatim; handlers map them
// to HTTP statuses with errors.Is.
var (
	ErrNotFound = errors.New("not found")

	ErrInvalidPatronID    = errors.New("Invalid patron ID. Must be exactly 6 digits.")
	ErrBookNotFound       = errors.New("Book not found.")
	ErrBookNotAvailable   = errors.New("This book is currently not available.")
	ErrBorrowLimitReached = errors.New("You have reached the maximum borrowing limit of 5 books.")
	ErrAlreadyBorrowed    = errors.New("This book is already borrowed by this patron.")
	ErrNoActiveBorrow     = errors.New("No active borrow record found for this book and patron.")

	ErrTitleRequired  = errors.New("Title is required.")
	ErrTitleTooLong   = errors.New("Title must be less than 200 characters.")
	ErrAuthorRequired = errors.New("Author is required.")
	ErrAuthorTooLong  = errors.New("Author must be less than 100 characters.")
	ErrInvalidISBN    = errors.New("ISBN must be exactly 13 digits.")
	ErrInvalidCopies  = errors.New("Total copies must be a positive integer.")
	ErrDuplicateISBN  = errors.New("A book with this ISBN already exists.")

	ErrNoFeesOwed           = errors.New("No late fees owed for this book.")
	ErrPaymentDeclined      = errors.New("Payment declined. Please try another payment method.")
	ErrRefundDeclined       = errors.New("Refund declined by the payment provider.")
	ErrGatewayUnavailable   = errors.New("Payment failed due to a network error. Please try again later.")
	ErrInvalidTransactionID = errors.New("Invalid transaction ID.")
	ErrInvalidRefundAmount  = errors.New("Invalid refund amount.")
)
