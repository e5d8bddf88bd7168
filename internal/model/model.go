package model

import "time"

const (
	// BorrowingLimit is the maximum number of concurrent active borrows per patron.
	BorrowingLimit = 5
	// LoanPeriodDays is added to the borrow date to produce the due date.
	LoanPeriodDays = 14
	// DailyLateFee is charged per whole day past the due date.
	DailyLateFee = 0.50
)

type Book struct {
	ID              int    `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	ISBN            string `json:"isbn" db:"isbn"`
	TotalCopies     int    `json:"totalCopies" db:"total_copies"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
}

type BorrowRecord struct {
	ID         int        `json:"-" db:"id"`
	PatronID   string     `json:"patronId" db:"patron_id"`
	BookID     int        `json:"bookId" db:"book_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
}

// BorrowedBook is an active borrow joined with its book, as listed on the
// patron status report.
type BorrowedBook struct {
	BookID     int       `json:"bookId" db:"book_id"`
	Title      string    `json:"title" db:"title"`
	Author     string    `json:"author" db:"author"`
	BorrowDate time.Time `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time `json:"dueDate" db:"due_date"`
	IsOverdue  bool      `json:"isOverdue" db:"is_overdue"`
}

// FeeAssessment is derived per request from the due date and the reference
// time, never persisted.
type FeeAssessment struct {
	FeeAmount   float64 `json:"feeAmount"`
	DaysOverdue int     `json:"daysOverdue"`
	Status      string  `json:"status"`
}

const (
	FeeStatusInvalidPatron = "Invalid patron ID"
	FeeStatusBookNotFound  = "Book not found"
	FeeStatusNotBorrowed   = "This book is not currently borrowed by this patron"
	FeeStatusNotOverdue    = "Book is not overdue"

	PatronStatusActive = "Active"
)

type StatusReport struct {
	PatronID               string         `json:"patronId"`
	Status                 string         `json:"status"`
	BooksBorrowed          int            `json:"booksBorrowed"`
	BooksAvailableToBorrow int            `json:"booksAvailableToBorrow"`
	BorrowingLimit         int            `json:"borrowingLimit"`
	BorrowedBooks          []BorrowedBook `json:"borrowedBooks"`
	TotalLateFees          float64        `json:"totalLateFees"`
}

type SearchType string

const (
	SearchByTitle  SearchType = "title"
	SearchByAuthor SearchType = "author"
	SearchByISBN   SearchType = "isbn"
)

type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"totalCopies"`
}

type AddBookResult struct {
	BookID  int    `json:"bookId"`
	Message string `json:"message"`
}

type BorrowRequest struct {
	PatronID string `json:"patronId"`
}

type BorrowResult struct {
	Message string `json:"message"`
	DueDate string `json:"dueDate"`
}

type ReturnResult struct {
	Message string `json:"message"`
}

type RefundRequest struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}

type PaymentResult struct {
	Message string  `json:"message"`
	Amount  float64 `json:"amount"`
}

type EventType string

const (
	EventBorrowed EventType = "BORROWED"
	EventReturned EventType = "RETURNED"
)

// LendingEvent is published to Kafka after a successful borrow or return.
type LendingEvent struct {
	EventID  string    `json:"eventId"`
	Type     EventType `json:"type"`
	PatronID string    `json:"patronId"`
	BookID   int       `json:"bookId"`
	Date     time.Time `json:"date"`
}
