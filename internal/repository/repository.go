package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

type Repository interface {
	CreateBook(ctx context.Context, book model.Book) (int, error)
	GetBookByID(ctx context.Context, id int) (model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	ActiveBorrowCount(ctx context.Context, patronID string) (int, error)
	ListActiveBorrows(ctx context.Context, patronID string) ([]model.BorrowedBook, error)
	GetActiveBorrow(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error)
	CreateBorrow(ctx context.Context, patronID string, bookID int, borrowDate, dueDate time.Time) error
	CloseBorrow(ctx context.Context, patronID string, bookID int, returnDate time.Time) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName         = `books`
	borrowRecordsTableName = `borrow_records`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) CreateBook(ctx context.Context, book model.Book) (int, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "total_copies", "available_copies").
		Values(book.Title, book.Author, book.ISBN, book.TotalCopies, book.AvailableCopies).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, errs.ErrDuplicateISBN
		}
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *repository) GetBookByID(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "isbn", "total_copies", "available_copies").
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "isbn", "total_copies", "available_copies").
		From(booksTableName).
		Where(sq.Eq{"isbn": isbn}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "isbn", "total_copies", "available_copies").
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) ActiveBorrowCount(ctx context.Context, patronID string) (int, error) {
	q := `
	select count(*) from borrow_records
	where patron_id = $1 and return_date is null
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, patronID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListActiveBorrows(ctx context.Context, patronID string) ([]model.BorrowedBook, error) {
	q := `
	select br.book_id, b.title, b.author, br.borrow_date, br.due_date,
	       br.due_date < now() as is_overdue
	from borrow_records br
	join books b on b.id = br.book_id
	where br.patron_id = $1 and br.return_date is null
	order by br.borrow_date
`
	var items []model.BorrowedBook
	if err := r.db.SelectContext(ctx, &items, q, patronID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetActiveBorrow(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error) {
	query, args, err := qb.Select("id", "patron_id", "book_id", "borrow_date", "due_date", "return_date").
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID}).
		Where(sq.Eq{"book_id": bookID}).
		Where(sq.Eq{"return_date": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var rec model.BorrowRecord
	if err := r.db.GetContext(ctx, &rec, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

// CreateBorrow inserts the record and decrements availability in one
// transaction. The decrement is conditional, so concurrent borrows cannot
// both take the last copy.
func (r *repository) CreateBorrow(ctx context.Context, patronID string, bookID int, borrowDate, dueDate time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Insert(borrowRecordsTableName).
		Columns("patron_id", "book_id", "borrow_date", "due_date").
		Values(patronID, bookID, borrowDate, dueDate).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrAlreadyBorrowed
		}
		r.log.Error("CreateBorrow", zap.String("q", query), zap.Any("args", args))
		return err
	}

	q := `
update books
    set available_copies = available_copies - 1
where id = $1 and available_copies > 0`
	res, err := tx.ExecContext(ctx, q, bookID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrBookNotAvailable
	}

	return tx.Commit()
}

// CloseBorrow stamps the active record and increments availability in one
// transaction. Missing active record aborts with ErrNoActiveBorrow.
func (r *repository) CloseBorrow(ctx context.Context, patronID string, bookID int, returnDate time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `
update borrow_records
    set return_date = $3
where patron_id = $1 and book_id = $2 and return_date is null`
	res, err := tx.ExecContext(ctx, q, patronID, bookID, returnDate)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNoActiveBorrow
	}

	q = `
update books
    set available_copies = available_copies + 1
where id = $1 and available_copies < total_copies`
	res, err = tx.ExecContext(ctx, q, bookID)
	if err != nil {
		return err
	}
	n, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Errorf("availability increment rejected for book %d", bookID)
	}

	return tx.Commit()
}
