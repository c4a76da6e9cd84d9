package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Zel143/fittrack/internal/db"
)

// Store provides credential handling and CRUD access to every entity. It is
// stateless between calls; the acting user is always passed in explicitly.
type Store struct {
	provider *db.Provider
	log      *zap.Logger
}

func New(provider *db.Provider, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{provider: provider, log: log}
}

// table describes one entity's shape: where its rows live, which columns
// identify, own and date them, and how to move values in and out. The create,
// listByOwner and deleteByID helpers below are the single implementation of
// the repeated CRUD pattern shared by every entity.
type table[T any] struct {
	name        string
	idColumn    string
	ownerColumn string
	dateColumn  string
	columns     string // select list
	insertSQL   string // must end with RETURNING <idColumn>
	insertArgs  func(*T) []any
	setID       func(*T, int)
	validate    func(*T) error
}

// create validates the entity, inserts one row, and writes the storage-assigned
// id back into the caller's entity. Validation failures never reach storage.
func create[T any](ctx context.Context, s *Store, tb table[T], e *T) error {
	if err := tb.validate(e); err != nil {
		return err
	}
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	var id int
	if err := conn.QueryRowxContext(ctx, tb.insertSQL, tb.insertArgs(e)...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return &UniquenessError{Column: uniqueColumn(err), Err: err}
		}
		return &StorageError{Op: "insert " + tb.name, Err: err}
	}
	tb.setID(e, id)
	s.log.Debug("row created", zap.String("table", tb.name), zap.Int("id", id))
	return nil
}

// listByOwner returns the owner's rows newest-first by the entity's date
// column, id as tie-break. onDate, when non-empty, restricts to that exact
// date (daily views). An owner with no rows gets an empty slice, not an error.
func listByOwner[T any](ctx context.Context, s *Store, tb table[T], ownerID int, onDate string) ([]T, error) {
	query := "SELECT " + tb.columns + " FROM " + tb.name + " WHERE " + tb.ownerColumn + " = ?"
	args := []any{ownerID}
	if onDate != "" {
		query += " AND " + tb.dateColumn + " = ?"
		args = append(args, onDate)
	}
	order := tb.dateColumn + " DESC"
	if tb.dateColumn != tb.idColumn {
		order += ", " + tb.idColumn + " DESC"
	}
	query += " ORDER BY " + order

	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	out := []T{}
	if err := conn.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, &StorageError{Op: "list " + tb.name, Err: err}
	}
	return out, nil
}

// deleteByID removes exactly one row. A row that was already gone is not an
// error: the false return tells the caller nothing was there.
func deleteByID[T any](ctx context.Context, s *Store, tb table[T], id int) (bool, error) {
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, "DELETE FROM "+tb.name+" WHERE "+tb.idColumn+" = ?", id)
	if err != nil {
		return false, &StorageError{Op: "delete " + tb.name, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &StorageError{Op: "delete " + tb.name, Err: err}
	}
	if n > 0 {
		s.log.Debug("row deleted", zap.String("table", tb.name), zap.Int("id", id))
	}
	return n > 0, nil
}

func validDate(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "required"}
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return &ValidationError{Field: field, Reason: "expected YYYY-MM-DD"}
	}
	return nil
}

func nonNegative(field string, v *float64) error {
	if v != nil && *v < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

func nonNegativeInt(field string, v *int) error {
	if v != nil && *v < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}
