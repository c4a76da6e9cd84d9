package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zel143/fittrack/internal/models"
)

const userColumns = `user_id, username, email, password_hash, age, gender, height, weight, fitness_level, created_at`

// Register creates an account with a salted bcrypt digest of the password.
// The plaintext is never stored; registering the same password twice yields
// different digests because bcrypt generates a fresh salt per call. Duplicate
// username or email is detected from the unique constraint, not a pre-check.
func (s *Store) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "required"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "required"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &StorageError{Op: "hash password", Err: err}
	}

	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var u models.User
	err = conn.QueryRowxContext(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?) RETURNING `+userColumns,
		username, email, string(hashed)).StructScan(&u)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &UniquenessError{Column: uniqueColumn(err), Err: err}
		}
		return nil, &StorageError{Op: "insert users", Err: err}
	}
	s.log.Info("user registered", zap.String("username", u.Username), zap.Int("id", u.ID))
	return &u, nil
}

// Authenticate returns the account when username and password match. Unknown
// username and wrong password both yield ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var u models.User
	err = conn.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, &StorageError{Op: "select users", Err: err}
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id int) (*models.User, error) {
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var u models.User
	err = conn.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &StorageError{Op: "select users", Err: err}
	}
	return &u, nil
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is";
// identity, credentials and created_at are not updatable here.
type ProfileUpdate struct {
	Age          *int
	Gender       *string
	Height       *float64
	Weight       *float64
	FitnessLevel *string
}

// UpdateProfile replaces the provided fields in place.
func (s *Store) UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) error {
	if err := nonNegativeInt("age", upd.Age); err != nil {
		return err
	}
	if err := nonNegative("height", upd.Height); err != nil {
		return err
	}
	if err := nonNegative("weight", upd.Weight); err != nil {
		return err
	}

	setClauses := []string{}
	args := []any{}
	if upd.Age != nil {
		setClauses = append(setClauses, "age = ?")
		args = append(args, *upd.Age)
	}
	if upd.Gender != nil {
		setClauses = append(setClauses, "gender = ?")
		args = append(args, *upd.Gender)
	}
	if upd.Height != nil {
		setClauses = append(setClauses, "height = ?")
		args = append(args, *upd.Height)
	}
	if upd.Weight != nil {
		setClauses = append(setClauses, "weight = ?")
		args = append(args, *upd.Weight)
	}
	if upd.FitnessLevel != nil {
		setClauses = append(setClauses, "fitness_level = ?")
		args = append(args, *upd.FitnessLevel)
	}
	if len(setClauses) == 0 {
		return nil
	}
	args = append(args, userID)

	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") + " WHERE user_id = ?"
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return &StorageError{Op: "update users", Err: err}
	}
	return nil
}

// DeleteUser removes the account and, via the schema's cascades, every row it
// owns. Deleting an already-gone account returns (false, nil).
func (s *Store) DeleteUser(ctx context.Context, id int) (bool, error) {
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return false, &StorageError{Op: "delete users", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &StorageError{Op: "delete users", Err: err}
	}
	if n > 0 {
		s.log.Info("user deleted", zap.Int("id", id))
	}
	return n > 0, nil
}
