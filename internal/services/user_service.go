package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/isdelr/auth-service-be/internal/models"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// UserStore defines the persistence contract the auth workflow depends on.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, email, passwordHash, name string) (models.User, error)
}

// UserService provides user persistence on top of SQLite.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// NormalizeEmail fixes the uniqueness comparison policy: emails are trimmed
// and lowercased before every store and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail retrieves a single user by email, including the password hash.
// Returns ErrUserNotFound when no account has that email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?",
		NormalizeEmail(email))
	return scanUser(row)
}

// FindByID retrieves a single user by their ID.
func (s *UserService) FindByID(ctx context.Context, id string) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, name, password_hash, created_at FROM users WHERE id = ?",
		id)
	return scanUser(row)
}

// Create inserts a new user. An empty passwordHash is stored as NULL so that
// accounts created for future non-password providers can never pass password
// login. A uniqueness violation on email, such as two concurrent signups
// racing past the pre-check, is reported as ErrEmailTaken.
func (s *UserService) Create(ctx context.Context, email, passwordHash, name string) (models.User, error) {
	user := models.User{
		ID:           uuid.New().String(),
		Email:        NormalizeEmail(email),
		Name:         name,
		PasswordHash: passwordHash,
	}

	var hash sql.NullString
	if passwordHash != "" {
		hash = sql.NullString{String: passwordHash, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users(id, email, name, password_hash) VALUES(?, ?, ?, ?)",
		user.ID, user.Email, user.Name, hash)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var hash sql.NullString
	err := row.Scan(&user.ID, &user.Email, &user.Name, &hash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	user.PasswordHash = hash.String
	return user, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
