package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee-admin/internal/models"
	"go.uber.org/zap"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (int64, error) // Returns the new user ID
}

// sqliteUserRepository implements UserRepository for SQLite
type sqliteUserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteUserRepository creates a new UserRepository backed by SQLite
func NewSQLiteUserRepository(db *sql.DB, logger *zap.Logger) UserRepository {
	return &sqliteUserRepository{db: db, logger: logger}
}

// FindByEmail retrieves a user by email. Registration never enforced email
// uniqueness at the schema level, so this returns the first matching row.
func (r *sqliteUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, phone, password_hash FROM users WHERE email = ? LIMIT 1`
	user := &models.User{}
	var phone sql.NullString

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&phone,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		r.logger.Error("Error querying user by email", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("error finding user by email %s: %w", email, err)
	}
	if phone.Valid {
		user.Phone = phone.String
	}

	return user, nil
}

// FindByID retrieves a user by their ID
func (r *sqliteUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, name, email, phone, password_hash FROM users WHERE id = ?`
	user := &models.User{}
	var phone sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&phone,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Warn("User not found by ID", zap.Int64("id", id))
			return nil, nil
		}
		r.logger.Error("Error querying user by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error finding user by ID %d: %w", id, err)
	}
	if phone.Valid {
		user.Phone = phone.String
	}

	return user, nil
}

// CreateUser inserts a new user row and returns the auto-assigned ID
func (r *sqliteUserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	query := `INSERT INTO users (name, email, phone, password_hash) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
	)
	if err != nil {
		r.logger.Error("Error creating user", zap.String("email", user.Email), zap.Error(err))
		return 0, fmt.Errorf("error creating user %s: %w", user.Email, err)
	}

	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new user id: %w", err)
	}

	user.ID = newID
	r.logger.Info("User created successfully", zap.String("email", user.Email), zap.Int64("newID", newID))
	return newID, nil
}
