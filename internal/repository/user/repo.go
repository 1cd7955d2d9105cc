package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/notifyx/notifyx/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides read and create access to the users table.
// The dispatch engine only ever reads from it.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns its identifier.
func (r *Repository) Create(ctx context.Context, u model.User) (int64, error) {
	query := `
		INSERT INTO users (email, phone, full_name)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	var id int64
	err := r.db.Master.QueryRowContext(ctx, query, u.Email, u.Phone, u.FullName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

// GetByID resolves a user's delivery destinations by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `
		SELECT id, email, phone, full_name, is_active, created_at
		FROM users
		WHERE id = $1;
    `

	var u model.User
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Phone, &u.FullName, &u.Active, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}
