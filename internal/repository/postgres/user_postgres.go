package postgres

import (
	"context"
	"database/sql"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, name, email, phone, role, premium_status, premium_expiry, avatar_key, password_hash, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	var (
		u       model.User
		role    string
		expiry  sql.Null[model.Date]
		updated sql.NullTime
	)
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&role,
		&u.PremiumStatus,
		&expiry,
		&u.AvatarKey,
		&u.PasswordHash,
		&u.CreatedAt,
		&updated,
	); err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	if expiry.Valid {
		d := expiry.V
		u.PremiumExpiry = &d
	}
	if updated.Valid {
		u.UpdatedAt = &updated.Time
	}
	return &u, nil
}

// FindByID fetches a single user by id.
func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// EmailTaken reports whether email (case-insensitive) belongs to a user other than excludeID.
func (r *UserPostgres) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1) AND id <> $2)`
	var taken bool
	if err := r.db.QueryRowContext(ctx, q, email, excludeID).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

// UpdateProfile stores the editable profile fields and returns the updated row.
func (r *UserPostgres) UpdateProfile(ctx context.Context, u *model.User) (*model.User, error) {
	q := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, avatar_key = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash, u.AvatarKey)
	return scanUser(row)
}
