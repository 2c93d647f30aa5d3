package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrAvatarNotFound       = errors.New("avatar not found")
	ErrEmailTaken           = errors.New("email is already in use")
	ErrInvalidPassword      = errors.New("current password is incorrect")
	ErrInvalidPlan          = errors.New("plan type must be MONTHLY or YEARLY")
	ErrAlreadySubscribed    = errors.New("user already has an active premium subscription")
	ErrNoActiveSubscription = errors.New("no active subscription found")
	ErrAlreadyReviewed      = errors.New("you have already reviewed this product")
	ErrReaderNil            = errors.New("reader is nil")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// missingReference maps a foreign key violation to the not-found error of the
// referenced row, or returns nil. An X-User-Id naming no user lands here.
func missingReference(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "product_id") {
		return ErrProductNotFound
	}
	return ErrUserNotFound
}
