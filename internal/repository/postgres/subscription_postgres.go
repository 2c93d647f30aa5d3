package postgres

import (
	"context"
	"database/sql"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// SubscriptionPostgres is a PostgreSQL implementation of repository.SubscriptionRepository.
// Subscription writes and the owner's premium flag always change in one transaction.
type SubscriptionPostgres struct {
	db *sql.DB
}

// NewSubscriptionPostgres creates a new SubscriptionPostgres repository.
func NewSubscriptionPostgres(db *sql.DB) *SubscriptionPostgres {
	return &SubscriptionPostgres{db: db}
}

var _ repository.SubscriptionRepository = (*SubscriptionPostgres)(nil)

const subscriptionColumns = `id, user_id, plan_type, start_date, end_date, active, auto_renew`

func scanSubscription(row rowScanner) (*model.Subscription, error) {
	var (
		s    model.Subscription
		plan string
	)
	if err := row.Scan(&s.ID, &s.UserID, &plan, &s.StartDate, &s.EndDate, &s.Active, &s.AutoRenew); err != nil {
		return nil, err
	}
	s.PlanType = model.Plan(plan)
	return &s, nil
}

// FindByUser returns the user's subscription row regardless of state.
func (r *SubscriptionPostgres) FindByUser(ctx context.Context, userID int64) (*model.Subscription, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+subscriptionColumns+` FROM premium_subscriptions WHERE user_id = $1`, userID)
	return scanSubscription(row)
}

// FindActiveByUser returns the user's subscription when it is active.
func (r *SubscriptionPostgres) FindActiveByUser(ctx context.Context, userID int64) (*model.Subscription, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+subscriptionColumns+` FROM premium_subscriptions WHERE user_id = $1 AND active`, userID)
	return scanSubscription(row)
}

// Activate upserts the subscription row and flags the user premium until its end date.
func (r *SubscriptionPostgres) Activate(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	var stored *model.Subscription
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO premium_subscriptions (user_id, plan_type, start_date, end_date, active, auto_renew)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO UPDATE
			SET plan_type = EXCLUDED.plan_type,
			    start_date = EXCLUDED.start_date,
			    end_date = EXCLUDED.end_date,
			    active = EXCLUDED.active,
			    auto_renew = EXCLUDED.auto_renew
			RETURNING `+subscriptionColumns,
			sub.UserID, string(sub.PlanType), sub.StartDate, sub.EndDate, sub.Active, sub.AutoRenew,
		)
		s, err := scanSubscription(row)
		if err != nil {
			return err
		}
		stored = s

		_, err = tx.ExecContext(ctx,
			`UPDATE users SET premium_status = true, premium_expiry = $2, updated_at = now() WHERE id = $1`,
			sub.UserID, sub.EndDate,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Deactivate stores the subscription as inactive and removes the user's premium flag.
func (r *SubscriptionPostgres) Deactivate(ctx context.Context, sub *model.Subscription) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE premium_subscriptions SET active = $2, auto_renew = $3 WHERE id = $1`,
			sub.ID, sub.Active, sub.AutoRenew,
		); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE users SET premium_status = false, premium_expiry = NULL, updated_at = now() WHERE id = $1`,
			sub.UserID,
		)
		return err
	})
}
