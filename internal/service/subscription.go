package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/events"
	"storefront/internal/model"
	"storefront/internal/pkg/clock"
	"storefront/internal/repository"
)

// Messages returned alongside subscription changes.
const (
	MsgSubscribed = "Premium subscription activated successfully"
	MsgCancelled  = "Subscription cancelled successfully"
)

// SubscriptionService manages premium subscriptions.
type SubscriptionService interface {
	// Subscribe starts a plan for the user, reactivating an inactive subscription when one exists.
	Subscribe(ctx context.Context, userID int64, plan string) (*model.Subscription, error)
	// Cancel deactivates the user's active subscription.
	Cancel(ctx context.Context, userID int64) (*model.Subscription, error)
}

type subscriptionService struct {
	users     repository.UserRepository
	subs      repository.SubscriptionRepository
	publisher events.Publisher
	clock     clock.Clock
	loc       *time.Location
	logger    *slog.Logger
}

// NewSubscriptionService constructs a SubscriptionService. Dates are computed in loc.
func NewSubscriptionService(
	users repository.UserRepository,
	subs repository.SubscriptionRepository,
	publisher events.Publisher,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) SubscriptionService {
	if loc == nil {
		loc = time.UTC
	}
	return &subscriptionService{users: users, subs: subs, publisher: publisher, clock: clk, loc: loc, logger: logger}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID int64, plan string) (*model.Subscription, error) {
	p, ok := model.ParsePlan(plan)
	if !ok {
		return nil, ErrInvalidPlan
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.subs.FindActiveByUser(ctx, userID); err == nil {
		return nil, ErrAlreadySubscribed
	} else if !isNoRows(err) {
		return nil, fmt.Errorf("find active subscription: %w", err)
	}

	sub, err := s.subs.FindByUser(ctx, userID)
	switch {
	case err == nil:
	case isNoRows(err):
		sub = &model.Subscription{UserID: userID}
	default:
		return nil, fmt.Errorf("find subscription: %w", err)
	}

	today := model.NewDate(s.clock.Now().In(s.loc))
	sub.PlanType = p
	sub.StartDate = today
	sub.EndDate = endDate(today, p)
	sub.Active = true
	sub.AutoRenew = true

	stored, err := s.subs.Activate(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("activate subscription: %w", err)
	}

	if err := s.publisher.SubscriptionActivated(ctx, stored); err != nil {
		s.logger.Error("event_publish_failed",
			"event", events.SubscriptionActivatedKey,
			"user_id", userID,
			"error_message", err.Error(),
		)
	}
	return stored, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userID int64) (*model.Subscription, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	sub, err := s.subs.FindActiveByUser(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNoActiveSubscription
		}
		return nil, fmt.Errorf("find active subscription: %w", err)
	}

	sub.Active = false
	sub.AutoRenew = false
	if err := s.subs.Deactivate(ctx, sub); err != nil {
		return nil, fmt.Errorf("deactivate subscription: %w", err)
	}

	if err := s.publisher.SubscriptionCancelled(ctx, sub); err != nil {
		s.logger.Error("event_publish_failed",
			"event", events.SubscriptionCancelledKey,
			"user_id", userID,
			"error_message", err.Error(),
		)
	}
	return sub, nil
}

func (s *subscriptionService) ensureUser(ctx context.Context, userID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if isNoRows(err) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func endDate(start model.Date, p model.Plan) model.Date {
	if p == model.PlanYearly {
		return start.AddYears(1)
	}
	return start.AddMonths(1)
}
