package events

import (
	"context"
	"time"

	"storefront/internal/model"
)

// Routing keys on the storefront topic exchange.
const (
	SubscriptionActivatedKey = "subscription.activated.v1"
	SubscriptionCancelledKey = "subscription.cancelled.v1"
)

// Envelope wraps every published payload.
type Envelope[T any] struct {
	EventName    string    `json:"eventName"`
	EventVersion int       `json:"eventVersion"`
	EventID      string    `json:"eventId"`
	Producer     string    `json:"producer"`
	PartitionKey string    `json:"partitionKey"`
	OccurredAt   time.Time `json:"occurredAt"`
	Payload      T         `json:"payload"`
}

// SubscriptionChanged is the payload of both subscription events.
type SubscriptionChanged struct {
	UserID    int64      `json:"userId"`
	PlanType  model.Plan `json:"planType"`
	StartDate model.Date `json:"startDate"`
	EndDate   model.Date `json:"endDate"`
	Active    bool       `json:"active"`
}

// Publisher emits subscription lifecycle events.
type Publisher interface {
	SubscriptionActivated(ctx context.Context, sub *model.Subscription) error
	SubscriptionCancelled(ctx context.Context, sub *model.Subscription) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) SubscriptionActivated(context.Context, *model.Subscription) error { return nil }
func (Noop) SubscriptionCancelled(context.Context, *model.Subscription) error { return nil }
func (Noop) Close() error                                                      { return nil }
