package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"storefront/internal/config"
	"storefront/internal/model"
	"storefront/internal/pkg/clock"
)

const publishTimeout = 3 * time.Second

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes JSON envelopes to a durable topic exchange.
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	producer string
	clock    clock.Clock
}

var _ Publisher = (*RabbitPublisher)(nil)

// Dial connects to the broker and declares the events exchange.
func Dial(cfg config.AMQPConfig) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := newRabbitPublisher(ch, cfg.Exchange, cfg.Producer, clock.NewRealClock())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newRabbitPublisher(ch channel, exchange, producer string, clk clock.Clock) (*RabbitPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &RabbitPublisher{ch: ch, exchange: exchange, producer: producer, clock: clk}, nil
}

func (p *RabbitPublisher) SubscriptionActivated(ctx context.Context, sub *model.Subscription) error {
	return publish(ctx, p, "SubscriptionActivated", SubscriptionActivatedKey, sub.UserID, payloadOf(sub))
}

func (p *RabbitPublisher) SubscriptionCancelled(ctx context.Context, sub *model.Subscription) error {
	return publish(ctx, p, "SubscriptionCancelled", SubscriptionCancelledKey, sub.UserID, payloadOf(sub))
}

// Close closes the channel and, when owned, the connection.
func (p *RabbitPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func payloadOf(sub *model.Subscription) SubscriptionChanged {
	return SubscriptionChanged{
		UserID:    sub.UserID,
		PlanType:  sub.PlanType,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		Active:    sub.Active,
	}
}

func publish[T any](ctx context.Context, p *RabbitPublisher, name, key string, userID int64, payload T) error {
	env := Envelope[T]{
		EventName:    name,
		EventVersion: 1,
		EventID:      uuid.NewString(),
		Producer:     p.producer,
		PartitionKey: strconv.FormatInt(userID, 10),
		OccurredAt:   p.clock.Now().UTC(),
		Payload:      payload,
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(pubCtx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    env.EventID,
		Timestamp:    env.OccurredAt,
		Type:         name,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return nil
}
