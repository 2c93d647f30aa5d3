//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"storefront/internal/client"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/database/migration"
	"storefront/internal/database/seed"
	"storefront/internal/events"
	handlers "storefront/internal/http/handler"
	"storefront/internal/http/middleware"
	"storefront/internal/logging"
	"storefront/internal/model"
	"storefront/internal/pkg/clock"
	"storefront/internal/repository/postgres"
	"storefront/internal/service"
)

const (
	exchange = "storefront.events"
	alice    = "6"
)

type session struct{ userID string }

func (s session) Token() string  { return "integration" }
func (s session) UserID() string { return s.userID }

func TestStorefrontIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	pgC, dbCfg := startPostgres(ctx, t)
	defer terminateContainer(t, pgC)

	rabbitC, rabbitURL := startRabbitMQ(ctx, t)
	defer terminateContainer(t, rabbitC)

	app := startStorefront(ctx, t, dbCfg, rabbitURL)
	defer app.stop()

	conn, err := amqp.Dial(rabbitURL)
	require.NoError(t, err)
	defer conn.Close()
	deliveries := bindEvents(t, conn)

	c, err := client.New(app.baseURL, 5*time.Second, session{userID: alice})
	require.NoError(t, err)
	profiles := client.NewProfileClient(c)
	products := client.NewProductClient(c)
	carts := client.NewCartClient(c)

	user, err := profiles.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.False(t, user.PremiumStatus)

	sub, err := profiles.SubscribePremium(ctx, "")
	require.NoError(t, err)
	require.True(t, sub.Active)
	require.Equal(t, string(model.PlanMonthly), sub.PlanType)
	require.NotNil(t, sub.EndDate)
	require.Equal(t, service.MsgSubscribed, sub.Message)

	activated := waitForEvent(ctx, t, deliveries, events.SubscriptionActivatedKey)
	require.Equal(t, int64(6), activated.Payload.UserID)
	require.Equal(t, *sub.EndDate, activated.Payload.EndDate)

	user, err = profiles.GetProfile(ctx)
	require.NoError(t, err)
	require.True(t, user.PremiumStatus)
	require.NotNil(t, user.PremiumExpiry)
	require.Equal(t, *sub.EndDate, *user.PremiumExpiry)

	_, err = profiles.SubscribePremium(ctx, "YEARLY")
	requireAPIError(t, err, http.StatusConflict, "ALREADY_SUBSCRIBED")

	cancelled, err := profiles.CancelPremium(ctx)
	require.NoError(t, err)
	require.False(t, cancelled.Active)
	require.Equal(t, service.MsgCancelled, cancelled.Message)
	waitForEvent(ctx, t, deliveries, events.SubscriptionCancelledKey)

	_, err = profiles.CancelPremium(ctx)
	requireAPIError(t, err, http.StatusNotFound, "NO_ACTIVE_SUBSCRIPTION")

	compared, err := products.CompareProducts(ctx, []int64{2, 1})
	require.NoError(t, err)
	require.Len(t, compared, 2)
	require.Equal(t, int64(2), *compared[0].ProductID)
	require.Equal(t, int64(1), *compared[1].ProductID)

	_, err = products.CompareProducts(ctx, []int64{1})
	requireAPIError(t, err, http.StatusBadRequest, "VALIDATION_ERROR")

	cart, err := carts.AddToCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, int64(1), cart.Items[0].ProductID)

	cart, err = carts.AddToCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Quantity)
}

type storefrontApp struct {
	baseURL string
	stop    func()
}

func startStorefront(ctx context.Context, t *testing.T, dbCfg config.DatabaseConfig, rabbitURL string) *storefrontApp {
	t.Helper()

	logger := logging.Discard()

	db, err := database.NewPostgres(ctx, dbCfg)
	require.NoError(t, err)
	require.NoError(t, migration.EnsureMigrated(ctx, db, logger, dbCfg.Host))
	require.NoError(t, seed.Run(ctx, db, logger))

	publisher, err := events.Dial(config.AMQPConfig{URL: rabbitURL, Exchange: exchange, Producer: "storefront-it"})
	require.NoError(t, err)

	users := postgres.NewUserPostgres(db)
	productRepo := postgres.NewProductPostgres(db)
	svc := handlers.Services{
		Profile:      service.NewProfileService(users, nil, time.Minute, logger),
		Subscription: service.NewSubscriptionService(users, postgres.NewSubscriptionPostgres(db), publisher, clock.NewRealClock(), time.UTC, logger),
		Product:      service.NewProductService(productRepo, nil, time.Minute, logger),
		Review:       service.NewReviewService(productRepo, postgres.NewReviewPostgres(db)),
		Cart:         service.NewCartService(productRepo, postgres.NewCartPostgres(db)),
	}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(), DisableStartupMessage: true})
	app.Use(middleware.RequestID())
	handlers.RegisterRoutes(app, db, svc)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		if err := app.Listener(ln); err != nil {
			errCh <- err
		}
	}()

	return &storefrontApp{
		baseURL: fmt.Sprintf("http://%s", ln.Addr().String()),
		stop: func() {
			_ = app.ShutdownWithTimeout(5 * time.Second)
			_ = publisher.Close()
			closeDB(t, db)

			select {
			case err := <-errCh:
				t.Logf("server error: %v", err)
			default:
			}
		},
	}
}

func closeDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Logf("close db: %v", err)
	}
}

func startPostgres(ctx context.Context, t *testing.T) (testcontainers.Container, config.DatabaseConfig) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		Env:          map[string]string{"POSTGRES_PASSWORD": "postgres", "POSTGRES_USER": "postgres", "POSTGRES_DB": "storefront"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return container, config.DatabaseConfig{
		Host:     host,
		Port:     mappedPort.Port(),
		User:     "postgres",
		Password: "postgres",
		Name:     "storefront",
		SSLMode:  "disable",
	}
}

func startRabbitMQ(ctx context.Context, t *testing.T) (testcontainers.Container, string) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3-management",
		ExposedPorts: []string{"5672/tcp", "15672/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5672/tcp"),
			wait.ForLog("Server startup complete"),
		).WithDeadline(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)

	return container, fmt.Sprintf("amqp://guest:guest@%s:%s/", host, mappedPort.Port())
}

func terminateContainer(t *testing.T, c testcontainers.Container) {
	t.Helper()
	terminateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, c.Terminate(terminateCtx))
}

// bindEvents declares an exclusive queue bound to every subscription event.
func bindEvents(t *testing.T, conn *amqp.Connection) <-chan amqp.Delivery {
	t.Helper()

	ch, err := conn.Channel()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ch.Close() })

	require.NoError(t, ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil))
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "subscription.#", exchange, false, nil))

	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)
	return deliveries
}

func waitForEvent(ctx context.Context, t *testing.T, deliveries <-chan amqp.Delivery, key string) events.Envelope[events.SubscriptionChanged] {
	t.Helper()

	timeout := time.After(10 * time.Second)
	for {
		select {
		case d, ok := <-deliveries:
			require.True(t, ok, "delivery channel closed")
			if d.RoutingKey != key {
				continue
			}
			var env events.Envelope[events.SubscriptionChanged]
			require.NoError(t, json.Unmarshal(d.Body, &env))
			return env
		case <-timeout:
			t.Fatalf("timed out waiting for %s", key)
		case <-ctx.Done():
			t.Fatalf("context done waiting for %s: %v", key, ctx.Err())
		}
	}
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.Status)
	require.Equal(t, code, apiErr.Code)
}
