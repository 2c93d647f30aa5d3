package view

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"storefront/internal/client"
	"storefront/internal/model"
)

type recordingNotifier struct{ toasts []Toast }

func (n *recordingNotifier) Notify(t Toast) { n.toasts = append(n.toasts, t) }

func (n *recordingNotifier) last() Toast {
	if len(n.toasts) == 0 {
		return Toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

type navigation struct {
	path  string
	query url.Values
}

type recordingNavigator struct{ visits []navigation }

func (n *recordingNavigator) Navigate(path string, query url.Values) {
	n.visits = append(n.visits, navigation{path: path, query: query})
}

type fakeSession struct {
	loggedIn bool
}

func (s fakeSession) LoggedIn() bool { return s.loggedIn }
func (s fakeSession) Token() string  { return "tok" }
func (s fakeSession) UserID() string { return "7" }

type mockProductAPI struct{ mock.Mock }

func (m *mockProductAPI) CompareProducts(ctx context.Context, ids []int64) ([]client.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.Product), args.Error(1)
}

type mockCartAPI struct{ mock.Mock }

func (m *mockCartAPI) AddToCart(ctx context.Context, productID int64) (*client.Cart, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Cart), args.Error(1)
}

type mockProfileAPI struct{ mock.Mock }

func (m *mockProfileAPI) GetProfile(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockProfileAPI) UpdateProfile(ctx context.Context, req client.UpdateProfileRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockProfileAPI) SubscribePremium(ctx context.Context, plan string) (*client.SubscriptionResponse, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.SubscriptionResponse), args.Error(1)
}

func (m *mockProfileAPI) CancelPremium(ctx context.Context) (*client.SubscriptionResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.SubscriptionResponse), args.Error(1)
}

type staticRecent struct {
	items []client.Product
	err   error
}

func (s staticRecent) List() ([]client.Product, error) { return s.items, s.err }

func i64(n int64) *int64     { return &n }
func f64(f float64) *float64 { return &f }
func str(s string) *string   { return &s }
func boolean(b bool) *bool   { return &b }
