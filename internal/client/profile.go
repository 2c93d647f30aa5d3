package client

import (
	"context"
	"net/http"

	"storefront/internal/model"
)

const defaultPlan = "MONTHLY"

// ProfileClient calls the profile and subscription endpoints.
type ProfileClient struct{ c *Client }

// NewProfileClient returns a ProfileClient sending through c.
func NewProfileClient(c *Client) *ProfileClient { return &ProfileClient{c: c} }

// GetProfile fetches the signed-in user.
func (pc *ProfileClient) GetProfile(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := pc.c.Do(ctx, http.MethodGet, "/api/user/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile applies req and returns the updated user.
func (pc *ProfileClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*model.User, error) {
	var u model.User
	if err := pc.c.Do(ctx, http.MethodPut, "/api/user/profile", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SubscribePremium subscribes to plan, MONTHLY when plan is empty.
func (pc *ProfileClient) SubscribePremium(ctx context.Context, plan string) (*SubscriptionResponse, error) {
	if plan == "" {
		plan = defaultPlan
	}
	var res SubscriptionResponse
	body := map[string]string{"planType": plan}
	if err := pc.c.Do(ctx, http.MethodPost, "/api/user/subscription/subscribe", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelPremium cancels the active premium subscription.
func (pc *ProfileClient) CancelPremium(ctx context.Context) (*SubscriptionResponse, error) {
	var res SubscriptionResponse
	if err := pc.c.Do(ctx, http.MethodDelete, "/api/user/subscription/cancel", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
