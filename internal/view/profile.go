package view

import (
	"context"
	"net/url"
	"time"

	"storefront/internal/client"
	"storefront/internal/model"
	"storefront/internal/pkg/validate"
)

// ProfileForm holds the editable account details.
type ProfileForm struct {
	Name  string
	Email string
}

// Valid requires a name of at least two characters and a well-formed email.
func (f ProfileForm) Valid() bool {
	return validate.Required(f.Name) && validate.MinLen(f.Name, 2) &&
		validate.Required(f.Email) && validate.Email(f.Email)
}

// PasswordForm holds a password change. Matching of the confirmation is checked separately.
type PasswordForm struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func (f PasswordForm) Valid() bool {
	return validate.Required(f.CurrentPassword) &&
		validate.Required(f.NewPassword) && validate.MinLen(f.NewPassword, 6) &&
		validate.Required(f.ConfirmPassword)
}

// ProfileAPI is the account endpoints the profile page uses.
type ProfileAPI interface {
	GetProfile(ctx context.Context) (*model.User, error)
	UpdateProfile(ctx context.Context, req client.UpdateProfileRequest) (*model.User, error)
	SubscribePremium(ctx context.Context, plan string) (*client.SubscriptionResponse, error)
	CancelPremium(ctx context.Context) (*client.SubscriptionResponse, error)
}

// RecentStore lists recently viewed products, most recent first.
type RecentStore interface {
	List() ([]client.Product, error)
}

// ProfileView is the signed-in user's account page.
type ProfileView struct {
	api      ProfileAPI
	session  Session
	recent   RecentStore
	notifier Notifier
	nav      Navigator

	User           *model.User
	ProfileForm    ProfileForm
	PasswordForm   PasswordForm
	RecentlyViewed []client.Product

	Loading     bool
	Saving      bool
	Subscribing bool
}

func NewProfileView(api ProfileAPI, session Session, recent RecentStore, notifier Notifier, nav Navigator) *ProfileView {
	return &ProfileView{
		api:      api,
		session:  session,
		recent:   recent,
		notifier: notifier,
		nav:      nav,
		Loading:  true,
	}
}

// Init sends anonymous users to the login page; otherwise it loads the profile and the
// recently viewed list.
func (v *ProfileView) Init(ctx context.Context) {
	if v.session == nil || !v.session.LoggedIn() {
		v.nav.Navigate("/login", url.Values{"returnUrl": {"/profile"}})
		return
	}
	v.LoadProfile(ctx)

	if v.recent != nil {
		// An unreadable history just shows as empty.
		if items, err := v.recent.List(); err == nil {
			v.RecentlyViewed = items
		}
	}
}

func (v *ProfileView) LoadProfile(ctx context.Context) {
	v.Loading = true
	defer func() { v.Loading = false }()

	u, err := v.api.GetProfile(ctx)
	if err != nil {
		v.notifier.Notify(closeToast("Failed to load profile"))
		return
	}
	v.User = u
	v.ProfileForm = ProfileForm{Name: u.Name, Email: u.Email}
}

// UpdateProfile submits the profile form. An invalid form sends nothing.
func (v *ProfileView) UpdateProfile(ctx context.Context, form ProfileForm) {
	v.ProfileForm = form
	if !form.Valid() {
		return
	}

	v.Saving = true
	defer func() { v.Saving = false }()

	u, err := v.api.UpdateProfile(ctx, client.UpdateProfileRequest{Name: form.Name, Email: form.Email})
	if err != nil {
		v.notifier.Notify(closeToast(serverMessage(err, "Failed to update profile")))
		return
	}
	v.User = u
	v.notifier.Notify(closeToast("Profile updated successfully"))
}

// ChangePassword submits the password form. Only the current and new passwords are sent.
func (v *ProfileView) ChangePassword(ctx context.Context, form PasswordForm) {
	v.PasswordForm = form
	if !form.Valid() {
		return
	}
	if form.NewPassword != form.ConfirmPassword {
		v.notifier.Notify(closeToast("Passwords do not match"))
		return
	}

	v.Saving = true
	defer func() { v.Saving = false }()

	_, err := v.api.UpdateProfile(ctx, client.UpdateProfileRequest{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
	if err != nil {
		v.notifier.Notify(closeToast(serverMessage(err, "Failed to change password")))
		return
	}
	v.PasswordForm = PasswordForm{}
	v.notifier.Notify(closeToast("Password changed successfully"))
}

// SubscribePremium subscribes to plan (MONTHLY when empty) and marks the loaded user premium.
func (v *ProfileView) SubscribePremium(ctx context.Context, plan string) {
	v.Subscribing = true
	defer func() { v.Subscribing = false }()

	res, err := v.api.SubscribePremium(ctx, plan)
	if err != nil {
		v.notifier.Notify(closeToast(serverMessage(err, "Failed to subscribe")))
		return
	}
	if v.User != nil && res.EndDate != nil {
		end := *res.EndDate
		v.User.PremiumStatus = true
		v.User.PremiumExpiry = &end
	}

	msg := res.Message
	if msg == "" {
		msg = "Welcome to Premium! Enjoy your benefits."
	}
	t := closeToast(msg)
	t.Duration = 5 * time.Second
	v.notifier.Notify(t)
}

// CancelPremium ends the subscription and clears the loaded user's premium state.
func (v *ProfileView) CancelPremium(ctx context.Context) {
	v.Subscribing = true
	defer func() { v.Subscribing = false }()

	res, err := v.api.CancelPremium(ctx)
	if err != nil {
		v.notifier.Notify(closeToast(serverMessage(err, "Failed to cancel subscription")))
		return
	}
	if v.User != nil {
		v.User.PremiumStatus = false
		v.User.PremiumExpiry = nil
	}

	msg := res.Message
	if msg == "" {
		msg = "Subscription cancelled"
	}
	v.notifier.Notify(closeToast(msg))
}

// ViewProduct opens the product page for a positive id.
func (v *ProfileView) ViewProduct(id int64) {
	viewProduct(v.nav, id)
}
