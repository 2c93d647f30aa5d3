// Package view holds the storefront's page logic: what to load, what to submit and which
// notification or navigation follows. Rendering is left to the caller.
package view

import (
	"errors"
	"net/url"
	"time"

	"storefront/internal/client"
)

// DefaultToastDuration is how long a toast stays up unless it says otherwise.
const DefaultToastDuration = 3 * time.Second

// Toast is a transient user notification with an optional action button.
type Toast struct {
	Message  string
	Action   string
	Duration time.Duration
	// OnAction runs when the action button is pressed; nil for a plain dismiss.
	OnAction func()
}

// Notifier shows toasts.
type Notifier interface {
	Notify(t Toast)
}

// Navigator changes the current route.
type Navigator interface {
	Navigate(path string, query url.Values)
}

// Session is the auth collaborator: whether someone is signed in, and their credentials.
type Session interface {
	client.Session
	LoggedIn() bool
}

func closeToast(msg string) Toast {
	return Toast{Message: msg, Action: "Close", Duration: DefaultToastDuration}
}

// serverMessage prefers the message from the API's error envelope.
func serverMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
