package main

import (
	"fmt"
	"io"
	"net/url"

	"storefront/internal/view"
)

// terminal renders toasts and navigations as lines on w.
// Actions are listed but never triggered; the command has already finished by then.
type terminal struct {
	w io.Writer
}

func (t terminal) Notify(toast view.Toast) {
	if toast.Action != "" && toast.Action != "Close" {
		fmt.Fprintf(t.w, "! %s [%s]\n", toast.Message, toast.Action)
		return
	}
	fmt.Fprintf(t.w, "! %s\n", toast.Message)
}

func (t terminal) Navigate(path string, query url.Values) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	fmt.Fprintf(t.w, "-> %s\n", path)
}

// envSession is the signed-in user taken from STOREFRONT_TOKEN and STOREFRONT_USER_ID.
type envSession struct {
	token  string
	userID string
}

func (s envSession) LoggedIn() bool { return s.token != "" && s.userID != "" }
func (s envSession) Token() string  { return s.token }
func (s envSession) UserID() string { return s.userID }
