// Command storefront is a terminal client for the storefront API: compare products,
// view them, and manage the signed-in user's profile and premium subscription.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"storefront/internal/client"
	"storefront/internal/config"
	"storefront/internal/logging"
	"storefront/internal/view"
)

const usage = `usage: storefront <command> [flags]

commands:
  compare <id1> <id2> [-add 1|2]   compare two products, optionally adding one to the cart
  view <id>                        show a product and remember it as recently viewed
  profile                          show the signed-in user's profile
  update [-name N] [-email E]      change name and email
  password -current C -new N -confirm N
  subscribe [-plan MONTHLY|YEARLY]
  cancel                           cancel the premium subscription
`

func main() {
	cfg := config.LoadClient()
	os.Exit(run(context.Background(), os.Args[1:], cfg, os.Stdout, os.Stderr))
}

type app struct {
	cfg      *config.ClientConfig
	logger   *slog.Logger
	session  envSession
	ui       terminal
	out      io.Writer
	products *client.ProductClient
	cart     *client.CartClient
	profile  *client.ProfileClient
	recent   *view.RecentlyViewed
}

func run(ctx context.Context, args []string, cfg *config.ClientConfig, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	logger := logging.NewWithWriter(stderr, cfg.LogLevel, time.Local)
	session := envSession{token: cfg.Token, userID: cfg.UserID}

	base, err := client.New(cfg.BaseURL, cfg.Timeout, session)
	if err != nil {
		logger.Error("client_init_failed", "error_message", err.Error())
		return 1
	}

	recentPath := cfg.RecentFile
	if recentPath == "" {
		recentPath = defaultRecentFile()
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		session:  session,
		ui:       terminal{w: stderr},
		out:      stdout,
		products: client.NewProductClient(base),
		cart:     client.NewCartClient(base),
		profile:  client.NewProfileClient(base),
		recent:   view.NewRecentlyViewed(recentPath),
	}

	requestID := uuid.NewString()
	ctx = client.WithRequestID(ctx, requestID)
	logger.Debug("command_start", "command", args[0], "request_id", requestID, "api_url", cfg.BaseURL)

	var cmdErr error
	switch args[0] {
	case "compare":
		cmdErr = a.compare(ctx, args[1:])
	case "view":
		cmdErr = a.viewProduct(ctx, args[1:])
	case "profile":
		cmdErr = a.showProfile(ctx)
	case "update":
		cmdErr = a.updateProfile(ctx, args[1:])
	case "password":
		cmdErr = a.changePassword(ctx, args[1:])
	case "subscribe":
		cmdErr = a.subscribe(ctx, args[1:])
	case "cancel":
		a.cancel(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	var ue usageError
	if errors.As(cmdErr, &ue) {
		fmt.Fprintf(stderr, "%s\n\n%s", ue.msg, usage)
		return 2
	}
	if cmdErr != nil {
		logger.Error("command_failed", "command", args[0], "request_id", requestID, "error_message", cmdErr.Error())
		return 1
	}
	return 0
}

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func defaultRecentFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "storefront", "recently_viewed.json")
}

func (a *app) newProfileView() *view.ProfileView {
	return view.NewProfileView(a.profile, a.session, a.recent, a.ui, a.ui)
}

func (a *app) compare(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	add := fs.Int("add", 0, "add product 1 or 2 to the cart")
	if err := fs.Parse(reorder(args)); err != nil {
		return usageError{msg: err.Error()}
	}

	v := view.NewCompareView(a.products, a.cart, a.session, a.ui, a.ui)
	query := url.Values{}
	if fs.NArg() > 0 {
		query.Set("id1", fs.Arg(0))
	}
	if fs.NArg() > 1 {
		query.Set("id2", fs.Arg(1))
	}
	v.Init(ctx, query)
	if v.Product1 == nil && v.Product2 == nil {
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\t%s\n", productName(v.Product1), productName(v.Product2))
	for _, line := range v.Table() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", line.Label, mark(line.Value1, line.Winner == view.WinnerProduct1), mark(line.Value2, line.Winner == view.WinnerProduct2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	switch *add {
	case 0:
	case 1:
		v.AddToCart(ctx, v.Product1)
	case 2:
		v.AddToCart(ctx, v.Product2)
	default:
		return usageError{msg: "-add must be 1 or 2"}
	}
	return nil
}

func (a *app) viewProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{msg: "view needs exactly one product id"}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return usageError{msg: fmt.Sprintf("invalid product id %q", args[0])}
	}

	p, err := a.products.GetProduct(ctx, id)
	if err != nil {
		a.ui.Notify(view.Toast{Message: "Failed to load product", Action: "Close", Duration: view.DefaultToastDuration})
		return nil
	}
	if err := a.recent.Add(*p); err != nil {
		a.logger.Warn("recently_viewed_save_failed", "error_message", err.Error())
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", p.Name)
	for _, row := range view.ComparisonRows {
		fmt.Fprintf(tw, "%s\t%s\n", row.Label, view.FormatValue(view.ValueOf(p, row.Key), row.Format))
	}
	if p.Description != "" {
		fmt.Fprintf(tw, "Description\t%s\n", p.Description)
	}
	return tw.Flush()
}

func (a *app) showProfile(ctx context.Context) error {
	v := a.newProfileView()
	v.Init(ctx)
	if v.User == nil {
		return nil
	}

	u := v.User
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email\t%s\n", u.Email)
	fmt.Fprintf(tw, "Role\t%s\n", u.Role)
	if u.PremiumStatus && u.PremiumExpiry != nil {
		fmt.Fprintf(tw, "Premium\tuntil %s\n", u.PremiumExpiry)
	} else {
		fmt.Fprintf(tw, "Premium\tno\n")
	}
	for i := range v.RecentlyViewed {
		p := &v.RecentlyViewed[i]
		label := ""
		if i == 0 {
			label = "Recently viewed"
		}
		fmt.Fprintf(tw, "%s\t#%d %s\n", label, view.ProductID(p), p.Name)
	}
	return tw.Flush()
}

func (a *app) updateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email address")
	if err := fs.Parse(args); err != nil {
		return usageError{msg: err.Error()}
	}
	if *name == "" && *email == "" {
		return usageError{msg: "update needs -name or -email"}
	}

	v := a.newProfileView()
	v.Init(ctx)
	if v.User == nil {
		return nil
	}
	form := v.ProfileForm
	if *name != "" {
		form.Name = *name
	}
	if *email != "" {
		form.Email = *email
	}
	if !form.Valid() {
		return usageError{msg: "name needs at least 2 characters and email must be a valid address"}
	}
	v.UpdateProfile(ctx, form)
	return nil
}

func (a *app) changePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("password", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var form view.PasswordForm
	fs.StringVar(&form.CurrentPassword, "current", "", "current password")
	fs.StringVar(&form.NewPassword, "new", "", "new password (at least 6 characters)")
	fs.StringVar(&form.ConfirmPassword, "confirm", "", "new password again")
	if err := fs.Parse(args); err != nil {
		return usageError{msg: err.Error()}
	}
	if !form.Valid() {
		return usageError{msg: "password needs -current, -new (6+ characters) and -confirm"}
	}

	v := a.newProfileView()
	if !a.session.LoggedIn() {
		v.Init(ctx)
		return nil
	}
	v.ChangePassword(ctx, form)
	return nil
}

func (a *app) subscribe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("subscribe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	plan := fs.String("plan", "MONTHLY", "MONTHLY or YEARLY")
	if err := fs.Parse(args); err != nil {
		return usageError{msg: err.Error()}
	}

	v := a.newProfileView()
	v.Init(ctx)
	if v.User == nil {
		return nil
	}
	v.SubscribePremium(ctx, *plan)
	if v.User.PremiumStatus && v.User.PremiumExpiry != nil {
		fmt.Fprintf(a.out, "Premium until %s\n", v.User.PremiumExpiry)
	}
	return nil
}

func (a *app) cancel(ctx context.Context) {
	v := a.newProfileView()
	v.Init(ctx)
	if v.User == nil {
		return
	}
	v.CancelPremium(ctx)
}

// reorder moves flags ahead of positional arguments so "compare 1 2 -add 1" parses.
func reorder(args []string) []string {
	var flags, rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 1 && arg[0] == '-' {
			flags = append(flags, arg)
			if i+1 < len(args) && !strings.Contains(arg, "=") {
				flags = append(flags, args[i+1])
				i++
			}
			continue
		}
		rest = append(rest, arg)
	}
	return append(flags, rest...)
}

func productName(p *client.Product) string {
	if p == nil {
		return "-"
	}
	return p.Name
}

func mark(s string, best bool) string {
	if best {
		return s + " *"
	}
	return s
}
