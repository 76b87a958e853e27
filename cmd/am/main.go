// Command am is a CLI client for the Airmates flying-club platform.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/airmates/airmates-go/internal/api"
	"github.com/airmates/airmates-go/internal/config"
	"github.com/airmates/airmates-go/internal/credstore"
	"github.com/airmates/airmates-go/internal/errs"
	"github.com/airmates/airmates-go/internal/model"
	"github.com/airmates/airmates-go/internal/service"
	"github.com/airmates/airmates-go/internal/session"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// app bundles the process-wide components, constructed once in main and
// passed explicitly.
type app struct {
	mgr       *session.Manager
	fleet     *service.FleetClient
	bookings  *service.BookingsClient
	checkouts *service.CheckoutsClient
	squawks   *service.SquawksClient
	account   *service.AccountClient
}

func usage() {
	fmt.Fprintf(os.Stderr, `am CLI

Usage:
  am <cmd> [args]

Commands:
  version
  login      -email <e> -password <p>              (saves token)
  logout
  whoami                                           (validates stored token)
  dashboard
  fleet
  schedule   [-date YYYY-MM-DD]
  book       -aircraft <id> -date YYYY-MM-DD -start HH:MM -end HH:MM
             [-type SOLO|DUAL] [-instructor <id>] [-notes s] [-standby]
  cancel     -id <booking>
  checkouts
  checkout   -aircraft <id> -tach <reading> [-dest s] [-return ISO8601]
  checkin    -id <checkout> -tach <reading> [-fuel qty] [-notes s]
  squawk     -aircraft <id> -desc <s> [-category s] [-priority s]
  account
  profile    [-name s] [-phone s] [-address1 s] ... (PATCH profile fields)

Environment: AIRMATES_BASE_URL, AIRMATES_CONFIG_DIR, AIRMATES_DEBUG.
`)
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	if cmd == "version" {
		fmt.Printf("am %s (%s)\n", version, buildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	logger := zap.NewNop()
	if cfg.Debug {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	store := credstore.New(cfg.ConfigDir)
	client := api.New(cfg.BaseURL, store, logger)
	if cfg.RequestRate > 0 {
		client.SetRateLimit(cfg.RequestRate, cfg.RequestBurst)
	}

	auth := service.NewAuthClient(client)
	mgr := session.NewManager(auth, store, logger)
	mgr.Bind(client)

	a := &app{
		mgr:       mgr,
		fleet:     service.NewFleetClient(client),
		bookings:  service.NewBookingsClient(client),
		checkouts: service.NewCheckoutsClient(client),
		squawks:   service.NewSquawksClient(client),
		account:   service.NewAccountClient(client),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	switch cmd {
	case "login":
		a.cmdLogin(ctx, args)
	case "logout":
		a.mgr.Logout()
		fmt.Println("ok")
	case "whoami":
		a.cmdWhoami(ctx)
	case "dashboard":
		out, err := a.fleet.Dashboard(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "fleet":
		out, err := a.fleet.List(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "schedule":
		a.cmdSchedule(ctx, args)
	case "book":
		a.cmdBook(ctx, args)
	case "cancel":
		a.cmdCancel(ctx, args)
	case "checkouts":
		out, err := a.checkouts.List(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "checkout":
		a.cmdCheckOut(ctx, args)
	case "checkin":
		a.cmdCheckIn(ctx, args)
	case "squawk":
		a.cmdSquawk(ctx, args)
	case "account":
		out, err := a.account.MyAccount(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "profile":
		a.cmdProfile(ctx, args)
	default:
		usage()
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "need -email and -password")
		os.Exit(1)
	}
	if err := a.mgr.Login(ctx, *email, *password); err != nil {
		fail(err)
	}
	if u, ok := a.mgr.User(); ok {
		fmt.Printf("logged in as %s (%s)\n", u.Name, u.Email)
	}
}

func (a *app) cmdWhoami(ctx context.Context) {
	a.mgr.CheckAuth(ctx)
	if a.mgr.Status() != session.StatusAuthenticated {
		fmt.Println("not logged in")
		os.Exit(1)
	}
	u, _ := a.mgr.User()
	fmt.Printf("%s (%s) role=%s\n", u.Name, u.Email, u.Role)
	if exp, ok := a.mgr.TokenExpiry(); ok {
		fmt.Printf("token expires %s\n", exp.UTC().Format(time.RFC3339))
	}
}

func (a *app) cmdSchedule(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	date := fs.String("date", "", "day to list (YYYY-MM-DD, default today)")
	_ = fs.Parse(args)

	day, err := parseDay(*date)
	if err != nil {
		fail(err)
	}
	out, err := a.bookings.ListForDate(ctx, day)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func (a *app) cmdBook(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	aircraft := fs.String("aircraft", "", "aircraft id")
	date := fs.String("date", "", "day (YYYY-MM-DD)")
	start := fs.String("start", "08:00", "start time (HH:MM)")
	end := fs.String("end", "10:00", "end time (HH:MM)")
	typ := fs.String("type", string(model.BookingSolo), "SOLO or DUAL")
	instructor := fs.String("instructor", "", "instructor id (DUAL only)")
	notes := fs.String("notes", "", "notes")
	standby := fs.Bool("standby", false, "book as standby despite a conflict")
	_ = fs.Parse(args)
	if *aircraft == "" || *date == "" {
		fmt.Fprintln(os.Stderr, "need -aircraft and -date")
		os.Exit(1)
	}

	req := model.BookingRequest{
		AircraftID: *aircraft,
		StartDate:  fmt.Sprintf("%sT%s:00.000Z", *date, *start),
		EndDate:    fmt.Sprintf("%sT%s:00.000Z", *date, *end),
		StartTime:  *start,
		EndTime:    *end,
		Type:       model.BookingType(*typ),
	}
	if req.Type == model.BookingDual && *instructor != "" {
		req.InstructorID = instructor
	}
	if *notes != "" {
		req.Notes = notes
	}

	var (
		out model.Booking
		err error
	)
	if *standby {
		out, err = a.bookings.CreateStandby(ctx, req)
	} else {
		out, err = a.bookings.Create(ctx, req)
	}
	if errors.Is(err, errs.ErrConflict) {
		fmt.Fprintf(os.Stderr, "%s\nretry with -standby to book anyway\n", errText(err))
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func (a *app) cmdCancel(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "booking id")
	_ = fs.Parse(args)
	if *id == "" {
		fmt.Fprintln(os.Stderr, "need -id")
		os.Exit(1)
	}
	deleted, err := a.bookings.Cancel(ctx, *id)
	if err != nil {
		fail(err)
	}
	fmt.Println(map[bool]string{true: "cancelled", false: "not found"}[deleted])
}

func (a *app) cmdCheckOut(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	aircraft := fs.String("aircraft", "", "aircraft id")
	tach := fs.String("tach", "", "tach reading at departure")
	dest := fs.String("dest", "", "destination")
	ret := fs.String("return", "", "expected return (ISO-8601)")
	_ = fs.Parse(args)
	if *aircraft == "" || *tach == "" {
		fmt.Fprintln(os.Stderr, "need -aircraft and -tach")
		os.Exit(1)
	}

	req := model.CheckOutRequest{AircraftID: *aircraft, TachOut: *tach}
	if *dest != "" {
		req.Destination = dest
	}
	if *ret != "" {
		req.ExpectedReturn = ret
	}
	out, err := a.checkouts.CheckOut(ctx, req)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func (a *app) cmdCheckIn(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("checkin", flag.ExitOnError)
	id := fs.String("id", "", "checkout id")
	tach := fs.String("tach", "", "tach reading at return")
	fuel := fs.String("fuel", "", "fuel added")
	notes := fs.String("notes", "", "notes")
	_ = fs.Parse(args)
	if *id == "" || *tach == "" {
		fmt.Fprintln(os.Stderr, "need -id and -tach")
		os.Exit(1)
	}

	req := model.CheckInRequest{CheckoutID: *id, TachIn: *tach}
	if *fuel != "" {
		req.FuelAdded = fuel
	}
	if *notes != "" {
		req.Notes = notes
	}
	out, err := a.checkouts.CheckIn(ctx, req)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func (a *app) cmdSquawk(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("squawk", flag.ExitOnError)
	aircraft := fs.String("aircraft", "", "aircraft id")
	desc := fs.String("desc", "", "discrepancy description")
	category := fs.String("category", "GENERAL", "category")
	priority := fs.String("priority", "NORMAL", "priority")
	_ = fs.Parse(args)
	if *aircraft == "" || *desc == "" {
		fmt.Fprintln(os.Stderr, "need -aircraft and -desc")
		os.Exit(1)
	}

	out, err := a.squawks.Report(ctx, model.SquawkRequest{
		AircraftID:  *aircraft,
		Description: *desc,
		Category:    *category,
		Priority:    *priority,
	})
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func (a *app) cmdProfile(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	req := model.ProfileUpdateRequest{}
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Phone, "phone", "", "phone")
	fs.StringVar(&req.AddressLine1, "address1", "", "address line 1")
	fs.StringVar(&req.AddressLine2, "address2", "", "address line 2")
	fs.StringVar(&req.City, "city", "", "city")
	fs.StringVar(&req.State, "state", "", "state")
	fs.StringVar(&req.Zip, "zip", "", "zip")
	fs.StringVar(&req.EmergencyName, "emergency-name", "", "emergency contact name")
	fs.StringVar(&req.EmergencyPhone, "emergency-phone", "", "emergency contact phone")
	fs.StringVar(&req.EmergencyRelation, "emergency-relation", "", "emergency contact relation")
	fs.StringVar(&req.PilotCertNumber, "cert", "", "pilot certificate number")
	fs.StringVar(&req.MedicalClass, "medical", "", "medical class")
	fs.StringVar(&req.TotalHours, "hours", "", "total hours")
	_ = fs.Parse(args)

	out, err := a.account.UpdateProfile(ctx, req)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

// ---- helpers ----

// parseDay parses a YYYY-MM-DD argument, defaulting to today (UTC).
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad -date %q (want YYYY-MM-DD)", s)
	}
	return day, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// errText renders a pipeline error the way the UI would.
func errText(err error) string {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return "Session expired. Please log in again."
	case errors.Is(err, errs.ErrDecode):
		return fmt.Sprintf("Data error: %v", err)
	case errors.Is(err, errs.ErrNetwork):
		return fmt.Sprintf("Network error: %v", err)
	default:
		return err.Error()
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errText(err))
	os.Exit(1)
}
