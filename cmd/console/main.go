// A terminal client for the travel listings API. It drives the session kit
// end to end: the store is seeded from a file-backed role cache, sign-in and
// sign-out go through the gateway, and the menu is whatever the navigation
// gate enables for the current session.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wanderhub/travel-listings/internal/client"
	"github.com/wanderhub/travel-listings/internal/infrastructure/cache"
	"github.com/wanderhub/travel-listings/internal/session"
	"github.com/wanderhub/travel-listings/pkg/logger"
)

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	log := logger.Init(logger.Options{Level: "warn", Pretty: true})

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	fileCache, err := cache.NewFileCache(filepath.Join(home, ".travel-listings", "session.json"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open session cache:", err)
		os.Exit(1)
	}

	api := client.New(baseURL)

	store := session.NewStore(fileCache, log)
	resolver := session.NewResolver(fileCache, api, log)
	gateway := session.NewGateway(api, store, resolver, log)

	ctx := context.Background()

	// Resume a previous session: prime the token, seed the store with the
	// cached identity and provisional role, then let the resolver confirm.
	if userID, token := fileCache.Load(); token != "" {
		api.SetToken(token)
		if id, err := gateway.CurrentSession(ctx); err == nil && id.UserID == userID {
			store.Bootstrap(ctx, userID)
			resolver.ResolveInto(ctx, store)
		} else {
			api.SetToken("")
			_ = fileCache.Del(ctx, userID)
		}
	}

	unsubscribe := gateway.Subscribe(func(ev session.Event) {
		switch ev {
		case session.EventSignedIn:
			cur := store.Current()
			_ = fileCache.SaveToken(cur.UserID, api.Token())
		case session.EventSignedOut:
			fmt.Println("signed out")
		}
	})
	defer unsubscribe()

	run(ctx, store, gateway, api)
}

func run(ctx context.Context, store *session.Store, gateway *session.Gateway, api *client.Client) {
	in := bufio.NewScanner(os.Stdin)

	for {
		cur := store.Current()
		actions := session.VisibleActions(cur)

		fmt.Printf("\n[%s] available actions:\n", cur.State())
		for i, a := range actions {
			fmt.Printf("  %d) %s\n", i+1, a)
		}
		fmt.Print("choice (q to quit): ")

		if !in.Scan() {
			return
		}
		choice := strings.TrimSpace(in.Text())
		if choice == "q" {
			return
		}

		var picked session.Action
		for i, a := range actions {
			if choice == fmt.Sprint(i+1) {
				picked = a
			}
		}
		if picked == "" {
			fmt.Println("unknown choice")
			continue
		}

		if err := dispatch(ctx, picked, in, gateway, api); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func dispatch(ctx context.Context, action session.Action, in *bufio.Scanner, gateway *session.Gateway, api *client.Client) error {
	switch action {
	case session.ActionLogin:
		email := prompt(in, "email")
		password := prompt(in, "password")
		return gateway.SignIn(ctx, email, password)

	case session.ActionRegister:
		name := prompt(in, "name")
		email := prompt(in, "email")
		password := prompt(in, "password")
		return gateway.SignUp(ctx, name, email, password)

	case session.ActionSignOut:
		return gateway.SignOut(ctx)

	case session.ActionBrowseListings:
		listings, primary, err := api.Listings(ctx)
		if err != nil {
			return err
		}
		for _, l := range listings {
			fmt.Printf("  %s  %-30s  %.2f\n", l.ID, l.Title, l.Price)
		}
		fmt.Println("listing action:", primary)
		return nil

	case session.ActionViewOwnBookings:
		bookings, err := api.Bookings(ctx)
		if err != nil {
			return err
		}
		for _, b := range bookings {
			fmt.Printf("  %-30s  %s → %s  %.2f\n",
				b.ListingTitle,
				b.From.Format("2006-01-02"),
				b.To.Format("2006-01-02"),
				b.Subtotal)
		}
		return nil

	case session.ActionBookListing:
		listingID := prompt(in, "listing id")
		from, err := time.Parse("2006-01-02", prompt(in, "check-in (YYYY-MM-DD)"))
		if err != nil {
			return err
		}
		to, err := time.Parse("2006-01-02", prompt(in, "check-out (YYYY-MM-DD)"))
		if err != nil {
			return err
		}
		booking, err := api.CreateBooking(ctx, listingID, from, to, 2)
		if err != nil {
			return err
		}
		fmt.Printf("booked %s for %.2f\n", booking.ListingTitle, booking.Subtotal)
		return nil

	default:
		fmt.Println(action, "is available in the web console")
		return nil
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label + ": ")
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
