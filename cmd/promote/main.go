// Command promote grants or revokes staff and admin roles directly in the
// database. It exists to bootstrap the first admin; after that promotions go
// through the admin API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"loyalty-server/internal/config"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// RoleStore is the part of the store the command needs
type RoleStore interface {
	GetProfileByID(ctx context.Context, id uuid.UUID) (store.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (store.Profile, error)
	AddProfileRole(ctx context.Context, id uuid.UUID, role string) (store.Profile, error)
	RemoveProfileRole(ctx context.Context, id uuid.UUID, role string) (store.Profile, error)
}

type options struct {
	email  string
	userID string
	role   string
	revoke bool
}

func main() {
	var opts options
	flag.StringVar(&opts.email, "email", "", "email of the profile to promote")
	flag.StringVar(&opts.userID, "user-id", "", "id of the profile to promote")
	flag.StringVar(&opts.role, "role", store.RoleAdmin, "role to grant: staff or admin")
	flag.BoolVar(&opts.revoke, "revoke", false, "revoke the role instead of granting it")
	flag.Parse()

	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dataStore, err := store.New(dbConfig.ConnectionString(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer dataStore.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	profile, err := run(ctx, &dataStore, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profile.ID.String()},
		observability.Field{Key: "role", Value: opts.role},
		observability.Field{Key: "revoke", Value: opts.revoke},
	), "profile roles changed from the command line")
	fmt.Printf("%s now has roles %s\n", profile.Email, strings.Join(profile.Roles, ", "))
}

func run(ctx context.Context, roles RoleStore, opts options) (store.Profile, error) {
	if opts.role != store.RoleStaff && opts.role != store.RoleAdmin {
		return store.Profile{}, fmt.Errorf("role must be %q or %q", store.RoleStaff, store.RoleAdmin)
	}
	if (opts.email == "") == (opts.userID == "") {
		return store.Profile{}, errors.New("exactly one of -email or -user-id is required")
	}

	var profile store.Profile
	var err error
	if opts.userID != "" {
		id, parseErr := uuid.Parse(opts.userID)
		if parseErr != nil {
			return store.Profile{}, fmt.Errorf("invalid user id: %w", parseErr)
		}
		profile, err = roles.GetProfileByID(ctx, id)
	} else {
		profile, err = roles.GetProfileByEmail(ctx, strings.ToLower(strings.TrimSpace(opts.email)))
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Profile{}, errors.New("profile not found; the user must sign up first")
		}
		return store.Profile{}, err
	}

	if opts.revoke {
		return roles.RemoveProfileRole(ctx, profile.ID, opts.role)
	}
	return roles.AddProfileRole(ctx, profile.ID, opts.role)
}
