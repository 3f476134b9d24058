package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	reaperhttp "github.com/louddog/userreaper/adapters/http"
	"github.com/louddog/userreaper/core"
	memorystore "github.com/louddog/userreaper/storage/memory"
)

type config struct {
	ListenAddr  string
	AdminSecret string
}

func main() {
	cfg := loadConfig()

	dir := newDevDirectory()
	logins := memorystore.NewLogins()

	svc := core.NewService(core.Config{}).
		WithLoginStore(logins).
		WithSettingsStore(core.NewKVSettingsStore(memorystore.NewKV())).
		WithDirectory(dir).
		WithDeleter(dir)

	if err := svc.Activate(context.Background(), time.Now()); err != nil {
		fatal(err)
	}

	api := reaperhttp.NewService(svc)
	if cfg.AdminSecret != "" {
		api = api.WithAdminSecret([]byte(cfg.AdminSecret))
	}

	log.Printf("[reaper/devserver] listening on %s (users seeded: %d)", cfg.ListenAddr, len(dir.users))
	if err := http.ListenAndServe(cfg.ListenAddr, api.APIHandler()); err != nil {
		fatal(err)
	}
}

func loadConfig() *config {
	addr := strings.TrimSpace(os.Getenv("REAPER_LISTEN_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	return &config{
		ListenAddr:  addr,
		AdminSecret: strings.TrimSpace(os.Getenv("REAPER_ADMIN_SECRET")),
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "reaper-devserver: %v\n", err)
	os.Exit(1)
}

// devDirectory is a fixture user directory for local development. Deleting a user
// removes it from the fixture set; there is no content to cascade.
type devDirectory struct {
	mu    sync.Mutex
	users map[string]devUser // userID -> user
}

type devUser struct {
	Username string
	Roles    []string
}

func newDevDirectory() *devDirectory {
	return &devDirectory{users: map[string]devUser{
		"u1": {Username: "alice", Roles: []string{"administrator"}},
		"u2": {Username: "bob", Roles: []string{"author"}},
		"u3": {Username: "carol", Roles: []string{"subscriber"}},
		"u4": {Username: "dave", Roles: []string{"contributor", "subscriber"}},
	}}
}

func (d *devDirectory) LookupUserID(ctx context.Context, username string) (string, error) {
	_ = ctx
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, u := range d.users {
		if u.Username == username {
			return id, nil
		}
	}
	return "", core.ErrUserNotFound
}

func (d *devDirectory) ListRolesByUser(ctx context.Context, userID string) ([]string, error) {
	_ = ctx
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[userID]
	if !ok {
		return nil, nil
	}
	return append([]string(nil), u.Roles...), nil
}

func (d *devDirectory) ListRoles(ctx context.Context) ([]core.Role, error) {
	_ = ctx
	return []core.Role{
		{Slug: "administrator", Name: "Administrator"},
		{Slug: "author", Name: "Author"},
		{Slug: "contributor", Name: "Contributor"},
		{Slug: "subscriber", Name: "Subscriber"},
	}, nil
}

func (d *devDirectory) ListUserIDs(ctx context.Context) ([]string, error) {
	_ = ctx
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]string, 0, len(d.users))
	for id := range d.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (d *devDirectory) DeleteUserCascade(ctx context.Context, userID string) error {
	_ = ctx
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.users, userID)
	return nil
}
