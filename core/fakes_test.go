package core

import (
	"context"
	"errors"
	"fmt"
)

// fakeDirectory is a map-backed UserDirectory for tests.
type fakeDirectory struct {
	ids   map[string]string   // username -> userID
	roles map[string][]string // userID -> role slugs
	known []Role
}

func (d *fakeDirectory) LookupUserID(ctx context.Context, username string) (string, error) {
	_ = ctx
	id, ok := d.ids[username]
	if !ok {
		return "", ErrUserNotFound
	}
	return id, nil
}

func (d *fakeDirectory) ListRolesByUser(ctx context.Context, userID string) ([]string, error) {
	_ = ctx
	return d.roles[userID], nil
}

func (d *fakeDirectory) ListRoles(ctx context.Context) ([]Role, error) {
	_ = ctx
	return d.known, nil
}

func (d *fakeDirectory) ListUserIDs(ctx context.Context) ([]string, error) {
	_ = ctx
	var out []string
	for userID := range d.roles {
		out = append(out, userID)
	}
	return out, nil
}

// recordingDeleter records deletions and fails for IDs in failOn.
type recordingDeleter struct {
	deleted []string
	failOn  map[string]bool
}

func (d *recordingDeleter) DeleteUserCascade(ctx context.Context, userID string) error {
	_ = ctx
	if d.failOn[userID] {
		return fmt.Errorf("delete %s: host refused", userID)
	}
	d.deleted = append(d.deleted, userID)
	return nil
}

// brokenSettingsStore fails every operation.
type brokenSettingsStore struct{}

func (brokenSettingsStore) Load(ctx context.Context) (Settings, bool, error) {
	_ = ctx
	return Settings{}, false, errors.New("store unavailable")
}

func (brokenSettingsStore) Save(ctx context.Context, s Settings) error {
	_ = ctx
	return errors.New("store unavailable")
}
