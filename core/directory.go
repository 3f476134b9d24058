package core

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when a username cannot be resolved to a user ID.
var ErrUserNotFound = errors.New("user not found")

// Role is a host-platform role as rendered in the admin UI.
type Role struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// UserDirectory is the host platform's user/role lookup surface.
type UserDirectory interface {
	// LookupUserID resolves a username to an opaque user ID.
	// Returns ErrUserNotFound (possibly wrapped) if no such user exists.
	LookupUserID(ctx context.Context, username string) (string, error)
	// ListRolesByUser returns the role slugs held by the user.
	ListRolesByUser(ctx context.Context, userID string) ([]string, error)
	// ListRoles enumerates all roles known to the host, for admin rendering and
	// settings validation.
	ListRoles(ctx context.Context) ([]Role, error)
	// ListUserIDs enumerates all user IDs. Used to seed login records on activation.
	ListUserIDs(ctx context.Context) ([]string, error)
}

// UserDeleter deletes a user account and cascades deletion of content they authored.
// Implementations should be atomic per user; a failure affects only that user.
type UserDeleter interface {
	DeleteUserCascade(ctx context.Context, userID string) error
}

// SettingsStore persists the singleton Settings blob.
// Load returns found=false (not an error) when nothing has been saved yet.
type SettingsStore interface {
	Load(ctx context.Context) (Settings, bool, error)
	Save(ctx context.Context, s Settings) error
}
