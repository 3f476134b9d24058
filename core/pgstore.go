package core

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres-backed implementations of the host contracts, against the profiles schema.
// Production hosts usually plug their own implementations instead; these serve
// installations where the reaper shares the platform database.

type pgDirectory struct {
	pg *pgxpool.Pool
}

func (d *pgDirectory) LookupUserID(ctx context.Context, username string) (string, error) {
	var id string
	err := d.pg.QueryRow(ctx,
		`SELECT id::text FROM profiles.users WHERE username=$1 AND deleted_at IS NULL`,
		username).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (d *pgDirectory) ListRolesByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := d.pg.Query(ctx, `
		SELECT r.slug
		FROM profiles.user_roles ur
		JOIN profiles.roles r ON ur.role_id=r.id
		WHERE ur.user_id=$1 AND r.deleted_at IS NULL
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		out = append(out, slug)
	}
	return out, rows.Err()
}

func (d *pgDirectory) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := d.pg.Query(ctx,
		`SELECT slug, name FROM profiles.roles WHERE deleted_at IS NULL ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Role
	for rows.Next() {
		var r Role
		if err := rows.Scan(&r.Slug, &r.Name); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (d *pgDirectory) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := d.pg.Query(ctx,
		`SELECT id::text FROM profiles.users WHERE deleted_at IS NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

type pgLoginStore struct {
	pg *pgxpool.Pool
}

func (s *pgLoginStore) Touch(ctx context.Context, userID string, at time.Time) error {
	_, err := s.pg.Exec(ctx, `
		INSERT INTO profiles.user_last_login (user_id, last_login_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET last_login_at=EXCLUDED.last_login_at
	`, userID, at)
	return err
}

func (s *pgLoginStore) LastLogin(ctx context.Context, userID string) (time.Time, bool, error) {
	var at time.Time
	err := s.pg.QueryRow(ctx,
		`SELECT last_login_at FROM profiles.user_last_login WHERE user_id=$1`,
		userID).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

func (s *pgLoginStore) ListActiveBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT user_id::text
		FROM profiles.user_last_login
		WHERE last_login_at <= $1
		ORDER BY last_login_at ASC
	`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *pgLoginStore) SeedMissing(ctx context.Context, userIDs []string, at time.Time) error {
	if len(userIDs) == 0 {
		return nil
	}
	_, err := s.pg.Exec(ctx, `
		INSERT INTO profiles.user_last_login (user_id, last_login_at)
		SELECT unnest($1::text[]), $2
		ON CONFLICT (user_id) DO NOTHING
	`, userIDs, at)
	return err
}

func (s *pgLoginStore) Clear(ctx context.Context) error {
	_, err := s.pg.Exec(ctx, `DELETE FROM profiles.user_last_login`)
	return err
}

type pgSettingsStore struct {
	pg *pgxpool.Pool
}

func (s *pgSettingsStore) Load(ctx context.Context) (Settings, bool, error) {
	var blob []byte
	err := s.pg.QueryRow(ctx,
		`SELECT settings FROM profiles.reaper_settings WHERE id=1`).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, err
	}
	var set Settings
	if err := json.Unmarshal(blob, &set); err != nil {
		return Settings{}, false, err
	}
	return set, true, nil
}

func (s *pgSettingsStore) Save(ctx context.Context, set Settings) error {
	blob, err := json.Marshal(set)
	if err != nil {
		return err
	}
	_, err = s.pg.Exec(ctx, `
		INSERT INTO profiles.reaper_settings (id, settings)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET settings=EXCLUDED.settings
	`, blob)
	return err
}

type pgDeleter struct {
	pg *pgxpool.Pool
}

// DeleteUserCascade removes the user row; authored content and dependent rows go with
// it via ON DELETE CASCADE foreign keys.
func (d *pgDeleter) DeleteUserCascade(ctx context.Context, userID string) error {
	_, err := d.pg.Exec(ctx, `DELETE FROM profiles.users WHERE id=$1`, userID)
	return err
}
