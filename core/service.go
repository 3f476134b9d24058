package core

import (
	"context"
	"fmt"
	stdlog "log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config mirrors the shape of the host settings form: everything has a usable default.
type Config struct {
	// Defaults is used when no settings have been saved yet. Zero value means
	// DefaultSettings().
	Defaults Settings
	// Logger receives run reports and best-effort tracking failures.
	// Nil falls back to the standard logger with a "[reaper]" prefix.
	Logger *stdlog.Logger
}

// Service is the core reaper service used by the scheduler and HTTP adapters.
//
// Collaborators are attached with the WithX builders; WithPostgres wires every
// unset collaborator to the built-in Postgres implementations at once.
type Service struct {
	defaults Settings
	logger   *stdlog.Logger

	logins   LoginStore
	settings SettingsStore
	dir      UserDirectory
	deleter  UserDeleter
	pg       *pgxpool.Pool
}

func NewService(cfg Config) *Service {
	def := cfg.Defaults
	if def.ThresholdDays == 0 && def.EligibleRoles == nil {
		def = DefaultSettings()
	}
	return &Service{defaults: def, logger: cfg.Logger}
}

func (s *Service) WithLoginStore(st LoginStore) *Service       { s.logins = st; return s }
func (s *Service) WithSettingsStore(st SettingsStore) *Service { s.settings = st; return s }
func (s *Service) WithDirectory(d UserDirectory) *Service      { s.dir = d; return s }
func (s *Service) WithDeleter(d UserDeleter) *Service          { s.deleter = d; return s }

// WithPostgres attaches a pgx pool and wires any collaborator not already set to the
// Postgres-backed implementations in pgstore.go.
func (s *Service) WithPostgres(pool *pgxpool.Pool) *Service {
	s.pg = pool
	if s.logins == nil {
		s.logins = &pgLoginStore{pg: pool}
	}
	if s.settings == nil {
		s.settings = &pgSettingsStore{pg: pool}
	}
	if s.dir == nil {
		s.dir = &pgDirectory{pg: pool}
	}
	if s.deleter == nil {
		s.deleter = &pgDeleter{pg: pool}
	}
	return s
}

// Postgres returns the attached pgx pool (may be nil).
func (s *Service) Postgres() *pgxpool.Pool { return s.pg }

// Directory returns the attached user directory (may be nil).
func (s *Service) Directory() UserDirectory { return s.dir }

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
		return
	}
	stdlog.Printf("[reaper] "+format, args...)
}

// CurrentSettings loads the saved settings, falling back to the configured defaults
// when nothing has been saved yet.
func (s *Service) CurrentSettings(ctx context.Context) (Settings, error) {
	if s.settings == nil {
		return s.defaults, nil
	}
	saved, ok, err := s.settings.Load(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return s.defaults, nil
	}
	return saved, nil
}

// SaveSettings persists validated settings.
func (s *Service) SaveSettings(ctx context.Context, set Settings) error {
	if s.settings == nil {
		return fmt.Errorf("settings store not configured")
	}
	if err := s.settings.Save(ctx, set); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Activate seeds a login record at now for every known user that lacks one, so users
// predating the feature are measured from activation rather than never becoming
// candidates.
func (s *Service) Activate(ctx context.Context, now time.Time) error {
	if s.dir == nil || s.logins == nil {
		return fmt.Errorf("directory and login store required")
	}
	ids, err := s.dir.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if err := s.logins.SeedMissing(ctx, ids, now); err != nil {
		return fmt.Errorf("seed login records: %w", err)
	}
	s.logf("activated; seeded login records for up to %d users", len(ids))
	return nil
}

// Deactivate clears all tracked login records.
func (s *Service) Deactivate(ctx context.Context) error {
	if s.logins == nil {
		return nil
	}
	if err := s.logins.Clear(ctx); err != nil {
		return fmt.Errorf("clear login records: %w", err)
	}
	s.logf("deactivated; login records cleared")
	return nil
}
