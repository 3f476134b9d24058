package reaperhttp

import (
	"net/http"
	"time"

	core "github.com/louddog/userreaper/core"
)

// Service wraps core.Service with net/http mounting helpers for the admin surface.
// The host admin UI renders forms from these JSON responses; no HTML is served here.
type Service struct {
	svc       *core.Service
	secret    []byte
	adminRole string
	now       func() time.Time
}

func NewService(svc *core.Service) *Service {
	return &Service{svc: svc, adminRole: "administrator", now: time.Now}
}

// WithAdminSecret enables HS256 bearer-token auth on all endpoints using the
// host-issued shared secret.
func (s *Service) WithAdminSecret(secret []byte) *Service { s.secret = secret; return s }

// WithAdminRole overrides the role slug required in admin tokens (default "administrator").
func (s *Service) WithAdminRole(slug string) *Service { s.adminRole = slug; return s }

// WithClock overrides the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *Service) Core() *core.Service { return s.svc }

// APIHandler returns a handler serving the admin JSON routes under /admin/reaper/*.
// It is intended to be mounted under the host's mux/router at any prefix.
func (s *Service) APIHandler() http.Handler {
	if s == nil || s.svc == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { serverErr(w, "reaper_not_initialized") })
	}

	mux := http.NewServeMux()
	mux.Handle("GET /admin/reaper/settings", http.HandlerFunc(s.handleSettingsGET))
	mux.Handle("PUT /admin/reaper/settings", http.HandlerFunc(s.handleSettingsPUT))
	mux.Handle("GET /admin/reaper/preview", http.HandlerFunc(s.handlePreviewGET))
	mux.Handle("POST /admin/reaper/run", http.HandlerFunc(s.handleRunPOST))
	return s.requireAdmin(mux)
}
