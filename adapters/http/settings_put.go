package reaperhttp

import (
	"net/http"

	core "github.com/louddog/userreaper/core"
)

// handleSettingsPUT accepts the raw admin form submission, validates it against the
// host's known roles, and persists the normalized settings. Malformed fields fall back
// to the previously stored value rather than failing the save.
func (s *Service) handleSettingsPUT(w http.ResponseWriter, r *http.Request) {
	var raw core.RawSettings
	if err := decodeJSON(r, &raw); err != nil {
		badRequest(w, "invalid_request")
		return
	}
	dir := s.svc.Directory()
	if dir == nil {
		serverErr(w, "roles_unavailable")
		return
	}
	known, err := dir.ListRoles(r.Context())
	if err != nil {
		serverErr(w, "roles_unavailable")
		return
	}
	prev, err := s.svc.CurrentSettings(r.Context())
	if err != nil {
		serverErr(w, "settings_unavailable")
		return
	}
	next := core.ValidateSettings(raw, known, prev)
	if err := s.svc.SaveSettings(r.Context(), next); err != nil {
		serverErr(w, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{Settings: next, Roles: roleViews(known)})
}
