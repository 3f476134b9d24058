package reaperhttp

import (
	"net/http"

	core "github.com/louddog/userreaper/core"
	"github.com/louddog/userreaper/roles"
)

type roleView struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type settingsResponse struct {
	Settings core.Settings `json:"settings"`
	Roles    []roleView    `json:"roles"`
}

func roleViews(known []core.Role) []roleView {
	out := make([]roleView, 0, len(known))
	for _, r := range known {
		out = append(out, roleView{
			ID:   roles.IDFromSlug(r.Slug).String(),
			Slug: r.Slug,
			Name: r.Name,
		})
	}
	return out
}

func (s *Service) handleSettingsGET(w http.ResponseWriter, r *http.Request) {
	set, err := s.svc.CurrentSettings(r.Context())
	if err != nil {
		serverErr(w, "settings_unavailable")
		return
	}
	var known []core.Role
	if dir := s.svc.Directory(); dir != nil {
		known, err = dir.ListRoles(r.Context())
		if err != nil {
			serverErr(w, "roles_unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, settingsResponse{Settings: set, Roles: roleViews(known)})
}
