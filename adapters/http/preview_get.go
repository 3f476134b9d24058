package reaperhttp

import (
	"net/http"
)

type previewResponse struct {
	Object string   `json:"object"`
	Data   []string `json:"data"`
	Total  int      `json:"total"`
}

// handlePreviewGET computes the inactive-user set under the current settings without
// deleting anyone, so the admin page can show who the next run would remove.
func (s *Service) handlePreviewGET(w http.ResponseWriter, r *http.Request) {
	set, err := s.svc.CurrentSettings(r.Context())
	if err != nil {
		serverErr(w, "settings_unavailable")
		return
	}
	ids, err := s.svc.SelectInactiveUsers(r.Context(), s.now(), set)
	if err != nil {
		serverErr(w, "selection_failed")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, previewResponse{Object: "list", Data: ids, Total: len(ids)})
}
