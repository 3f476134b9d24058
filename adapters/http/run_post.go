package reaperhttp

import (
	"net/http"
)

type runResponse struct {
	RunID   string            `json:"run_id"`
	Skipped bool              `json:"skipped"`
	Deleted []string          `json:"deleted"`
	Failed  map[string]string `json:"failed"`
}

// handleRunPOST triggers a deletion pass immediately, outside the daily schedule.
func (s *Service) handleRunPOST(w http.ResponseWriter, r *http.Request) {
	report, err := s.svc.Reap(r.Context(), s.now())
	if err != nil {
		serverErr(w, "run_failed")
		return
	}
	resp := runResponse{
		RunID:   report.RunID,
		Skipped: report.Skipped,
		Deleted: report.Deleted,
		Failed:  map[string]string{},
	}
	if resp.Deleted == nil {
		resp.Deleted = []string{}
	}
	for userID, ferr := range report.Failed {
		resp.Failed[userID] = ferr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}
