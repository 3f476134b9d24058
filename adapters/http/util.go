package reaperhttp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

func bearerToken(authorization string) string {
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// decodeJSON decodes a request body, tolerating unknown fields: admin form
// submissions carry host-injected extras (nonces, referrer fields) that the
// minimal-feedback settings flow absorbs rather than rejects.
func decodeJSON(r *http.Request, dst any) error {
	if r == nil || r.Body == nil {
		return errors.New("missing_body")
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// Reject trailing garbage.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("invalid_json")
	}
	return nil
}
