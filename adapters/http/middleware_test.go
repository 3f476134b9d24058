package reaperhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, secret []byte, roles []string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "admin-user",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"roles": roles,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return tok
}

func TestRequireAdminMissingToken(t *testing.T) {
	s, _, _ := newTestService(t)
	h := s.WithAdminSecret([]byte("s3cret")).APIHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/reaper/settings", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"missing_token"}`, w.Body.String())
}

func TestRequireAdminWrongRole(t *testing.T) {
	s, _, _ := newTestService(t)
	secret := []byte("s3cret")
	h := s.WithAdminSecret(secret).APIHandler()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/admin/reaper/settings", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, secret, []string{"subscriber"}))
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"error":"admin_required"}`, w.Body.String())
}

func TestRequireAdminBadSignature(t *testing.T) {
	s, _, _ := newTestService(t)
	h := s.WithAdminSecret([]byte("s3cret")).APIHandler()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/admin/reaper/settings", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, []byte("other"), []string{"administrator"}))
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"invalid_token"}`, w.Body.String())
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	s, _, _ := newTestService(t)
	secret := []byte("s3cret")
	h := s.WithAdminSecret(secret).APIHandler()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/admin/reaper/settings", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, secret, []string{"administrator"}))
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}
