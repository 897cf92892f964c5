package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgAuth "github.com/washlane/washlane-backend/pkg/auth"
	"github.com/washlane/washlane-backend/pkg/config"
)

type stubChecker struct {
	active map[string]bool
	err    error
}

func (s *stubChecker) HasSession(_ context.Context, sessionID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.active[sessionID], nil
}

func sessionCfg() config.SessionConfig {
	return config.SessionConfig{
		Secret:     "unit-test-secret",
		Issuer:     "washlane",
		TTLMinutes: 60,
		CookieName: "washlane_session",
	}
}

func mintToken(t *testing.T, userID uuid.UUID, jti string) string {
	t.Helper()
	token, err := pkgAuth.MintSessionToken(sessionCfg(), time.Now().UTC(), pkgAuth.SessionTokenPayload{
		UserID: userID,
		JTI:    jti,
	})
	require.NoError(t, err)
	return token
}

func echoUserHandler(captured *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSessionAcceptsCookie(t *testing.T) {
	userID := uuid.New()
	token := mintToken(t, userID, "sess-1")
	checker := &stubChecker{active: map[string]bool{"sess-1": true}}

	var captured uuid.UUID
	handler := RequireSession(sessionCfg(), checker, nil)(echoUserHandler(&captured))

	r := httptest.NewRequest("GET", "/book", nil)
	r.AddCookie(&http.Cookie{Name: "washlane_session", Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, captured)
}

func TestRequireSessionAcceptsBearerHeader(t *testing.T) {
	userID := uuid.New()
	token := mintToken(t, userID, "sess-2")
	checker := &stubChecker{active: map[string]bool{"sess-2": true}}

	var captured uuid.UUID
	handler := RequireSession(sessionCfg(), checker, nil)(echoUserHandler(&captured))

	r := httptest.NewRequest("GET", "/book", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, captured)
}

func TestRequireSessionRedirectsBrowsers(t *testing.T) {
	handler := RequireSession(sessionCfg(), &stubChecker{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a session")
	}))

	r := httptest.NewRequest("GET", "/book", nil)
	r.Header.Set("Accept", "text/html,application/xhtml+xml")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSessionReturns401ForJSONClients(t *testing.T) {
	handler := RequireSession(sessionCfg(), &stubChecker{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a session")
	}))

	r := httptest.NewRequest("GET", "/book", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionRejectsRevokedSession(t *testing.T) {
	token := mintToken(t, uuid.New(), "sess-gone")
	checker := &stubChecker{active: map[string]bool{}}

	handler := RequireSession(sessionCfg(), checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for a revoked session")
	}))

	r := httptest.NewRequest("GET", "/book", nil)
	r.AddCookie(&http.Cookie{Name: "washlane_session", Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalSessionPassesThroughWithoutCookie(t *testing.T) {
	var captured uuid.UUID
	handler := OptionalSession(sessionCfg(), &stubChecker{}, nil)(echoUserHandler(&captured))

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uuid.Nil, captured)
}

func TestOptionalSessionSeedsUser(t *testing.T) {
	userID := uuid.New()
	token := mintToken(t, userID, "sess-3")
	checker := &stubChecker{active: map[string]bool{"sess-3": true}}

	var captured uuid.UUID
	handler := OptionalSession(sessionCfg(), checker, nil)(echoUserHandler(&captured))

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "washlane_session", Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, userID, captured)
}
