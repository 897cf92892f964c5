package middleware

import (
	"net/http"
	"strings"

	"github.com/washlane/washlane-backend/api/responses"
	"github.com/washlane/washlane-backend/api/validators"
	pkgAuth "github.com/washlane/washlane-backend/pkg/auth"
	"github.com/washlane/washlane-backend/pkg/auth/session"
	"github.com/washlane/washlane-backend/pkg/config"
	pkgerrors "github.com/washlane/washlane-backend/pkg/errors"
	"github.com/washlane/washlane-backend/pkg/logger"
)

const loginPath = "/login"

// SessionToken extracts the raw session token from the cookie or, for API
// clients, from the Authorization header.
func SessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}

// RequireSession guards routes that need an authenticated user. Browsers get
// redirected to the login page; JSON clients get a 401 envelope.
func RequireSession(cfg config.SessionConfig, checker session.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := resolveSession(r, cfg, checker)
			if err != nil {
				if validators.WantsHTML(r) {
					responses.Redirect(w, r, loginPath)
					return
				}
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession seeds the user id when a valid session is present and
// passes the request through untouched otherwise.
func OptionalSession(cfg config.SessionConfig, checker session.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := resolveSession(r, cfg, checker)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSession(r *http.Request, cfg config.SessionConfig, checker session.Checker) (*pkgAuth.SessionTokenClaims, error) {
	token := SessionToken(r, cfg.CookieName)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}

	claims, err := pkgAuth.ParseSessionToken(cfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid session token")
	}
	if claims.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id")
	}

	if checker != nil {
		ok, err := checker.HasSession(r.Context(), claims.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session")
		}
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired")
		}
	}

	return claims, nil
}
