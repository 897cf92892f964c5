package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/washlane/washlane-backend/api/middleware"
	"github.com/washlane/washlane-backend/api/responses"
	"github.com/washlane/washlane-backend/api/validators"
	"github.com/washlane/washlane-backend/internal/auth"
	pkgAuth "github.com/washlane/washlane-backend/pkg/auth"
	"github.com/washlane/washlane-backend/pkg/config"
	pkgerrors "github.com/washlane/washlane-backend/pkg/errors"
	"github.com/washlane/washlane-backend/pkg/logger"
)

// FormField describes one input of a browser form so clients can render it.
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// FormDescriptor is the payload served on the GET side of a form route.
type FormDescriptor struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Fields []FormField `json:"fields"`
}

type sessionRevoker interface {
	Revoke(ctx context.Context, sessionID string) error
}

// SignupForm serves the field list for the signup page.
func SignupForm() http.HandlerFunc {
	descriptor := FormDescriptor{
		Action: "/signup",
		Method: http.MethodPost,
		Fields: []FormField{
			{Name: "name", Type: "text", Required: true},
			{Name: "phone", Type: "tel", Required: true},
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, descriptor)
	}
}

// LoginForm serves the field list for the login page.
func LoginForm() http.HandlerFunc {
	descriptor := FormDescriptor{
		Action: "/login",
		Method: http.MethodPost,
		Fields: []FormField{
			{Name: "phone", Type: "tel", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, descriptor)
	}
}

// Signup handles registration for both browser forms and JSON clients.
func Signup(svc auth.RegisterService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeRequest(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if validators.WantsHTML(r) {
			responses.Redirect(w, r, "/login")
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// Login authenticates the user, sets the session cookie and either
// redirects the browser home or returns the session payload.
func Login(svc auth.Service, cfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeRequest(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setSessionCookie(w, cfg, result.SessionToken)

		if validators.WantsHTML(r) {
			responses.Redirect(w, r, "/")
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// Logout revokes the server-side session, clears the cookie and sends the
// browser home. Revoking an already dead session still succeeds.
func Logout(revoker sessionRevoker, cfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.SessionToken(r, cfg.CookieName)
		if token != "" && revoker != nil {
			// Expired cookies still name a server-side session worth
			// deleting, so exp is not validated here.
			if claims, err := pkgAuth.ParseSessionTokenAllowExpired(cfg, token); err == nil {
				if err := revoker.Revoke(r.Context(), claims.ID); err != nil && logg != nil {
					logg.Error(r.Context(), "session.revoke_failed", err)
				}
			}
		}

		clearSessionCookie(w, cfg)

		if validators.WantsHTML(r) {
			responses.Redirect(w, r, "/")
			return
		}
		responses.WriteSuccess(w, map[string]bool{"logged_out": true})
	}
}

func setSessionCookie(w http.ResponseWriter, cfg config.SessionConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cfg.TTL()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg config.SessionConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
