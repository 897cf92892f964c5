package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/washlane/washlane-backend/api/middleware"
	"github.com/washlane/washlane-backend/api/responses"
	"github.com/washlane/washlane-backend/internal/auth"
	"github.com/washlane/washlane-backend/internal/bookings"
	"github.com/washlane/washlane-backend/internal/catalog"
	"github.com/washlane/washlane-backend/internal/users"
	"github.com/washlane/washlane-backend/pkg/logger"
)

// HomePayload is the aggregate served on the landing page. User and
// bookings are only present when a valid session accompanies the request.
type HomePayload struct {
	Services []catalog.Service     `json:"services"`
	Ads      []catalog.Ad          `json:"ads"`
	User     *users.UserDTO        `json:"user,omitempty"`
	Bookings []bookings.BookingDTO `json:"bookings,omitempty"`
}

// Home aggregates the catalog with the session user's bookings. An
// anonymous visitor still gets the catalog; session lookup failures
// degrade to the anonymous payload instead of erroring the landing page.
func Home(authSvc auth.Service, bookingSvc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := HomePayload{
			Services: catalog.Services(),
			Ads:      catalog.Ads(),
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID != uuid.Nil && authSvc != nil {
			user, err := authSvc.CurrentUser(r.Context(), userID)
			if err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "home.user_lookup_failed")
				}
			} else {
				payload.User = user
				if bookingSvc != nil {
					rows, err := bookingSvc.ListForUser(r.Context(), userID)
					if err != nil {
						if logg != nil {
							logg.Warn(r.Context(), "home.bookings_lookup_failed")
						}
					} else {
						payload.Bookings = rows
					}
				}
			}
		}

		responses.WriteSuccess(w, payload)
	}
}
