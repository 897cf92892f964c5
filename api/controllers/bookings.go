package controllers

import (
	"net/http"

	"github.com/washlane/washlane-backend/api/middleware"
	"github.com/washlane/washlane-backend/api/responses"
	"github.com/washlane/washlane-backend/api/validators"
	"github.com/washlane/washlane-backend/internal/bookings"
	"github.com/washlane/washlane-backend/pkg/enums"
	pkgerrors "github.com/washlane/washlane-backend/pkg/errors"
	"github.com/washlane/washlane-backend/pkg/logger"
)

// BookingForm serves the field list for the booking page of the given kind.
func BookingForm(kind enums.BookingKind) http.HandlerFunc {
	action := "/book"
	fields := []FormField{
		{Name: "service_type", Type: "text", Required: true},
		{Name: "date", Type: "date", Required: true},
		{Name: "time", Type: "time", Required: true},
		{Name: "location", Type: "text", Required: true},
		{Name: "package", Type: "text", Required: true},
		{Name: "addons", Type: "checkbox", Required: false},
		{Name: "payment_method", Type: "select", Required: true, Options: paymentMethodOptions()},
		{Name: "payment_status", Type: "select", Required: true, Options: paymentStatusOptions()},
	}
	if kind == enums.BookingKindCarWash {
		action = "/book/car-wash"
		fields = append(fields,
			FormField{Name: "car_make", Type: "text", Required: true},
			FormField{Name: "car_type", Type: "text", Required: true},
			FormField{Name: "vehicle_number", Type: "text", Required: true},
			FormField{Name: "color", Type: "text", Required: false},
			FormField{Name: "special_instructions", Type: "text", Required: false},
			FormField{Name: "promo_code", Type: "text", Required: false},
		)
	}

	descriptor := FormDescriptor{
		Action: action,
		Method: http.MethodPost,
		Fields: fields,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, descriptor)
	}
}

// CreateBooking persists a booking of the given kind for the session user.
func CreateBooking(svc bookings.Service, kind enums.BookingKind, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var body bookings.CreateBookingRequest
		if err := validators.DecodeRequest(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.Kind = kind

		userID := middleware.UserIDFromContext(r.Context())
		created, err := svc.Create(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if validators.WantsHTML(r) {
			responses.Redirect(w, r, "/")
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func paymentMethodOptions() []string {
	methods := enums.PaymentMethods()
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		out = append(out, string(m))
	}
	return out
}

func paymentStatusOptions() []string {
	statuses := enums.PaymentStatuses()
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
