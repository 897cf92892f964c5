package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/washlane/washlane-backend/pkg/db/models"
	"github.com/washlane/washlane-backend/pkg/enums"
	pkgerrors "github.com/washlane/washlane-backend/pkg/errors"
	"github.com/washlane/washlane-backend/pkg/types"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Service defines the booking operations used by the controllers.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]BookingDTO, error)
}

type bookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
}

type service struct {
	repo bookingRepository
}

// ServiceParams bundles the dependencies required to build a booking service.
type ServiceParams struct {
	Repo bookingRepository
}

// NewService constructs a booking service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("booking repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}

	booking, err := s.buildBooking(userID, req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create booking")
	}
	return FromModel(created), nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]BookingDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}

	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list bookings")
	}

	out := make([]BookingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// buildBooking validates the request and assembles the write-once row.
func (s *service) buildBooking(userID uuid.UUID, req CreateBookingRequest) (*models.Booking, error) {
	kind := req.Kind
	if kind == "" {
		kind = enums.BookingKindGeneral
	}
	if !kind.IsValid() {
		return nil, validationError("kind", "is not a recognized booking kind")
	}

	missing := map[string]string{}
	requireField(missing, "service_type", req.ServiceType)
	requireField(missing, "date", req.Date)
	requireField(missing, "time", req.Time)
	requireField(missing, "location", req.Location)
	requireField(missing, "package", req.Package)
	requireField(missing, "payment_method", req.PaymentMethod)
	requireField(missing, "payment_status", req.PaymentStatus)
	if kind == enums.BookingKindCarWash {
		requireField(missing, "car_make", req.CarMake)
		requireField(missing, "car_type", req.CarType)
		requireField(missing, "vehicle_number", req.VehicleNumber)
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing required fields").
			WithDetails(missing)
	}

	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, validationError("date", "must be formatted YYYY-MM-DD")
	}
	clock := strings.TrimSpace(req.Time)
	if _, err := time.Parse(timeLayout, clock); err != nil {
		return nil, validationError("time", "must be formatted HH:MM")
	}

	method, err := enums.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, validationError("payment_method", "is not a recognized payment method")
	}
	payStatus, err := enums.ParsePaymentStatus(req.PaymentStatus)
	if err != nil {
		return nil, validationError("payment_status", "is not a recognized payment status")
	}

	booking := &models.Booking{
		UserID:        userID,
		Kind:          kind,
		ServiceType:   strings.TrimSpace(req.ServiceType),
		ScheduledDate: date,
		ScheduledTime: clock,
		Location:      strings.TrimSpace(req.Location),
		Package:       strings.TrimSpace(req.Package),
		Addons:        types.StringList(req.Addons).Normalize(),
		PaymentMethod: method,
		PaymentStatus: payStatus,
		Status:        enums.BookingStatusPending,
	}
	if kind == enums.BookingKindCarWash {
		booking.CarMake = optional(req.CarMake)
		booking.CarType = optional(req.CarType)
		booking.VehicleNumber = optional(req.VehicleNumber)
		booking.Color = optional(req.Color)
		booking.SpecialInstructions = optional(req.SpecialInstructions)
		booking.PromoCode = optional(req.PromoCode)
	}
	return booking, nil
}

func requireField(missing map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		missing[name] = "is required"
	}
}

func validationError(field, message string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, field+" "+message).
		WithDetails(map[string]string{field: message})
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
