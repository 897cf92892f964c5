package bookings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washlane/washlane-backend/pkg/db/models"
	"github.com/washlane/washlane-backend/pkg/enums"
	pkgerrors "github.com/washlane/washlane-backend/pkg/errors"
	"github.com/washlane/washlane-backend/pkg/types"
)

type stubBookingRepo struct {
	created []*models.Booking
	listed  []models.Booking
	err     error
}

func (s *stubBookingRepo) Create(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	s.created = append(s.created, booking)
	return booking, nil
}

func (s *stubBookingRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ServiceType:   "Deep Cleaning",
		Date:          "2026-09-15",
		Time:          "10:30",
		Location:      "12 Harbor St",
		Package:       "Standard",
		Addons:        []string{" Wax ", "", "Interior Vacuum"},
		PaymentMethod: "cash",
		PaymentStatus: "unpaid",
	}
}

func newTestService(t *testing.T, repo *stubBookingRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)
	return svc
}

func TestCreateGeneralBooking(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := newTestService(t, repo)
	userID := uuid.New()

	dto, err := svc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)

	assert.Equal(t, enums.BookingKindGeneral, dto.Kind)
	assert.Equal(t, enums.BookingStatusPending, dto.Status)
	assert.Equal(t, enums.PaymentMethodCash, dto.PaymentMethod)
	assert.Equal(t, enums.PaymentStatusUnpaid, dto.PaymentStatus)
	assert.Equal(t, []string{"Wax", "Interior Vacuum"}, dto.Addons)
	assert.Nil(t, dto.CarMake)

	require.Len(t, repo.created, 1)
	assert.Equal(t, userID, repo.created[0].UserID)
	assert.Equal(t, types.StringList{"Wax", "Interior Vacuum"}, repo.created[0].Addons)
}

func TestCreateCarWashBookingCarriesCarFields(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := newTestService(t, repo)

	req := validRequest()
	req.Kind = enums.BookingKindCarWash
	req.CarMake = "Toyota"
	req.CarType = "Sedan"
	req.VehicleNumber = "WX-4821"
	req.Color = "Blue"
	req.PromoCode = "SHINE10"

	dto, err := svc.Create(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	assert.Equal(t, enums.BookingKindCarWash, dto.Kind)
	require.NotNil(t, dto.CarMake)
	assert.Equal(t, "Toyota", *dto.CarMake)
	require.NotNil(t, dto.VehicleNumber)
	assert.Equal(t, "WX-4821", *dto.VehicleNumber)
	require.NotNil(t, dto.PromoCode)
	assert.Equal(t, "SHINE10", *dto.PromoCode)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(t, &stubBookingRepo{})

	req := validRequest()
	req.ServiceType = ""
	req.Location = "  "

	_, err := svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "service_type")
	assert.Contains(t, details, "location")
}

func TestCreateCarWashRequiresCarFields(t *testing.T) {
	svc := newTestService(t, &stubBookingRepo{})

	req := validRequest()
	req.Kind = enums.BookingKindCarWash

	_, err := svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "car_make")
	assert.Contains(t, details, "car_type")
	assert.Contains(t, details, "vehicle_number")
}

func TestCreateValidatesDateAndTimeShapes(t *testing.T) {
	svc := newTestService(t, &stubBookingRepo{})

	req := validRequest()
	req.Date = "15/09/2026"
	_, err := svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	req = validRequest()
	req.Time = "10:30pm"
	_, err = svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)
}

func TestCreateValidatesPaymentEnums(t *testing.T) {
	svc := newTestService(t, &stubBookingRepo{})

	req := validRequest()
	req.PaymentMethod = "barter"
	_, err := svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "payment_method")

	req = validRequest()
	req.PaymentStatus = "maybe"
	_, err = svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)
}

func TestListForUserReturnsEmptySlice(t *testing.T) {
	svc := newTestService(t, &stubBookingRepo{})

	rows, err := svc.ListForUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCreateRequiresUser(t *testing.T) {
	svc := newTestService(t, &stubBookingRepo{})

	_, err := svc.Create(context.Background(), uuid.Nil, validRequest())
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
}
