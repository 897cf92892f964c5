package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/washlane/washlane-backend/pkg/db/models"
	"github.com/washlane/washlane-backend/pkg/enums"
)

// CreateBookingRequest carries the booking form payload. Car fields are
// only meaningful for the car wash variant.
type CreateBookingRequest struct {
	Kind          enums.BookingKind `json:"-" form:"-"`
	ServiceType   string            `json:"service_type" form:"service_type"`
	Date          string            `json:"date" form:"date"`
	Time          string            `json:"time" form:"time"`
	Location      string            `json:"location" form:"location"`
	Package       string            `json:"package" form:"package"`
	Addons        []string          `json:"addons" form:"addons"`
	PaymentMethod string            `json:"payment_method" form:"payment_method"`
	PaymentStatus string            `json:"payment_status" form:"payment_status"`

	CarMake             string `json:"car_make" form:"car_make"`
	CarType             string `json:"car_type" form:"car_type"`
	VehicleNumber       string `json:"vehicle_number" form:"vehicle_number"`
	Color               string `json:"color" form:"color"`
	SpecialInstructions string `json:"special_instructions" form:"special_instructions"`
	PromoCode           string `json:"promo_code" form:"promo_code"`
}

// BookingDTO is the transport shape for a stored booking.
type BookingDTO struct {
	ID            uuid.UUID           `json:"id"`
	Kind          enums.BookingKind   `json:"kind"`
	ServiceType   string              `json:"service_type"`
	Date          string              `json:"date"`
	Time          string              `json:"time"`
	Location      string              `json:"location"`
	Package       string              `json:"package"`
	Addons        []string            `json:"addons"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	PaymentStatus enums.PaymentStatus `json:"payment_status"`
	Status        enums.BookingStatus `json:"status"`

	CarMake             *string `json:"car_make,omitempty"`
	CarType             *string `json:"car_type,omitempty"`
	VehicleNumber       *string `json:"vehicle_number,omitempty"`
	Color               *string `json:"color,omitempty"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
	PromoCode           *string `json:"promo_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func FromModel(b *models.Booking) *BookingDTO {
	if b == nil {
		return nil
	}

	return &BookingDTO{
		ID:                  b.ID,
		Kind:                b.Kind,
		ServiceType:         b.ServiceType,
		Date:                b.ScheduledDate,
		Time:                b.ScheduledTime,
		Location:            b.Location,
		Package:             b.Package,
		Addons:              append([]string(nil), b.Addons...),
		PaymentMethod:       b.PaymentMethod,
		PaymentStatus:       b.PaymentStatus,
		Status:              b.Status,
		CarMake:             b.CarMake,
		CarType:             b.CarType,
		VehicleNumber:       b.VehicleNumber,
		Color:               b.Color,
		SpecialInstructions: b.SpecialInstructions,
		PromoCode:           b.PromoCode,
		CreatedAt:           b.CreatedAt,
	}
}
