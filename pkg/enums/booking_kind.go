package enums

import "fmt"

// BookingKind discriminates the generic service form from the car wash
// variant, which carries extra vehicle fields.
type BookingKind string

const (
	BookingKindGeneral BookingKind = "general"
	BookingKindCarWash BookingKind = "car_wash"
)

var validBookingKinds = []BookingKind{
	BookingKindGeneral,
	BookingKindCarWash,
}

// String implements fmt.Stringer.
func (k BookingKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known BookingKind.
func (k BookingKind) IsValid() bool {
	for _, candidate := range validBookingKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseBookingKind converts raw input into a BookingKind.
func ParseBookingKind(value string) (BookingKind, error) {
	for _, candidate := range validBookingKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid booking kind %q", value)
}
