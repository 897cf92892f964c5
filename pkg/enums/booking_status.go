package enums

import "fmt"

// BookingStatus is the lifecycle state of a booking. Bookings are created
// Pending and never transitioned; no confirm/cancel/complete flow exists.
type BookingStatus string

const (
	BookingStatusPending BookingStatus = "Pending"
)

var validBookingStatuses = []BookingStatus{
	BookingStatusPending,
}

// String implements fmt.Stringer.
func (s BookingStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known BookingStatus.
func (s BookingStatus) IsValid() bool {
	for _, candidate := range validBookingStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseBookingStatus converts raw input into a BookingStatus.
func ParseBookingStatus(value string) (BookingStatus, error) {
	for _, candidate := range validBookingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid booking status %q", value)
}
