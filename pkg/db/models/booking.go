package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washlane/washlane-backend/pkg/enums"
	"github.com/washlane/washlane-backend/pkg/types"
)

// Booking is a single service reservation owned by exactly one user. The
// generic form and the car wash variant share this table; Kind discriminates
// them and the car fields stay null for generic bookings. Rows are
// write-once: Status is fixed at Pending and nothing updates them.
type Booking struct {
	ID     uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	User   *User             `gorm:"foreignKey:UserID"`
	Kind   enums.BookingKind `gorm:"column:kind;not null"`

	ServiceType   string              `gorm:"column:service_type;not null"`
	ScheduledDate string              `gorm:"column:scheduled_date;not null"`
	ScheduledTime string              `gorm:"column:scheduled_time;not null"`
	Location      string              `gorm:"column:location;not null"`
	Package       string              `gorm:"column:package;not null"`
	Addons        types.StringList    `gorm:"column:addons"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;not null"`
	PaymentStatus enums.PaymentStatus `gorm:"column:payment_status;not null"`
	Status        enums.BookingStatus `gorm:"column:status;not null;default:Pending"`

	CarMake             *string `gorm:"column:car_make"`
	CarType             *string `gorm:"column:car_type"`
	VehicleNumber       *string `gorm:"column:vehicle_number"`
	Color               *string `gorm:"column:color"`
	SpecialInstructions *string `gorm:"column:special_instructions"`
	PromoCode           *string `gorm:"column:promo_code"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate assigns the identifier application-side so the SQLite
// fallback matches Postgres behavior.
func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
