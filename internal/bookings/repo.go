package bookings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washlane/washlane-backend/internal/repo"
	"github.com/washlane/washlane-backend/pkg/db/models"
)

// Repository exposes booking persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a bookings repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts the booking and returns the persisted model.
func (r *Repository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := r.DB(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// ListByUser returns the user's bookings, most recent first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var rows []models.Booking
	err := r.DB(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
