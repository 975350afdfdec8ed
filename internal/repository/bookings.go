package repository

import (
	"afisha/internal/models"
	"afisha/internal/store"
)

type BookingRepository struct {
	db *store.Store
}

func NewBookingRepository(db *store.Store) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Add(b *models.Booking) {
	r.db.AddBooking(b)
}

func (r *BookingRepository) GetByID(id string) (*models.Booking, error) {
	return r.db.GetBooking(id)
}

func (r *BookingRepository) All() []*models.Booking {
	return r.db.AllBookings()
}

// NewID produces a fresh booking identifier.
func (r *BookingRepository) NewID() string {
	return r.db.GenID()
}
