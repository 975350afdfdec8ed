package repository

import "afisha/internal/store"

type Repositories struct {
	Cinemas  *CinemaRepository
	Shows    *ShowRepository
	Bookings *BookingRepository
}

func NewRepositories(db *store.Store) *Repositories {
	return &Repositories{
		Cinemas:  NewCinemaRepository(db),
		Shows:    NewShowRepository(db),
		Bookings: NewBookingRepository(db),
	}
}
