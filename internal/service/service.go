package service

import (
	"afisha/internal/metrics"
	"afisha/internal/repository"
	"afisha/internal/store"
)

type Services struct {
	Shows    *ShowService
	Bookings *BookingService
	Stats    *StatsService
	Reset    *ResetService
}

func NewServices(repos *repository.Repositories, db *store.Store, m *metrics.Metrics) *Services {
	showService := NewShowService(repos.Shows, repos.Cinemas)
	bookingService := NewBookingService(repos.Bookings, repos.Shows, repos.Cinemas, m)
	statsService := NewStatsService(repos.Cinemas, repos.Shows, repos.Bookings)
	resetService := NewResetService(db)

	return &Services{
		Shows:    showService,
		Bookings: bookingService,
		Stats:    statsService,
		Reset:    resetService,
	}
}
