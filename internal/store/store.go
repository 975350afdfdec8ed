package store

import (
	"fmt"
	"log/slog"
	"sync"

	"afisha/internal/errors"
	"afisha/internal/models"

	"github.com/google/uuid"
)

// Store is the in-memory keyed store for all entities. It is constructed
// once by the application entry point and passed by reference to every
// repository; there is no ambient global. The internal RWMutex only covers
// table access (individual lookups and inserts) - business mutations of the
// entities themselves are governed by the per-show guards.
type Store struct {
	mu       sync.RWMutex
	cinemas  map[string]*models.Cinema
	shows    map[string]*models.Show
	bookings map[string]*models.Booking
}

// New creates an empty store.
func New() *Store {
	return &Store{
		cinemas:  make(map[string]*models.Cinema),
		shows:    make(map[string]*models.Show),
		bookings: make(map[string]*models.Booking),
	}
}

// GetOrCreateCinema returns the aggregate for the given name, creating it
// on first reference.
func (s *Store) GetOrCreateCinema(name string) *models.Cinema {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cinemas[name]
	if !ok {
		c = models.NewCinema(name)
		s.cinemas[name] = c
		slog.Info("Created cinema", "name", name)
	}
	return c
}

// AllCinemas returns every cinema aggregate.
func (s *Store) AllCinemas() []*models.Cinema {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Cinema, 0, len(s.cinemas))
	for _, c := range s.cinemas {
		out = append(out, c)
	}
	return out
}

// AddShow registers a show under its id.
func (s *Store) AddShow(show *models.Show) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows[show.ID] = show
	slog.Info("Registered show",
		"show_id", show.ID,
		"cinema", show.CinemaName,
		"movie", show.Movie,
		"when", show.When,
		"capacity", show.Capacity,
		"price_cents", show.PriceCents)
}

// GetShow looks a show up by id.
func (s *Store) GetShow(id string) (*models.Show, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	show, ok := s.shows[id]
	if !ok {
		return nil, fmt.Errorf("show %q: %w", id, errors.ErrShowNotFound)
	}
	return show, nil
}

// FindShows returns every show matching movie and scheduling string by
// exact equality. Order is unspecified; callers sort as needed.
func (s *Store) FindShows(movie, when string) []*models.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Show
	for _, show := range s.shows {
		if show.Movie == movie && show.When == when {
			out = append(out, show)
		}
	}
	return out
}

// AllShows returns every registered show.
func (s *Store) AllShows() []*models.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Show, 0, len(s.shows))
	for _, show := range s.shows {
		out = append(out, show)
	}
	return out
}

// AddBooking registers a booking under its id.
func (s *Store) AddBooking(b *models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
	slog.Info("Booking created",
		"booking_id", b.ID,
		"show_id", b.ShowID,
		"cinema", b.CinemaName,
		"tickets", b.Tickets,
		"total_cents", b.TotalCents)
}

// GetBooking looks a booking up by id.
func (s *Store) GetBooking(id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %q: %w", id, errors.ErrBookingNotFound)
	}
	return b, nil
}

// AllBookings returns every booking ever created, cancelled or not.
func (s *Store) AllBookings() []*models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out
}

// GenID produces a new unique identifier.
func (s *Store) GenID() string {
	return uuid.New().String()
}

// Reset drops all entities. Used by tests and the admin reset endpoint.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cinemas = make(map[string]*models.Cinema)
	s.shows = make(map[string]*models.Show)
	s.bookings = make(map[string]*models.Booking)
}
