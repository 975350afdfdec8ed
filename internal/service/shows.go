package service

import (
	"context"
	"fmt"
	"log/slog"

	"afisha/internal/errors"
	"afisha/internal/models"
	"afisha/internal/money"
	"afisha/internal/repository"
)

// ShowService owns show registration and the Scheduled -> Started -> Ended
// lifecycle. Every genuine transition bumps the owning cinema's counters
// exactly once; repeated Start and End calls are silent no-ops in the
// forward direction.
type ShowService struct {
	showRepo   *repository.ShowRepository
	cinemaRepo *repository.CinemaRepository
}

func NewShowService(showRepo *repository.ShowRepository, cinemaRepo *repository.CinemaRepository) *ShowService {
	return &ShowService{
		showRepo:   showRepo,
		cinemaRepo: cinemaRepo,
	}
}

// Register creates a show in Scheduled state with all seats available.
// Price is a major-unit amount and is rounded to the nearest cent. The
// cinema aggregate is created on first reference.
func (s *ShowService) Register(ctx context.Context, cinemaName, movie, when string, price float64, capacity int64) (string, error) {
	if capacity <= 0 {
		return "", fmt.Errorf("capacity must be positive: %w", errors.ErrInvalidOperation)
	}
	priceCents := money.ToCents(price)
	if priceCents < 0 {
		return "", fmt.Errorf("price must not be negative: %w", errors.ErrInvalidOperation)
	}

	cinema := s.cinemaRepo.GetOrCreate(cinemaName)
	showID := s.showRepo.NewID()
	show := models.NewShow(showID, cinema.Name, movie, when, priceCents, capacity)
	s.showRepo.Add(show)

	slog.Info("register_show",
		"show_id", showID,
		"cinema", cinemaName,
		"movie", movie,
		"when", when)
	return showID, nil
}

// UpdatePrice changes the ticket price of a still-scheduled show. Existing
// bookings keep their snapshotted unit price.
func (s *ShowService) UpdatePrice(ctx context.Context, showID string, newPrice float64) error {
	priceCents := money.ToCents(newPrice)
	if priceCents < 0 {
		return fmt.Errorf("price must not be negative: %w", errors.ErrInvalidOperation)
	}

	show, err := s.showRepo.GetByID(showID)
	if err != nil {
		return err
	}

	show.Lock()
	defer show.Unlock()

	if show.Status != models.ShowScheduled {
		slog.Warn("update_price rejected (not scheduled)", "show_id", showID)
		return fmt.Errorf("cannot update price after show has started or ended: %w", errors.ErrInvalidOperation)
	}
	old := show.PriceCents
	show.PriceCents = priceCents

	slog.Info("update_price", "show_id", showID, "old_cents", old, "new_cents", priceCents)
	return nil
}

// Start moves a scheduled show to Started. Starting an already-started show
// is a no-op; starting an ended show is an invalid operation.
func (s *ShowService) Start(ctx context.Context, showID string) error {
	show, err := s.showRepo.GetByID(showID)
	if err != nil {
		return err
	}

	show.Lock()
	defer show.Unlock()

	switch show.Status {
	case models.ShowStarted:
		slog.Debug("start_show: already started", "show_id", showID)
		return nil
	case models.ShowEnded:
		slog.Warn("start_show rejected (already ended)", "show_id", showID)
		return fmt.Errorf("cannot start a show that has already ended: %w", errors.ErrInvalidOperation)
	}

	show.Status = models.ShowStarted
	s.cinemaRepo.GetOrCreate(show.CinemaName).NoteShowStarted()

	slog.Info("start_show", "show_id", showID)
	return nil
}

// End moves a started show to Ended. Ending an already-ended show is a
// no-op; ending a show that never started is an invalid operation.
func (s *ShowService) End(ctx context.Context, showID string) error {
	show, err := s.showRepo.GetByID(showID)
	if err != nil {
		return err
	}

	show.Lock()
	defer show.Unlock()

	switch show.Status {
	case models.ShowScheduled:
		slog.Warn("end_show rejected (not started)", "show_id", showID)
		return fmt.Errorf("cannot end show that has not started yet: %w", errors.ErrInvalidOperation)
	case models.ShowEnded:
		slog.Debug("end_show: already ended", "show_id", showID)
		return nil
	}

	show.Status = models.ShowEnded
	s.cinemaRepo.GetOrCreate(show.CinemaName).NoteShowEnded()

	slog.Info("end_show", "show_id", showID)
	return nil
}
