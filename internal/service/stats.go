package service

import (
	"context"
	"fmt"
	"sort"

	"afisha/internal/money"
	"afisha/internal/repository"
)

// StatsService produces the per-cinema report. It takes no show guards: the
// result is a best-effort snapshot, and counters may reflect in-flight
// concurrent mutations.
type StatsService struct {
	cinemaRepo  *repository.CinemaRepository
	showRepo    *repository.ShowRepository
	bookingRepo *repository.BookingRepository
}

func NewStatsService(cinemaRepo *repository.CinemaRepository, showRepo *repository.ShowRepository, bookingRepo *repository.BookingRepository) *StatsService {
	return &StatsService{
		cinemaRepo:  cinemaRepo,
		showRepo:    showRepo,
		bookingRepo: bookingRepo,
	}
}

// PerCinemaStats returns one formatted line per cinema, sorted by cinema
// name. Each line reports financials, ticket and show counters, average
// realized price, capacity utilization and, when the cinema has sales, its
// top-grossing movie.
func (s *StatsService) PerCinemaStats(ctx context.Context) []string {
	shows := s.showRepo.All()
	bookings := s.bookingRepo.All()

	capByCinema := make(map[string]int64)
	remainingByCinema := make(map[string]int64)
	for _, show := range shows {
		capByCinema[show.CinemaName] += show.Capacity
		remainingByCinema[show.CinemaName] += show.Available
	}

	movieByShow := make(map[string]string, len(shows))
	for _, show := range shows {
		movieByShow[show.ID] = show.Movie
	}

	// Booking totals attributed to the show's movie, per cinema. Cancelled
	// bookings still count: gross is before refunds.
	movieGrossByCinema := make(map[string]map[string]int64)
	for _, b := range bookings {
		d, ok := movieGrossByCinema[b.CinemaName]
		if !ok {
			d = make(map[string]int64)
			movieGrossByCinema[b.CinemaName] = d
		}
		d[movieByShow[b.ShowID]] += b.TotalCents
	}

	cinemas := s.cinemaRepo.All()
	sort.Slice(cinemas, func(i, j int) bool { return cinemas[i].Name < cinemas[j].Name })

	lines := make([]string, 0, len(cinemas))
	for _, c := range cinemas {
		snap := c.Snapshot()
		totalCap := capByCinema[snap.Name]
		remaining := remainingByCinema[snap.Name]
		sold := snap.TicketsSold

		var fill float64
		if totalCap > 0 {
			fill = float64(sold) / float64(totalCap) * 100
		}
		var avgPrice float64
		if sold > 0 {
			avgPrice = float64(snap.GrossRevenueCents) / float64(sold) / 100
		}

		line := fmt.Sprintf(
			"%s | Net: %s  Gross: %s  Refunds: %s | Tickets: %d (Refunded: %d)  Bookings: %d | Shows: %d/%d | Avg: %.2f | Cap: %d  Rem: %d  Fill: %.1f%%",
			snap.Name,
			money.FormatWhole(snap.RevenueCents),
			money.FormatWhole(snap.GrossRevenueCents),
			money.FormatWhole(snap.RefundsCents),
			sold, snap.TicketsRefunded, snap.BookingsCount,
			snap.ShowsStarted, snap.ShowsEnded,
			avgPrice,
			totalCap, remaining, fill,
		)
		if top := topMovie(movieGrossByCinema[snap.Name]); top != "" {
			line += " | Top: " + top
		}
		lines = append(lines, line)
	}

	return lines
}

// topMovie picks the highest-grossing movie. Equal grosses are broken by
// the lexicographically smaller title so the report is reproducible.
func topMovie(grossByMovie map[string]int64) string {
	var top string
	var topGross int64
	for movie, gross := range grossByMovie {
		if top == "" || gross > topGross || (gross == topGross && movie < top) {
			top = movie
			topGross = gross
		}
	}
	return top
}
