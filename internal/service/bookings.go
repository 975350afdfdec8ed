package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"afisha/internal/errors"
	"afisha/internal/metrics"
	"afisha/internal/models"
	"afisha/internal/money"
	"afisha/internal/repository"
)

// Booking outcome messages. These are business results, not errors: a sold
// out or already-started show is an expected answer, not a failure of the
// caller or the system.
const (
	msgNoShows          = "Booking Unavailable"
	msgNoCapacity       = "Booking not possible. Reason: Booking Unavailable"
	msgAlreadyStarted   = "Booking not possible. Reason: Show Already Started"
	msgAlreadyCancelled = "Booking already cancelled."
	msgNoRefund         = "Cancelled. No refund per policy (show started or ended)."
)

// BookingService is the reservation/cancellation engine. All effects of a
// single order - seat decrement, booking record, cinema rollup - happen
// under one show's exclusivity guard, so no partial effect is ever visible
// to a concurrent caller.
type BookingService struct {
	bookingRepo *repository.BookingRepository
	showRepo    *repository.ShowRepository
	cinemaRepo  *repository.CinemaRepository
	metrics     *metrics.Metrics
}

func NewBookingService(bookingRepo *repository.BookingRepository, showRepo *repository.ShowRepository, cinemaRepo *repository.CinemaRepository, m *metrics.Metrics) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		showRepo:    showRepo,
		cinemaRepo:  cinemaRepo,
		metrics:     m,
	}
}

// OrderTicket books the requested number of tickets on the cheapest
// scheduled show matching (movie, when) that still has capacity. Candidates
// are tried in ascending (price, show id) order, so selection is
// deterministic for equal prices. The returned response always carries a
// message; BookingID is set only on success.
//
// A non-positive ticket count is a caller contract violation and is
// rejected with an error before the engine runs.
func (s *BookingService) OrderTicket(ctx context.Context, movie, when string, tickets int64) (*models.OrderTicketResponse, error) {
	if tickets <= 0 {
		return nil, fmt.Errorf("ticket count must be positive: %w", errors.ErrInvalidOperation)
	}

	candidates := s.showRepo.Find(movie, when)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].PriceCents != candidates[j].PriceCents {
			return candidates[i].PriceCents < candidates[j].PriceCents
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) == 0 {
		slog.Info("order_ticket: no shows", "movie", movie, "when", when)
		s.metrics.OrdersTotal.WithLabelValues("no_match").Inc()
		return &models.OrderTicketResponse{Message: msgNoShows}, nil
	}

	notScheduled := false
	for _, show := range candidates {
		show.Lock()
		if show.Status != models.ShowScheduled {
			notScheduled = true
			show.Unlock()
			continue
		}
		if show.Available < tickets {
			show.Unlock()
			continue
		}

		// Reserve the seats and create the booking while still holding the
		// show's guard: either all effects land or none do.
		show.Available -= tickets

		bookingID := s.bookingRepo.NewID()
		totalCents := show.PriceCents * tickets
		booking := &models.Booking{
			ID:             bookingID,
			ShowID:         show.ID,
			CinemaName:     show.CinemaName,
			Tickets:        tickets,
			UnitPriceCents: show.PriceCents,
			TotalCents:     totalCents,
		}
		show.BookingIDs = append(show.BookingIDs, bookingID)
		s.bookingRepo.Add(booking)

		s.cinemaRepo.GetOrCreate(show.CinemaName).ApplySale(totalCents, tickets)
		show.Unlock()

		s.metrics.OrdersTotal.WithLabelValues("booked").Inc()
		s.metrics.TicketsSold.Add(float64(tickets))
		slog.Info("order_ticket: success", "booking_id", bookingID, "show_id", show.ID)

		return &models.OrderTicketResponse{
			BookingID: bookingID,
			Message:   fmt.Sprintf("%d tickets booked with total bill: %s", tickets, money.Format(totalCents)),
		}, nil
	}

	if notScheduled {
		s.metrics.OrdersTotal.WithLabelValues("already_started").Inc()
		return &models.OrderTicketResponse{Message: msgAlreadyStarted}, nil
	}
	s.metrics.OrdersTotal.WithLabelValues("unavailable").Inc()
	return &models.OrderTicketResponse{Message: msgNoCapacity}, nil
}

// CancelBooking cancels a booking. While the show is still scheduled the
// caller gets half the total back (rounded down to the cent) and the seats
// return to the pool; once the show has started there is no refund and no
// seat restoration. Cancelling twice is a no-op that repeats the message.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) (*models.CancelBookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Cancelled {
		s.metrics.CancellationsTotal.WithLabelValues("already_cancelled").Inc()
		return &models.CancelBookingResponse{Message: msgAlreadyCancelled}, nil
	}

	show, err := s.showRepo.GetByID(booking.ShowID)
	if err != nil {
		return nil, fmt.Errorf("booking %q references missing show: %w", bookingID, err)
	}

	show.Lock()
	defer show.Unlock()

	// Re-check under the guard: a concurrent cancel of the same booking
	// serializes here, and only the first one applies the refund.
	if booking.Cancelled {
		s.metrics.CancellationsTotal.WithLabelValues("already_cancelled").Inc()
		return &models.CancelBookingResponse{Message: msgAlreadyCancelled}, nil
	}

	var refundCents int64
	if show.Status == models.ShowScheduled {
		refundCents = booking.TotalCents / 2
		show.Available += booking.Tickets
		s.cinemaRepo.GetOrCreate(show.CinemaName).ApplyRefund(refundCents, booking.Tickets)
		s.metrics.TicketsRefunded.Add(float64(booking.Tickets))
		slog.Info("cancel_booking: 50% refund", "booking_id", bookingID, "refund_cents", refundCents)
	} else {
		slog.Info("cancel_booking: no refund (started)", "booking_id", bookingID)
	}

	// The flag flip and refund record share the guard scope with the branch
	// decision above, so a concurrent status transition cannot slip between
	// them.
	booking.Cancelled = true
	booking.RefundCents = refundCents

	if refundCents > 0 {
		s.metrics.CancellationsTotal.WithLabelValues("refunded").Inc()
		return &models.CancelBookingResponse{
			Message: fmt.Sprintf("Cancelled. Refund issued: %s", money.Format(refundCents)),
		}, nil
	}
	s.metrics.CancellationsTotal.WithLabelValues("no_refund").Inc()
	return &models.CancelBookingResponse{Message: msgNoRefund}, nil
}
