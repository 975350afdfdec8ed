package models

import "sync"

// ShowStatus is the lifecycle state of a show
type ShowStatus string

const (
	ShowScheduled ShowStatus = "SCHEDULED"
	ShowStarted   ShowStatus = "STARTED"
	ShowEnded     ShowStatus = "ENDED"
)

// Cinema holds the running financial and occupancy rollups for one cinema.
// Rollups are mutated from whichever show is being operated on, so two
// purchases against different shows of the same cinema may update these
// counters concurrently. Every mutation therefore goes through a method
// that takes the aggregate's own mutex, keeping the multi-field updates
// indivisible and the revenue = gross - refunds invariant intact.
type Cinema struct {
	Name string

	mu                sync.Mutex
	revenueCents      int64 // net after refunds
	grossRevenueCents int64 // before refunds
	refundsCents      int64
	ticketsSold       int64
	ticketsRefunded   int64
	bookingsCount     int64
	showsStarted      int64
	showsEnded        int64
}

// NewCinema creates an empty aggregate for the given name.
func NewCinema(name string) *Cinema {
	return &Cinema{Name: name}
}

// ApplySale records a successful booking: gross and net revenue grow by the
// booking total, ticket and booking counters advance.
func (c *Cinema) ApplySale(totalCents int64, tickets int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grossRevenueCents += totalCents
	c.revenueCents += totalCents
	c.ticketsSold += tickets
	c.bookingsCount++
}

// ApplyRefund records a cancellation refund: net revenue shrinks by the
// refunded amount, refund totals and refunded-ticket counters advance.
// Gross revenue is untouched.
func (c *Cinema) ApplyRefund(refundCents int64, tickets int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revenueCents -= refundCents
	c.refundsCents += refundCents
	c.ticketsRefunded += tickets
}

// NoteShowStarted counts one genuine Scheduled -> Started transition.
func (c *Cinema) NoteShowStarted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showsStarted++
}

// NoteShowEnded counts one genuine Started -> Ended transition.
func (c *Cinema) NoteShowEnded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showsEnded++
}

// Snapshot returns a consistent copy of the aggregate's counters.
func (c *Cinema) Snapshot() CinemaSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CinemaSnapshot{
		Name:              c.Name,
		RevenueCents:      c.revenueCents,
		GrossRevenueCents: c.grossRevenueCents,
		RefundsCents:      c.refundsCents,
		TicketsSold:       c.ticketsSold,
		TicketsRefunded:   c.ticketsRefunded,
		BookingsCount:     c.bookingsCount,
		ShowsStarted:      c.showsStarted,
		ShowsEnded:        c.showsEnded,
	}
}

// CinemaSnapshot is a point-in-time copy of a cinema aggregate.
type CinemaSnapshot struct {
	Name              string `json:"name"`
	RevenueCents      int64  `json:"revenue_cents"`
	GrossRevenueCents int64  `json:"gross_revenue_cents"`
	RefundsCents      int64  `json:"refunds_cents"`
	TicketsSold       int64  `json:"tickets_sold"`
	TicketsRefunded   int64  `json:"tickets_refunded"`
	BookingsCount     int64  `json:"bookings_count"`
	ShowsStarted      int64  `json:"shows_started"`
	ShowsEnded        int64  `json:"shows_ended"`
}

// Show is a scheduled screening with finite capacity. The embedded mutex is
// the show's exclusivity guard: all mutations of Available, Status,
// PriceCents and BookingIDs, and any cinema rollup performed on behalf of
// this show, happen while it is held.
type Show struct {
	mu sync.Mutex

	ID         string
	CinemaName string
	Movie      string
	// When is the scheduling string exactly as supplied at registration
	// (e.g. "02/05/2025 10:00 AM"). It is opaque: compared for equality,
	// never parsed.
	When       string
	PriceCents int64
	Capacity   int64
	Available  int64
	Status     ShowStatus
	// BookingIDs is the historical record of every booking ever issued
	// against this show. Cancellation does not remove entries.
	BookingIDs []string
}

// NewShow creates a show in Scheduled state with all seats available.
func NewShow(id, cinemaName, movie, when string, priceCents, capacity int64) *Show {
	return &Show{
		ID:         id,
		CinemaName: cinemaName,
		Movie:      movie,
		When:       when,
		PriceCents: priceCents,
		Capacity:   capacity,
		Available:  capacity,
		Status:     ShowScheduled,
	}
}

// Lock acquires the show's exclusivity guard, blocking until it is free.
func (s *Show) Lock() { s.mu.Lock() }

// Unlock releases the show's exclusivity guard.
func (s *Show) Unlock() { s.mu.Unlock() }

// Booking is one ticket purchase against one show. UnitPriceCents is
// snapshotted at purchase time; later price updates on the show must not
// affect it. A cancelled booking is terminal.
type Booking struct {
	ID             string `json:"id"`
	ShowID         string `json:"show_id"`
	CinemaName     string `json:"cinema_name"`
	Tickets        int64  `json:"tickets"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCents     int64  `json:"total_cents"`
	Cancelled      bool   `json:"cancelled"`
	RefundCents    int64  `json:"refund_cents"`
}
