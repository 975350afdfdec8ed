package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the application's Prometheus instruments.
type Metrics struct {
	// Order attempts by outcome: booked, unavailable, already_started, no_match
	OrdersTotal *prometheus.CounterVec

	// Cancellations by outcome: refunded, no_refund, already_cancelled
	CancellationsTotal *prometheus.CounterVec

	// Tickets sold and refunded across all cinemas
	TicketsSold     prometheus.Counter
	TicketsRefunded prometheus.Counter
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the instruments on the given registry. Tests use
// a fresh registry to avoid duplicate-registration panics.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "afisha_orders_total",
				Help: "Total number of ticket order attempts by outcome",
			},
			[]string{"outcome"},
		),
		CancellationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "afisha_cancellations_total",
				Help: "Total number of booking cancellations by outcome",
			},
			[]string{"outcome"},
		),
		TicketsSold: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "afisha_tickets_sold_total",
				Help: "Total number of tickets sold",
			},
		),
		TicketsRefunded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "afisha_tickets_refunded_total",
				Help: "Total number of tickets refunded",
			},
		),
	}

	reg.MustRegister(m.OrdersTotal, m.CancellationsTotal, m.TicketsSold, m.TicketsRefunded)
	return m
}
