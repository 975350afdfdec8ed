package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerCinemaStatsEmpty(t *testing.T) {
	svcs, _ := newTestServices(t)

	assert.Empty(t, svcs.Stats.PerCinemaStats(context.Background()))
}

func TestPerCinemaStatsSingleCinema(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Shows.Register(ctx, "Aurora", "Solaris", "w", 10.00, 10)
	require.NoError(t, err)

	_, err = svcs.Bookings.OrderTicket(ctx, "Solaris", "w", 4)
	require.NoError(t, err)

	lines := svcs.Stats.PerCinemaStats(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t,
		"Aurora | Net: 40  Gross: 40  Refunds: 0 | Tickets: 4 (Refunded: 0)  Bookings: 1 | Shows: 0/0 | Avg: 10.00 | Cap: 10  Rem: 6  Fill: 40.0% | Top: Solaris",
		lines[0])
}

func TestPerCinemaStatsSortedByName(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Shows.Register(ctx, "Zenit", "Solaris", "w", 5.00, 10)
	require.NoError(t, err)
	_, err = svcs.Shows.Register(ctx, "Aurora", "Solaris", "w", 5.00, 10)
	require.NoError(t, err)
	_, err = svcs.Shows.Register(ctx, "Baltika", "Solaris", "w", 5.00, 10)
	require.NoError(t, err)

	lines := svcs.Stats.PerCinemaStats(ctx)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Aurora |"))
	assert.True(t, strings.HasPrefix(lines[1], "Baltika |"))
	assert.True(t, strings.HasPrefix(lines[2], "Zenit |"))
}

func TestPerCinemaStatsNoSalesNoTopMovie(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Shows.Register(ctx, "Aurora", "Solaris", "w", 5.00, 10)
	require.NoError(t, err)

	lines := svcs.Stats.PerCinemaStats(ctx)
	require.Len(t, lines, 1)
	// No divisions by zero: average price is 0.00, fill is 0.0%
	assert.Contains(t, lines[0], "Avg: 0.00")
	assert.Contains(t, lines[0], "Fill: 0.0%")
	assert.NotContains(t, lines[0], "Top:")
}

func TestPerCinemaStatsTopMovie(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Shows.Register(ctx, "Aurora", "Solaris", "w1", 10.00, 10)
	require.NoError(t, err)
	_, err = svcs.Shows.Register(ctx, "Aurora", "Stalker", "w2", 5.00, 10)
	require.NoError(t, err)

	// Solaris grosses 30.00, Stalker 25.00
	_, err = svcs.Bookings.OrderTicket(ctx, "Solaris", "w1", 3)
	require.NoError(t, err)
	_, err = svcs.Bookings.OrderTicket(ctx, "Stalker", "w2", 5)
	require.NoError(t, err)

	lines := svcs.Stats.PerCinemaStats(ctx)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "| Top: Solaris"), lines[0])
}

func TestPerCinemaStatsTopMovieTieBreak(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Shows.Register(ctx, "Aurora", "Stalker", "w1", 10.00, 10)
	require.NoError(t, err)
	_, err = svcs.Shows.Register(ctx, "Aurora", "Mirror", "w2", 10.00, 10)
	require.NoError(t, err)

	// Equal grosses: the lexicographically smaller title wins
	_, err = svcs.Bookings.OrderTicket(ctx, "Stalker", "w1", 2)
	require.NoError(t, err)
	_, err = svcs.Bookings.OrderTicket(ctx, "Mirror", "w2", 2)
	require.NoError(t, err)

	lines := svcs.Stats.PerCinemaStats(ctx)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "| Top: Mirror"), lines[0])
}

func TestPerCinemaStatsCountsCancelledBookingsInGross(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Shows.Register(ctx, "Aurora", "Solaris", "w", 10.00, 10)
	require.NoError(t, err)

	order, err := svcs.Bookings.OrderTicket(ctx, "Solaris", "w", 2)
	require.NoError(t, err)
	_, err = svcs.Bookings.CancelBooking(ctx, order.BookingID)
	require.NoError(t, err)

	lines := svcs.Stats.PerCinemaStats(ctx)
	require.Len(t, lines, 1)
	// Gross keeps the cancelled sale, net drops by the refund, seats return
	assert.Equal(t,
		"Aurora | Net: 10  Gross: 20  Refunds: 10 | Tickets: 2 (Refunded: 2)  Bookings: 1 | Shows: 0/0 | Avg: 10.00 | Cap: 10  Rem: 10  Fill: 20.0% | Top: Solaris",
		lines[0])
}
