package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"

	"afisha/internal/models"
)

var (
	baseURL  = flag.String("url", "http://localhost:8081", "Base URL of the running API")
	shows    = flag.Int("shows", 12, "Number of shows to register")
	orders   = flag.Int("orders", 200, "Number of ticket orders to attempt")
	cancelPc = flag.Int("cancel-pct", 25, "Percentage of successful orders to cancel")
	reset    = flag.Bool("reset", false, "Reset the store before generating")
)

var cinemas = []string{"Aurora", "Baltika", "Kosmos", "Rodina", "Zenit"}

var movies = []string{"Solaris", "Stalker", "Mirror", "The Sacrifice", "Ivan's Childhood"}

var slots = []string{
	"02/05/2025 10:00 AM",
	"02/05/2025 02:00 PM",
	"02/05/2025 08:00 PM",
	"03/05/2025 10:00 AM",
	"03/05/2025 08:00 PM",
}

// generator seeds a running instance with demo traffic: shows across a few
// cinemas, a burst of ticket orders, and a share of cancellations, then
// prints the per-cinema report.
type generator struct {
	client *http.Client
}

func main() {
	flag.Parse()

	slog.Info("Starting demo traffic generator", "url", *baseURL)

	g := &generator{client: &http.Client{}}

	if *reset {
		if err := g.do("POST", "/api/reset", nil, nil); err != nil {
			slog.Error("Failed to reset store", "error", err)
			os.Exit(1)
		}
	}

	if err := g.registerShows(); err != nil {
		slog.Error("Failed to register shows", "error", err)
		os.Exit(1)
	}

	bookingIDs, err := g.orderTickets()
	if err != nil {
		slog.Error("Failed to order tickets", "error", err)
		os.Exit(1)
	}

	if err := g.cancelSome(bookingIDs); err != nil {
		slog.Error("Failed to cancel bookings", "error", err)
		os.Exit(1)
	}

	if err := g.printStats(); err != nil {
		slog.Error("Failed to fetch stats", "error", err)
		os.Exit(1)
	}

	slog.Info("Demo traffic generation completed")
}

func (g *generator) registerShows() error {
	for i := 0; i < *shows; i++ {
		req := models.RegisterShowRequest{
			Cinema:   cinemas[rand.Intn(len(cinemas))],
			Movie:    movies[rand.Intn(len(movies))],
			When:     slots[rand.Intn(len(slots))],
			Price:    float64(300+rand.Intn(1200)) / 100,
			Capacity: int64(20 + rand.Intn(80)),
		}

		var resp models.RegisterShowResponse
		if err := g.do("POST", "/api/shows", req, &resp); err != nil {
			return err
		}
		slog.Info("Registered show", "show_id", resp.ID, "cinema", req.Cinema, "movie", req.Movie, "when", req.When)
	}
	return nil
}

func (g *generator) orderTickets() ([]string, error) {
	var booked []string
	for i := 0; i < *orders; i++ {
		req := models.OrderTicketRequest{
			Movie:   movies[rand.Intn(len(movies))],
			When:    slots[rand.Intn(len(slots))],
			Tickets: int64(1 + rand.Intn(4)),
		}

		var resp models.OrderTicketResponse
		if err := g.do("POST", "/api/bookings", req, &resp); err != nil {
			return nil, err
		}
		if resp.BookingID != "" {
			booked = append(booked, resp.BookingID)
		}
	}
	slog.Info("Ordered tickets", "attempts", *orders, "booked", len(booked))
	return booked, nil
}

func (g *generator) cancelSome(bookingIDs []string) error {
	var cancelled int
	for _, id := range bookingIDs {
		if rand.Intn(100) >= *cancelPc {
			continue
		}
		var resp models.CancelBookingResponse
		if err := g.do("PATCH", "/api/bookings/cancel", models.CancelBookingRequest{BookingID: id}, &resp); err != nil {
			return err
		}
		cancelled++
	}
	slog.Info("Cancelled bookings", "cancelled", cancelled)
	return nil
}

func (g *generator) printStats() error {
	resp, err := g.client.Get(*baseURL + "/api/stats")
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer resp.Body.Close()

	var stats models.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return fmt.Errorf("failed to decode stats: %w", err)
	}

	for _, line := range stats.Lines {
		fmt.Println(line)
	}
	return nil
}

func (g *generator) do(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequest(method, *baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s answered %d", path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}
