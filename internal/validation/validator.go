package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"afisha/internal/models"
)

// SpecValidator checks a running instance against the API contract: it
// drives the register -> order -> exhaust -> cancel -> stats flow over HTTP
// and verifies statuses and messages.
type SpecValidator struct {
	baseURL string
}

// NewSpecValidator creates a validator targeting the given base URL
func NewSpecValidator(baseURL string) *SpecValidator {
	return &SpecValidator{baseURL: baseURL}
}

// ValidateAll exercises every endpoint group
func (v *SpecValidator) ValidateAll() error {
	log.Println("Starting API contract validation...")

	if err := v.reset(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	if err := v.validateShows(); err != nil {
		return fmt.Errorf("shows validation failed: %w", err)
	}
	if err := v.validateBookings(); err != nil {
		return fmt.Errorf("bookings validation failed: %w", err)
	}
	if err := v.validateStats(); err != nil {
		return fmt.Errorf("stats validation failed: %w", err)
	}

	log.Println("All endpoints validated successfully")
	return nil
}

func (v *SpecValidator) reset() error {
	resp, err := v.makeRequest("POST", "/api/reset", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST /api/reset: expected 200, got %d", resp.StatusCode)
	}
	return nil
}

func (v *SpecValidator) validateShows() error {
	log.Println("Validating shows endpoints...")

	showID, err := v.registerShow("Validator Cinema", "Validator Movie", "02/05/2025 10:00 AM", 10.00, 2)
	if err != nil {
		return err
	}

	// PATCH /api/shows/price while scheduled must succeed
	resp, err := v.makeRequest("PATCH", "/api/shows/price", models.UpdatePriceRequest{ShowID: showID, Price: 10.00})
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PATCH /api/shows/price: expected 200, got %d", resp.StatusCode)
	}

	// Unknown show id must answer 404
	resp, err = v.makeRequest("PATCH", "/api/shows/start", models.ShowLifecycleRequest{ShowID: "no-such-show"})
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("PATCH /api/shows/start (unknown id): expected 404, got %d", resp.StatusCode)
	}

	log.Println("Shows endpoints valid")
	return nil
}

func (v *SpecValidator) validateBookings() error {
	log.Println("Validating bookings endpoints...")

	if _, err := v.registerShow("Validator Cinema", "Sold Out Movie", "W", 10.00, 2); err != nil {
		return err
	}

	// Order the full capacity
	order, status, err := v.orderTicket("Sold Out Movie", "W", 2)
	if err != nil {
		return err
	}
	if status != http.StatusCreated || order.BookingID == "" {
		return fmt.Errorf("POST /api/bookings: expected 201 with booking id, got %d", status)
	}
	if order.Message != "2 tickets booked with total bill: 20.00" {
		return fmt.Errorf("POST /api/bookings: unexpected message %q", order.Message)
	}

	// Capacity exhausted: business refusal with 200
	refused, status, err := v.orderTicket("Sold Out Movie", "W", 1)
	if err != nil {
		return err
	}
	if status != http.StatusOK || refused.BookingID != "" {
		return fmt.Errorf("POST /api/bookings (sold out): expected 200 without booking id, got %d", status)
	}
	if refused.Message != "Booking not possible. Reason: Booking Unavailable" {
		return fmt.Errorf("POST /api/bookings (sold out): unexpected message %q", refused.Message)
	}

	// Cancel while scheduled: half refund
	resp, err := v.makeRequest("PATCH", "/api/bookings/cancel", models.CancelBookingRequest{BookingID: order.BookingID})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PATCH /api/bookings/cancel: expected 200, got %d", resp.StatusCode)
	}
	var cancel models.CancelBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&cancel); err != nil {
		return fmt.Errorf("PATCH /api/bookings/cancel: failed to decode response: %w", err)
	}
	if cancel.Message != "Cancelled. Refund issued: 10.00" {
		return fmt.Errorf("PATCH /api/bookings/cancel: unexpected message %q", cancel.Message)
	}

	log.Println("Bookings endpoints valid")
	return nil
}

func (v *SpecValidator) validateStats() error {
	log.Println("Validating stats endpoint...")

	resp, err := v.makeRequest("GET", "/api/stats", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /api/stats: expected 200, got %d", resp.StatusCode)
	}

	var stats models.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return fmt.Errorf("GET /api/stats: failed to decode response: %w", err)
	}
	if len(stats.Lines) == 0 {
		return fmt.Errorf("GET /api/stats: expected at least one report line")
	}
	for _, line := range stats.Lines {
		if !strings.Contains(line, " | Net: ") {
			return fmt.Errorf("GET /api/stats: malformed report line %q", line)
		}
	}

	log.Println("Stats endpoint valid")
	return nil
}

func (v *SpecValidator) registerShow(cinema, movie, when string, price float64, capacity int64) (string, error) {
	resp, err := v.makeRequest("POST", "/api/shows", models.RegisterShowRequest{
		Cinema:   cinema,
		Movie:    movie,
		When:     when,
		Price:    price,
		Capacity: capacity,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("POST /api/shows: expected 201, got %d", resp.StatusCode)
	}

	var created models.RegisterShowResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("POST /api/shows: failed to decode response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("POST /api/shows: expected non-empty id")
	}
	return created.ID, nil
}

func (v *SpecValidator) orderTicket(movie, when string, tickets int64) (*models.OrderTicketResponse, int, error) {
	resp, err := v.makeRequest("POST", "/api/bookings", models.OrderTicketRequest{
		Movie:   movie,
		When:    when,
		Tickets: tickets,
	})
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var order models.OrderTicketResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, 0, fmt.Errorf("POST /api/bookings: failed to decode response: %w", err)
	}
	return &order, resp.StatusCode, nil
}

func (v *SpecValidator) makeRequest(method, path string, body interface{}) (*http.Response, error) {
	var req *http.Request
	var err error

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		req, err = http.NewRequest(method, v.baseURL+path, bytes.NewBuffer(jsonBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequest(method, v.baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	return resp, nil
}

// RunValidation validates a locally running instance
func RunValidation() {
	baseURL := "http://localhost:8081"

	validator := NewSpecValidator(baseURL)
	if err := validator.ValidateAll(); err != nil {
		log.Fatalf("Validation failed: %v", err)
	}
}
