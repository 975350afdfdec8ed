package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"afisha/internal/metrics"
	"afisha/internal/models"
	"afisha/internal/repository"
	"afisha/internal/service"
	"afisha/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	db := store.New()
	repos := repository.NewRepositories(db)
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	services := service.NewServices(repos, db, m)
	h := NewHandlers(services)

	r := gin.New()
	api := r.Group("/api")
	{
		shows := api.Group("/shows")
		{
			shows.POST("", h.RegisterShow)
			shows.PATCH("/price", h.UpdatePrice)
			shows.PATCH("/start", h.StartShow)
			shows.PATCH("/end", h.EndShow)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.OrderTicket)
			bookings.PATCH("/cancel", h.CancelBooking)
		}

		api.GET("/stats", h.PerCinemaStats)
		api.POST("/reset", h.ResetStore)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterShow(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/shows", models.RegisterShowRequest{
		Cinema: "Aurora", Movie: "Solaris", When: "02/05/2025 10:00 AM", Price: 10.00, Capacity: 2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.RegisterShowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
}

func TestRegisterShowValidation(t *testing.T) {
	r := setupRouter()

	// Missing movie
	w := doJSON(t, r, "POST", "/api/shows", gin.H{"cinema": "Aurora", "when": "w", "price": 10.0, "capacity": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-positive capacity
	w = doJSON(t, r, "POST", "/api/shows", gin.H{"cinema": "Aurora", "movie": "Solaris", "when": "w", "price": 10.0, "capacity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderAndCancelFlow(t *testing.T) {
	r := setupRouter()

	// Register: cinema A, movie M, when W, price 10.00, capacity 2
	w := doJSON(t, r, "POST", "/api/shows", models.RegisterShowRequest{
		Cinema: "A", Movie: "M", When: "W", Price: 10.00, Capacity: 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Order 2 tickets: success, total 20.00
	w = doJSON(t, r, "POST", "/api/bookings", models.OrderTicketRequest{Movie: "M", When: "W", Tickets: 2})
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.OrderTicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.NotEmpty(t, order.BookingID)
	assert.Equal(t, "2 tickets booked with total bill: 20.00", order.Message)

	// One more ticket: business refusal, not an HTTP error
	w = doJSON(t, r, "POST", "/api/bookings", models.OrderTicketRequest{Movie: "M", When: "W", Tickets: 1})
	require.Equal(t, http.StatusOK, w.Code)
	var refused models.OrderTicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refused))
	assert.Empty(t, refused.BookingID)
	assert.Equal(t, "Booking not possible. Reason: Booking Unavailable", refused.Message)

	// Cancel while still scheduled: half refund
	w = doJSON(t, r, "PATCH", "/api/bookings/cancel", models.CancelBookingRequest{BookingID: order.BookingID})
	require.Equal(t, http.StatusOK, w.Code)
	var cancel models.CancelBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancel))
	assert.Equal(t, "Cancelled. Refund issued: 10.00", cancel.Message)

	// Seats are back: 2 tickets fit again
	w = doJSON(t, r, "POST", "/api/bookings", models.OrderTicketRequest{Movie: "M", When: "W", Tickets: 2})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOrderUnknownMovie(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/bookings", models.OrderTicketRequest{Movie: "Nothing", When: "W", Tickets: 1})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OrderTicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking Unavailable", resp.Message)
}

func TestCancelUnknownBooking(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "PATCH", "/api/bookings/cancel", models.CancelBookingRequest{BookingID: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLifecycleEndpoints(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/shows", models.RegisterShowRequest{
		Cinema: "Aurora", Movie: "Solaris", When: "w", Price: 5.00, Capacity: 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var reg models.RegisterShowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	// End before start: lifecycle violation
	w = doJSON(t, r, "PATCH", "/api/shows/end", models.ShowLifecycleRequest{ShowID: reg.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, "PATCH", "/api/shows/start", models.ShowLifecycleRequest{ShowID: reg.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	// Price updates are rejected once started
	w = doJSON(t, r, "PATCH", "/api/shows/price", models.UpdatePriceRequest{ShowID: reg.ID, Price: 7.00})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, "PATCH", "/api/shows/end", models.ShowLifecycleRequest{ShowID: reg.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown show id
	w = doJSON(t, r, "PATCH", "/api/shows/start", models.ShowLifecycleRequest{ShowID: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/shows", models.RegisterShowRequest{
		Cinema: "Aurora", Movie: "Solaris", When: "w", Price: 10.00, Capacity: 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/bookings", models.OrderTicketRequest{Movie: "Solaris", When: "w", Tickets: 4})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Len(t, stats.Lines, 1)
	assert.Contains(t, stats.Lines[0], "Aurora |")
	assert.Contains(t, stats.Lines[0], "Top: Solaris")
}

func TestResetEndpoint(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, "POST", "/api/shows", models.RegisterShowRequest{
		Cinema: "Aurora", Movie: "Solaris", When: "w", Price: 10.00, Capacity: 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Empty(t, stats.Lines)
}
