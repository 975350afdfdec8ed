package models

// RegisterShowRequest - request body for registering a show
type RegisterShowRequest struct {
	Cinema   string  `json:"cinema" binding:"required"`
	Movie    string  `json:"movie" binding:"required"`
	When     string  `json:"when" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Capacity int64   `json:"capacity" binding:"required,gt=0"`
}

// RegisterShowResponse carries the generated show id
type RegisterShowResponse struct {
	ID string `json:"id"`
}

// UpdatePriceRequest - request body for updating a scheduled show's price
type UpdatePriceRequest struct {
	ShowID string  `json:"show_id" binding:"required"`
	Price  float64 `json:"price" binding:"min=0"`
}

// ShowLifecycleRequest - request body for start/end transitions
type ShowLifecycleRequest struct {
	ShowID string `json:"show_id" binding:"required"`
}

// OrderTicketRequest - request body for ordering tickets
type OrderTicketRequest struct {
	Movie   string `json:"movie" binding:"required"`
	When    string `json:"when" binding:"required"`
	Tickets int64  `json:"tickets" binding:"required,gt=0"`
}

// OrderTicketResponse reports the outcome of an order. BookingID is empty
// when the order could not be placed; Message explains either way.
type OrderTicketResponse struct {
	BookingID string `json:"booking_id,omitempty"`
	Message   string `json:"message"`
}

// CancelBookingRequest - request body for cancelling a booking
type CancelBookingRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

// CancelBookingResponse carries the cancellation/refund message
type CancelBookingResponse struct {
	Message string `json:"message"`
}

// StatsResponse - one formatted report line per cinema, sorted by name
type StatsResponse struct {
	Lines []string `json:"lines"`
}
