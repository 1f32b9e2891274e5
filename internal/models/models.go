package models

import "time"

// Booking statuses
const (
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

// Order statuses for the post-booking notification pipeline
const (
	OrderPlaced   = "PLACED"
	OrderNotified = "NOTIFIED"
)

// Flight represents one scheduled flight leg. Flights are owned by the
// flight-management endpoints; the itinerary core only reads them.
type Flight struct {
	ID                string    `json:"id" db:"id"`
	FlightNumber      string    `json:"flight_number" db:"flight_number"`
	AirlineID         string    `json:"airline_id" db:"airline_id"`
	OriginIATA        string    `json:"origin_iata" db:"origin_iata"`
	DestinationIATA   string    `json:"destination_iata" db:"destination_iata"`
	DepartureDatetime time.Time `json:"departure_datetime" db:"departure_datetime"`
	ArrivalDatetime   time.Time `json:"arrival_datetime" db:"arrival_datetime"`
	Frequency         []int     `json:"frequency" db:"frequency"`
	// AirlineIATACode is denormalized from the airline record; empty when the
	// airline is unknown. Used only for availability filtering.
	AirlineIATACode string `json:"airline_iata_code,omitempty" db:"airline_iata_code"`
}

// Itinerary chains one or more flights into a single directional journey.
// The summary fields (origin, destination, timestamps, duration, stops) are
// always derived from the flight sequence, never set independently.
type Itinerary struct {
	ID                   string    `json:"itinerary_id"`
	OriginIATA           string    `json:"origin_iata"`
	DestinationIATA      string    `json:"destination_iata"`
	DepartureDatetime    time.Time `json:"departure_datetime"`
	ArrivalDatetime      time.Time `json:"arrival_datetime"`
	TotalDurationMinutes int       `json:"total_duration_minutes"`
	Stops                int       `json:"stops"`
	Flights              []Flight  `json:"flights"`
}

// Airline and Airport are reference data for the catalog endpoints.
type Airline struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	IATACode string `json:"iata_code" db:"iata_code"`
}

type Airport struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	IATACode string `json:"iata_code" db:"iata_code"`
}

type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Gender    string    `json:"gender" db:"gender"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Booking struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	ItineraryID string    `json:"itinerary_id" db:"itinerary_id"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Order is the record handed to the notification pipeline once a booking is
// confirmed.
type Order struct {
	OrderID    string    `json:"order_id" db:"order_id"`
	BookingID  string    `json:"booking_id" db:"booking_id"`
	Email      string    `json:"email" db:"email"`
	Amount     int       `json:"amount" db:"amount"`
	Status     string    `json:"status" db:"status"`
	WorkflowID string    `json:"workflow_id" db:"workflow_id"`
	RunID      string    `json:"run_id" db:"run_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// AvailabilityRequest is a round-trip availability query. Dates are calendar
// dates in YYYY-MM-DD form; ReturnDate, Airlines and MaxStops are optional.
type AvailabilityRequest struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date,omitempty"`
	Airlines      []string `json:"airlines,omitempty"`
	MaxStops      *int     `json:"max_stops,omitempty"`
}

// AvailabilityResult holds outbound and inbound matches, each capped to the
// search engine's result limit.
type AvailabilityResult struct {
	OutboundItineraries []Itinerary `json:"outbound_itineraries"`
	InboundItineraries  []Itinerary `json:"inbound_itineraries"`
}

// OrderInput is the notification workflow input.
type OrderInput struct {
	OrderID   string `json:"orderId"`
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Amount    int    `json:"amount"`
}

// OrderResult is the notification workflow output.
type OrderResult struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// API request/response models

type CreateItineraryRequest struct {
	FlightIDs []string `json:"flight_ids"`
}

type CreateFlightRequest struct {
	FlightNumber      string    `json:"flight_number" validate:"required"`
	AirlineID         string    `json:"airline_id" validate:"required"`
	OriginIATA        string    `json:"origin_iata" validate:"required,len=3"`
	DestinationIATA   string    `json:"destination_iata" validate:"required,len=3"`
	DepartureDatetime time.Time `json:"departure_datetime" validate:"required"`
	ArrivalDatetime   time.Time `json:"arrival_datetime" validate:"required"`
	Frequency         []int     `json:"frequency" validate:"omitempty,dive,min=0,max=6"`
}

type UpdateFlightRequest struct {
	FlightNumber      *string    `json:"flight_number,omitempty"`
	OriginIATA        *string    `json:"origin_iata,omitempty" validate:"omitempty,len=3"`
	DestinationIATA   *string    `json:"destination_iata,omitempty" validate:"omitempty,len=3"`
	DepartureDatetime *time.Time `json:"departure_datetime,omitempty"`
	ArrivalDatetime   *time.Time `json:"arrival_datetime,omitempty"`
}

type CreateAirlineRequest struct {
	Name     string `json:"name" validate:"required"`
	IATACode string `json:"iata_code" validate:"required,len=2"`
}

type CreateAirportRequest struct {
	Name     string `json:"name" validate:"required"`
	IATACode string `json:"iata_code" validate:"required,len=3"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Gender   string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	User         UserSummary `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateBookingRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	ItineraryID string `json:"itinerary_id" validate:"required"`
}
