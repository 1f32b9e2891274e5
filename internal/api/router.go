package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()

	r.Use(LoggingMiddleware)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(JSONMiddleware)

	// Auth
	api.HandleFunc("/register", h.Register).Methods("POST")
	api.HandleFunc("/login", h.Login).Methods("POST")
	api.HandleFunc("/refresh", h.Refresh).Methods("POST")

	// Itineraries and availability
	api.HandleFunc("/itineraries", h.CreateItinerary).Methods("POST")
	api.HandleFunc("/itineraries", h.ListItineraries).Methods("GET")
	api.HandleFunc("/itineraries/{id}", h.GetItinerary).Methods("GET")
	api.HandleFunc("/itineraries/{id}", h.DeleteItinerary).Methods("DELETE")
	api.HandleFunc("/availability/search", h.SearchAvailability).Methods("POST")

	// Flight catalog
	api.HandleFunc("/flights", h.ListFlights).Methods("GET")
	api.HandleFunc("/flights", h.CreateFlight).Methods("POST")
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods("GET")
	api.HandleFunc("/flights/{id}", h.UpdateFlight).Methods("PUT")
	api.HandleFunc("/flights/{id}", h.DeleteFlight).Methods("DELETE")

	// Reference data
	api.HandleFunc("/airlines", h.ListAirlines).Methods("GET")
	api.HandleFunc("/airlines", h.CreateAirline).Methods("POST")
	api.HandleFunc("/airlines/{id}", h.GetAirline).Methods("GET")
	api.HandleFunc("/airlines/{id}", h.DeleteAirline).Methods("DELETE")
	api.HandleFunc("/airports", h.ListAirports).Methods("GET")
	api.HandleFunc("/airports", h.CreateAirport).Methods("POST")
	api.HandleFunc("/airports/{id}", h.GetAirport).Methods("GET")
	api.HandleFunc("/airports/{id}", h.DeleteAirport).Methods("DELETE")

	// Routes that need an authenticated user
	protected := api.NewRoute().Subrouter()
	protected.Use(h.Authenticate)
	protected.HandleFunc("/profile", h.Profile).Methods("GET")
	protected.HandleFunc("/bookings", h.CreateBooking).Methods("POST")
	protected.HandleFunc("/bookings/{id}", h.CancelBooking).Methods("DELETE")
	protected.HandleFunc("/users/{userId}/bookings", h.GetUserBookings).Methods("GET")

	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return c.Handler(r)
}
