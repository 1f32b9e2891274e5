package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.temporal.io/sdk/client"

	"techtravel/internal/auth"
	"techtravel/internal/database"
	"techtravel/internal/models"
	"techtravel/internal/travel"
)

type Handler struct {
	DB             *database.DB
	Auth           *auth.Service
	TemporalClient client.Client

	assembler *travel.Assembler
	search    *travel.Search
	validate  *validator.Validate
}

func NewHandler(db *database.DB, authService *auth.Service, temporalClient client.Client) *Handler {
	return &Handler{
		DB:             db,
		Auth:           authService,
		TemporalClient: temporalClient,
		assembler:      travel.NewAssembler(db, db),
		search:         travel.NewSearch(db),
		validate:       validator.New(),
	}
}

// Health check endpoint
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

func respond(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"status": "error", "message": message})
}

// respondFailure maps domain and storage errors onto HTTP statuses.
func respondFailure(w http.ResponseWriter, err error) {
	var verr *travel.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, database.ErrFlightNotFound),
		errors.Is(err, database.ErrItineraryNotFound),
		errors.Is(err, database.ErrAirlineNotFound),
		errors.Is(err, database.ErrAirportNotFound),
		errors.Is(err, database.ErrUserNotFound),
		errors.Is(err, database.ErrBookingNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, database.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) validateBody(w http.ResponseWriter, v any) bool {
	if err := h.validate.Struct(v); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// CreateItinerary assembles a new itinerary from a list of flight ids.
func (h *Handler) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	itinerary, err := h.assembler.Assemble(r.Context(), req.FlightIDs)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusCreated, itinerary)
}

func (h *Handler) ListItineraries(w http.ResponseWriter, r *http.Request) {
	itineraries, err := h.DB.FindAllItineraries(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}
	respond(w, http.StatusOK, itineraries)
}

func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	itinerary, err := h.DB.GetItinerary(r.Context(), id)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusOK, itinerary)
}

func (h *Handler) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.DB.DeleteItinerary(r.Context(), id); err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}

// SearchAvailability answers an availability query over the itinerary corpus.
func (h *Handler) SearchAvailability(w http.ResponseWriter, r *http.Request) {
	var req models.AvailabilityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.search.Availability(r.Context(), req)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, result)
}
