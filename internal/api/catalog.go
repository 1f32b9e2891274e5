package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"techtravel/internal/models"
)

// Flight, airline and airport management. These endpoints own the data the
// itinerary core reads.

func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.DB.FindAllFlights(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	if flights == nil {
		flights = []models.Flight{}
	}
	respond(w, http.StatusOK, flights)
}

func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFlightRequest
	if !decodeBody(w, r, &req) || !h.validateBody(w, &req) {
		return
	}
	if !req.ArrivalDatetime.After(req.DepartureDatetime) {
		respondError(w, http.StatusBadRequest, "arrival_datetime must be after departure_datetime")
		return
	}
	if _, err := h.DB.GetAirline(r.Context(), req.AirlineID); err != nil {
		respondFailure(w, err)
		return
	}

	flight := &models.Flight{
		ID:                uuid.New().String(),
		FlightNumber:      req.FlightNumber,
		AirlineID:         req.AirlineID,
		OriginIATA:        req.OriginIATA,
		DestinationIATA:   req.DestinationIATA,
		DepartureDatetime: req.DepartureDatetime,
		ArrivalDatetime:   req.ArrivalDatetime,
		Frequency:         req.Frequency,
	}
	if err := h.DB.CreateFlight(r.Context(), flight); err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusCreated, flight)
}

func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.DB.GetFlight(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusOK, flight)
}

func (h *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateFlightRequest
	if !decodeBody(w, r, &req) || !h.validateBody(w, &req) {
		return
	}

	flight, err := h.DB.UpdateFlight(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusOK, flight)
}

func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteFlight(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}

func (h *Handler) ListAirlines(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.DB.FindAllAirlines(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	if airlines == nil {
		airlines = []models.Airline{}
	}
	respond(w, http.StatusOK, airlines)
}

func (h *Handler) CreateAirline(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAirlineRequest
	if !decodeBody(w, r, &req) || !h.validateBody(w, &req) {
		return
	}

	airline := &models.Airline{ID: uuid.New().String(), Name: req.Name, IATACode: req.IATACode}
	if err := h.DB.CreateAirline(r.Context(), airline); err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusCreated, airline)
}

func (h *Handler) GetAirline(w http.ResponseWriter, r *http.Request) {
	airline, err := h.DB.GetAirline(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusOK, airline)
}

func (h *Handler) DeleteAirline(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteAirline(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}

func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := h.DB.FindAllAirports(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	if airports == nil {
		airports = []models.Airport{}
	}
	respond(w, http.StatusOK, airports)
}

func (h *Handler) CreateAirport(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAirportRequest
	if !decodeBody(w, r, &req) || !h.validateBody(w, &req) {
		return
	}

	airport := &models.Airport{ID: uuid.New().String(), Name: req.Name, IATACode: req.IATACode}
	if err := h.DB.CreateAirport(r.Context(), airport); err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusCreated, airport)
}

func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	airport, err := h.DB.GetAirport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusOK, airport)
}

func (h *Handler) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteAirport(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}
