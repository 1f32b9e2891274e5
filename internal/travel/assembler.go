package travel

import (
	"context"
	"fmt"
	"sort"
	"time"

	"techtravel/internal/models"
)

// MinConnectionMinutes is the shortest legal gap between one flight's arrival
// and the next flight's departure.
const MinConnectionMinutes = 45

// FlightFinder resolves flight ids against the flight catalog.
type FlightFinder interface {
	FindAllFlights(ctx context.Context) ([]models.Flight, error)
}

// ItineraryStore owns itinerary persistence. CreateItinerary stores the
// flight linkage in the given order and computes the derived summary fields
// from the flight data.
type ItineraryStore interface {
	FindAllItineraries(ctx context.Context) ([]models.Itinerary, error)
	CreateItinerary(ctx context.Context, flightIDs []string) (*models.Itinerary, error)
}

// Assembler validates a set of flights into a single connecting itinerary.
// It holds no mutable state; concurrent calls are independent.
type Assembler struct {
	flights     FlightFinder
	itineraries ItineraryStore
}

func NewAssembler(flights FlightFinder, itineraries ItineraryStore) *Assembler {
	return &Assembler{flights: flights, itineraries: itineraries}
}

// Assemble resolves flightIDs, orders the flights chronologically, validates
// that they form one legal connecting itinerary and persists it. Assembly is
// all-or-nothing: nothing is written unless every check passes.
func (a *Assembler) Assemble(ctx context.Context, flightIDs []string) (*models.Itinerary, error) {
	if len(flightIDs) < 2 {
		return nil, validationErr(CodeTooFewFlights,
			"at least two flights are required to build an itinerary")
	}

	seen := make(map[string]bool, len(flightIDs))
	for _, id := range flightIDs {
		if seen[id] {
			return nil, validationErr(CodeDuplicateFlight,
				fmt.Sprintf("flight id %s appears more than once", id))
		}
		seen[id] = true
	}

	all, err := a.flights.FindAllFlights(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Flight, len(all))
	for _, f := range all {
		byID[f.ID] = f
	}

	selected := make([]models.Flight, 0, len(flightIDs))
	for _, id := range flightIDs {
		f, ok := byID[id]
		if !ok {
			return nil, validationErr(CodeUnknownFlight,
				fmt.Sprintf("flight with id %s not found", id))
		}
		selected = append(selected, f)
	}

	// Caller order is not trusted to be chronological.
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].DepartureDatetime.Before(selected[j].DepartureDatetime)
	})

	for i := 0; i < len(selected)-1; i++ {
		curr := selected[i]
		next := selected[i+1]

		if curr.DestinationIATA != next.OriginIATA {
			return nil, validationErr(CodeRouteDiscontinuity, fmt.Sprintf(
				"destination of flight %s (%s) must match the origin of the next flight %s (%s)",
				curr.FlightNumber, curr.DestinationIATA, next.FlightNumber, next.OriginIATA))
		}

		if !next.DepartureDatetime.After(curr.ArrivalDatetime) {
			return nil, validationErr(CodeNonChronological, fmt.Sprintf(
				"flight %s must depart after flight %s arrives",
				next.FlightNumber, curr.FlightNumber))
		}

		connection := next.DepartureDatetime.Sub(curr.ArrivalDatetime)
		if connection < MinConnectionMinutes*time.Minute {
			return nil, validationErr(CodeShortConnection, fmt.Sprintf(
				"connection between flight %s and flight %s must be at least %d minutes",
				curr.FlightNumber, next.FlightNumber, MinConnectionMinutes))
		}
	}

	// Persist ids in travel order so stored linkage order equals flight order.
	ordered := make([]string, len(selected))
	for i, f := range selected {
		ordered[i] = f.ID
	}

	return a.itineraries.CreateItinerary(ctx, ordered)
}
