package travel

import (
	"context"

	"techtravel/internal/models"
)

// MaxItineraries caps each leg of an availability result.
const MaxItineraries = 10

// Search answers availability queries against the stored itinerary corpus.
// Stateless; the corpus is fetched per call and filtered in memory.
type Search struct {
	itineraries ItineraryStore
}

func NewSearch(itineraries ItineraryStore) *Search {
	return &Search{itineraries: itineraries}
}

// Availability returns outbound itineraries matching the request and, when a
// return date is given, inbound itineraries for the swapped route. Each leg
// is truncated to MaxItineraries entries in corpus order.
func (s *Search) Availability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResult, error) {
	if req.Origin == "" || req.Destination == "" || req.DepartureDate == "" {
		return nil, validationErr(CodeMissingField,
			"origin, destination and departure_date are required")
	}

	corpus, err := s.itineraries.FindAllItineraries(ctx)
	if err != nil {
		return nil, err
	}

	outbound := filterItineraries(corpus, req.Origin, req.Destination, req.DepartureDate, req.Airlines, req.MaxStops)

	inbound := []models.Itinerary{}
	if req.ReturnDate != "" {
		inbound = filterItineraries(corpus, req.Destination, req.Origin, req.ReturnDate, req.Airlines, req.MaxStops)
	}

	return &models.AvailabilityResult{
		OutboundItineraries: truncate(outbound, MaxItineraries),
		InboundItineraries:  truncate(inbound, MaxItineraries),
	}, nil
}

func filterItineraries(corpus []models.Itinerary, origin, destination, date string, airlines []string, maxStops *int) []models.Itinerary {
	matches := []models.Itinerary{}
	for _, it := range corpus {
		if it.OriginIATA != origin || it.DestinationIATA != destination {
			continue
		}

		// Calendar-date comparison on the UTC instant of departure.
		if it.DepartureDatetime.UTC().Format("2006-01-02") != date {
			continue
		}

		if maxStops != nil && it.Stops > *maxStops {
			continue
		}

		if len(airlines) > 0 && !hasAirline(it, airlines) {
			continue
		}

		matches = append(matches, it)
	}
	return matches
}

// hasAirline reports whether any flight in the itinerary is operated by one
// of the wanted airlines. Flights without an airline code never match.
func hasAirline(it models.Itinerary, airlines []string) bool {
	for _, f := range it.Flights {
		if f.AirlineIATACode == "" {
			continue
		}
		for _, code := range airlines {
			if f.AirlineIATACode == code {
				return true
			}
		}
	}
	return false
}

func truncate(its []models.Itinerary, limit int) []models.Itinerary {
	if len(its) > limit {
		return its[:limit]
	}
	return its
}
