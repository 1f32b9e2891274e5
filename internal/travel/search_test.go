package travel

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techtravel/internal/models"
)

func mkItinerary(id, origin, destination, dep, arr string, flights ...models.Flight) models.Itinerary {
	depT, err := time.Parse(time.RFC3339, dep)
	if err != nil {
		panic(err)
	}
	arrT, err := time.Parse(time.RFC3339, arr)
	if err != nil {
		panic(err)
	}
	return models.Itinerary{
		ID:                   id,
		OriginIATA:           origin,
		DestinationIATA:      destination,
		DepartureDatetime:    depT,
		ArrivalDatetime:      arrT,
		TotalDurationMinutes: int(arrT.Sub(depT) / time.Minute),
		Stops:                len(flights) - 1,
		Flights:              flights,
	}
}

func TestAvailabilityRequiresMandatoryFields(t *testing.T) {
	s := NewSearch(&fakeItineraryStore{})

	reqs := []models.AvailabilityRequest{
		{Destination: "MIA", DepartureDate: "2024-07-01"},
		{Origin: "GRU", DepartureDate: "2024-07-01"},
		{Origin: "GRU", Destination: "MIA"},
	}
	for _, req := range reqs {
		_, err := s.Availability(context.Background(), req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, CodeMissingField, verr.Code)
	}
}

func TestAvailabilityOutboundOnly(t *testing.T) {
	it := mkItinerary("it-1", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z",
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
		mkFlight("f2", "TT2002", "JFK", "MIA", "2024-07-01T16:00:00Z", "2024-07-01T18:00:00Z", "TT"),
	)
	s := NewSearch(&fakeItineraryStore{corpus: []models.Itinerary{it}})

	res, err := s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "GRU", Destination: "MIA", DepartureDate: "2024-07-01",
	})
	require.NoError(t, err)

	require.Len(t, res.OutboundItineraries, 1)
	assert.Equal(t, "it-1", res.OutboundItineraries[0].ID)
	assert.Empty(t, res.InboundItineraries)
}

func TestAvailabilityReturnLegSwapsRoute(t *testing.T) {
	out := mkItinerary("out", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z",
		mkFlight("f1", "TT1001", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z", "TT"))
	back := mkItinerary("back", "MIA", "GRU", "2024-07-08T09:00:00Z", "2024-07-08T17:00:00Z",
		mkFlight("f2", "TT2002", "MIA", "GRU", "2024-07-08T09:00:00Z", "2024-07-08T17:00:00Z", "TT"))
	s := NewSearch(&fakeItineraryStore{corpus: []models.Itinerary{out, back}})

	res, err := s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "GRU", Destination: "MIA",
		DepartureDate: "2024-07-01", ReturnDate: "2024-07-08",
	})
	require.NoError(t, err)

	require.Len(t, res.OutboundItineraries, 1)
	assert.Equal(t, "out", res.OutboundItineraries[0].ID)
	require.Len(t, res.InboundItineraries, 1)
	assert.Equal(t, "back", res.InboundItineraries[0].ID)
}

func TestAvailabilityDateComparedInUTC(t *testing.T) {
	// Departs 23:30 on July 1st at UTC-3, which is July 2nd in UTC.
	it := mkItinerary("it-1", "GRU", "MIA", "2024-07-01T23:30:00-03:00", "2024-07-02T07:30:00-03:00",
		mkFlight("f1", "TT1001", "GRU", "MIA", "2024-07-01T23:30:00-03:00", "2024-07-02T07:30:00-03:00", "TT"))
	s := NewSearch(&fakeItineraryStore{corpus: []models.Itinerary{it}})

	res, err := s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "GRU", Destination: "MIA", DepartureDate: "2024-07-01",
	})
	require.NoError(t, err)
	assert.Empty(t, res.OutboundItineraries)

	res, err = s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "GRU", Destination: "MIA", DepartureDate: "2024-07-02",
	})
	require.NoError(t, err)
	assert.Len(t, res.OutboundItineraries, 1)
}

func TestAvailabilityMaxStops(t *testing.T) {
	direct := mkItinerary("direct", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z",
		mkFlight("f1", "TT1001", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z", "TT"))
	oneStop := mkItinerary("one-stop", "GRU", "MIA", "2024-07-01T08:00:00Z", "2024-07-01T20:00:00Z",
		mkFlight("f2", "TT2002", "GRU", "JFK", "2024-07-01T08:00:00Z", "2024-07-01T12:00:00Z", "TT"),
		mkFlight("f3", "TT3003", "JFK", "MIA", "2024-07-01T14:00:00Z", "2024-07-01T20:00:00Z", "TT"))
	s := NewSearch(&fakeItineraryStore{corpus: []models.Itinerary{direct, oneStop}})

	zero := 0
	res, err := s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "GRU", Destination: "MIA", DepartureDate: "2024-07-01", MaxStops: &zero,
	})
	require.NoError(t, err)

	require.Len(t, res.OutboundItineraries, 1)
	assert.Equal(t, "direct", res.OutboundItineraries[0].ID)
	for _, it := range res.OutboundItineraries {
		assert.LessOrEqual(t, it.Stops, 0)
	}
}

func TestAvailabilityAirlineFilter(t *testing.T) {
	latam := mkItinerary("latam", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z",
		mkFlight("f1", "LA8100", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z", "LA"))
	other := mkItinerary("other", "GRU", "MIA", "2024-07-01T09:00:00Z", "2024-07-01T17:00:00Z",
		mkFlight("f2", "TT1001", "GRU", "MIA", "2024-07-01T09:00:00Z", "2024-07-01T17:00:00Z", "TT"))
	// An itinerary whose only flight has no airline code must not match.
	unknown := mkItinerary("unknown", "GRU", "MIA", "2024-07-01T11:00:00Z", "2024-07-01T19:00:00Z",
		mkFlight("f3", "XX9999", "GRU", "MIA", "2024-07-01T11:00:00Z", "2024-07-01T19:00:00Z", ""))
	s := NewSearch(&fakeItineraryStore{corpus: []models.Itinerary{latam, other, unknown}})

	res, err := s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "GRU", Destination: "MIA", DepartureDate: "2024-07-01",
		Airlines: []string{"LA"},
	})
	require.NoError(t, err)

	require.Len(t, res.OutboundItineraries, 1)
	assert.Equal(t, "latam", res.OutboundItineraries[0].ID)
}

func TestAvailabilityCapsResults(t *testing.T) {
	corpus := make([]models.Itinerary, 0, 14)
	for i := 0; i < 14; i++ {
		id := fmt.Sprintf("it-%02d", i)
		corpus = append(corpus, mkItinerary(id, "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z",
			mkFlight(id+"-f", "TT1001", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z", "TT")))
	}
	s := NewSearch(&fakeItineraryStore{corpus: corpus})

	res, err := s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "GRU", Destination: "MIA", DepartureDate: "2024-07-01",
	})
	require.NoError(t, err)

	assert.Len(t, res.OutboundItineraries, MaxItineraries)
	// Corpus order is preserved, no ranking applied.
	assert.Equal(t, "it-00", res.OutboundItineraries[0].ID)
	assert.Equal(t, "it-09", res.OutboundItineraries[9].ID)
}

func TestAvailabilityExactCaseSensitiveMatch(t *testing.T) {
	it := mkItinerary("it-1", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z",
		mkFlight("f1", "TT1001", "GRU", "MIA", "2024-07-01T10:00:00Z", "2024-07-01T18:00:00Z", "TT"))
	s := NewSearch(&fakeItineraryStore{corpus: []models.Itinerary{it}})

	res, err := s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "gru", Destination: "MIA", DepartureDate: "2024-07-01",
	})
	require.NoError(t, err)
	assert.Empty(t, res.OutboundItineraries)
}

func TestAvailabilityPropagatesStoreError(t *testing.T) {
	boom := errors.New("database unavailable")
	s := NewSearch(&fakeItineraryStore{err: boom})

	_, err := s.Availability(context.Background(), models.AvailabilityRequest{
		Origin: "GRU", Destination: "MIA", DepartureDate: "2024-07-01",
	})
	assert.ErrorIs(t, err, boom)
}
