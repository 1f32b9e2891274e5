package travel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techtravel/internal/models"
)

type fakeFlightFinder struct {
	flights []models.Flight
	err     error
}

func (f *fakeFlightFinder) FindAllFlights(ctx context.Context) ([]models.Flight, error) {
	return f.flights, f.err
}

type fakeItineraryStore struct {
	corpus  []models.Itinerary
	flights map[string]models.Flight
	creates [][]string
	err     error
}

func (s *fakeItineraryStore) FindAllItineraries(ctx context.Context) ([]models.Itinerary, error) {
	return s.corpus, s.err
}

// CreateItinerary mimics the real store: it records the linkage and derives
// the summary fields from the flight sequence.
func (s *fakeItineraryStore) CreateItinerary(ctx context.Context, flightIDs []string) (*models.Itinerary, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.creates = append(s.creates, flightIDs)

	flights := make([]models.Flight, 0, len(flightIDs))
	for _, id := range flightIDs {
		flights = append(flights, s.flights[id])
	}
	first := flights[0]
	last := flights[len(flights)-1]
	return &models.Itinerary{
		ID:                   "it-1",
		OriginIATA:           first.OriginIATA,
		DestinationIATA:      last.DestinationIATA,
		DepartureDatetime:    first.DepartureDatetime,
		ArrivalDatetime:      last.ArrivalDatetime,
		TotalDurationMinutes: int(last.ArrivalDatetime.Sub(first.DepartureDatetime) / time.Minute),
		Stops:                len(flights) - 1,
		Flights:              flights,
	}, nil
}

func mkFlight(id, number, origin, destination, dep, arr, airline string) models.Flight {
	depT, err := time.Parse(time.RFC3339, dep)
	if err != nil {
		panic(err)
	}
	arrT, err := time.Parse(time.RFC3339, arr)
	if err != nil {
		panic(err)
	}
	return models.Flight{
		ID:                id,
		FlightNumber:      number,
		OriginIATA:        origin,
		DestinationIATA:   destination,
		DepartureDatetime: depT,
		ArrivalDatetime:   arrT,
		AirlineIATACode:   airline,
	}
}

func newAssemblerFixture(flights ...models.Flight) (*Assembler, *fakeItineraryStore) {
	byID := make(map[string]models.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}
	store := &fakeItineraryStore{flights: byID}
	return NewAssembler(&fakeFlightFinder{flights: flights}, store), store
}

func TestAssembleTwoFlightConnection(t *testing.T) {
	asm, store := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
		mkFlight("f2", "TT2002", "JFK", "MIA", "2024-07-01T16:00:00Z", "2024-07-01T18:00:00Z", "TT"),
	)

	it, err := asm.Assemble(context.Background(), []string{"f1", "f2"})
	require.NoError(t, err)

	assert.Equal(t, "GRU", it.OriginIATA)
	assert.Equal(t, "MIA", it.DestinationIATA)
	assert.Equal(t, 1, it.Stops)
	assert.Equal(t, 480, it.TotalDurationMinutes)
	assert.Len(t, it.Flights, 2)
	require.Len(t, store.creates, 1)
	assert.Equal(t, []string{"f1", "f2"}, store.creates[0])
}

func TestAssembleScrambledOrderMatchesChronological(t *testing.T) {
	flights := []models.Flight{
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
		mkFlight("f2", "TT2002", "JFK", "MIA", "2024-07-01T16:00:00Z", "2024-07-01T18:00:00Z", "TT"),
		mkFlight("f3", "TT3003", "MIA", "LAX", "2024-07-01T19:30:00Z", "2024-07-01T23:00:00Z", "TT"),
	}

	asmA, storeA := newAssemblerFixture(flights...)
	asmB, storeB := newAssemblerFixture(flights...)

	itA, err := asmA.Assemble(context.Background(), []string{"f1", "f2", "f3"})
	require.NoError(t, err)
	itB, err := asmB.Assemble(context.Background(), []string{"f3", "f1", "f2"})
	require.NoError(t, err)

	assert.Equal(t, itA, itB)
	assert.Equal(t, storeA.creates, storeB.creates)
	assert.Equal(t, 2, itA.Stops)
}

func TestAssembleDerivedFields(t *testing.T) {
	asm, _ := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "GIG", "2024-07-01T08:15:00Z", "2024-07-01T09:20:00Z", "TT"),
		mkFlight("f2", "TT2002", "GIG", "BSB", "2024-07-01T11:00:00Z", "2024-07-01T12:45:00Z", "TT"),
	)

	it, err := asm.Assemble(context.Background(), []string{"f2", "f1"})
	require.NoError(t, err)

	assert.Equal(t, len(it.Flights)-1, it.Stops)
	wantDuration := int(it.ArrivalDatetime.Sub(it.DepartureDatetime) / time.Minute)
	assert.Equal(t, wantDuration, it.TotalDurationMinutes)
	assert.Equal(t, 270, it.TotalDurationMinutes)
}

func TestAssembleRequiresTwoFlights(t *testing.T) {
	asm, store := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
	)

	for _, ids := range [][]string{nil, {}, {"f1"}} {
		_, err := asm.Assemble(context.Background(), ids)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, CodeTooFewFlights, verr.Code)
	}
	assert.Empty(t, store.creates)
}

func TestAssembleUnknownFlightID(t *testing.T) {
	asm, store := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
	)

	// Twice: failure must be side-effect free both times.
	for i := 0; i < 2; i++ {
		_, err := asm.Assemble(context.Background(), []string{"f1", "missing"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, CodeUnknownFlight, verr.Code)
		assert.Contains(t, verr.Message, "missing")
	}
	assert.Empty(t, store.creates)
}

func TestAssembleDuplicateFlightID(t *testing.T) {
	asm, store := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
	)

	_, err := asm.Assemble(context.Background(), []string{"f1", "f1"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeDuplicateFlight, verr.Code)
	assert.Contains(t, verr.Message, "f1")
	assert.Empty(t, store.creates)
}

func TestAssembleRouteDiscontinuity(t *testing.T) {
	asm, store := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
		mkFlight("f2", "TT2002", "LAX", "MIA", "2024-07-01T16:00:00Z", "2024-07-01T18:00:00Z", "TT"),
	)

	_, err := asm.Assemble(context.Background(), []string{"f1", "f2"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeRouteDiscontinuity, verr.Code)
	assert.Contains(t, verr.Message, "TT1001")
	assert.Contains(t, verr.Message, "TT2002")
	assert.Contains(t, verr.Message, "JFK")
	assert.Contains(t, verr.Message, "LAX")
	assert.Empty(t, store.creates)
}

func TestAssembleDepartureBeforeArrival(t *testing.T) {
	asm, store := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
		mkFlight("f2", "TT2002", "JFK", "MIA", "2024-07-01T14:00:00Z", "2024-07-01T18:00:00Z", "TT"),
	)

	_, err := asm.Assemble(context.Background(), []string{"f1", "f2"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeNonChronological, verr.Code)
	assert.Contains(t, verr.Message, "TT1001")
	assert.Contains(t, verr.Message, "TT2002")
	assert.Empty(t, store.creates)
}

func TestAssembleShortConnection(t *testing.T) {
	asm, store := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
		mkFlight("f2", "TT2002", "JFK", "MIA", "2024-07-01T14:20:00Z", "2024-07-01T18:00:00Z", "TT"),
	)

	_, err := asm.Assemble(context.Background(), []string{"f1", "f2"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeShortConnection, verr.Code)
	assert.Contains(t, verr.Message, "45")
	assert.Empty(t, store.creates)
}

func TestAssembleExactMinimumConnection(t *testing.T) {
	asm, _ := newAssemblerFixture(
		mkFlight("f1", "TT1001", "GRU", "JFK", "2024-07-01T10:00:00Z", "2024-07-01T14:00:00Z", "TT"),
		mkFlight("f2", "TT2002", "JFK", "MIA", "2024-07-01T14:45:00Z", "2024-07-01T18:00:00Z", "TT"),
	)

	it, err := asm.Assemble(context.Background(), []string{"f1", "f2"})
	require.NoError(t, err)
	assert.Equal(t, 1, it.Stops)
}

func TestAssemblePropagatesLookupError(t *testing.T) {
	boom := errors.New("database unavailable")
	store := &fakeItineraryStore{}
	asm := NewAssembler(&fakeFlightFinder{err: boom}, store)

	_, err := asm.Assemble(context.Background(), []string{"f1", "f2"})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.creates)
}
