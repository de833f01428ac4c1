package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/gateway/flightdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

type flightFixture struct {
	flightRepo *fakeFlightRepo
	gateway    *fakeScheduleGateway
	uc         FlightUseCase
}

func newFlightFixture(gateway *fakeScheduleGateway) *flightFixture {
	f := &flightFixture{flightRepo: newFakeFlightRepo(), gateway: gateway}
	quoteRepo := newFakeQuoteRepo()
	quoteRepo.quotes["quote-1"] = &model.Quote{ID: "quote-1", Status: model.StatusCotar}
	windows := CheckInWindows{DomesticHours: 24, InternationalHours: 48}
	var schedules flightdata.Gateway
	if gateway != nil {
		schedules = gateway
	}
	f.uc = NewFlightUseCase(f.flightRepo, quoteRepo, schedules, windows, newTestLogger())
	return f
}

// validLeg builds a leg with every required field filled; tests unset or
// override what they exercise
func validLeg(direction string) *model.Flight {
	return &model.Flight{
		QuoteID:       "quote-1",
		Direction:     direction,
		Origin:        "GRU",
		Dest:          "LIS",
		Airline:       "LATAM",
		FlightNumber:  "LA8084",
		Class:         "Econômica",
		DepartureTime: "08:30",
		ArrivalTime:   "21:45",
	}
}

func TestAddFlight_MissingCoreFieldsRejected(t *testing.T) {
	f := newFlightFixture(nil)

	err := f.uc.AddFlight(context.Background(), &model.Flight{
		QuoteID:       "quote-1",
		Direction:     model.DirectionOutbound,
		DepartureDate: timePtr(time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)),
	})
	assert.ErrorIs(t, err, domain.ErrFlightFieldsRequired)
	assert.Empty(t, f.flightRepo.flights)
}

func TestAddFlight_MissingArrivalTimeRejected(t *testing.T) {
	f := newFlightFixture(nil)

	leg := validLeg(model.DirectionOutbound)
	leg.DepartureDate = timePtr(time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local))
	leg.ArrivalTime = ""

	err := f.uc.AddFlight(context.Background(), leg)
	assert.ErrorIs(t, err, domain.ErrFlightFieldsRequired)
	assert.Empty(t, f.flightRepo.flights)
}

func TestAddFlight_ReturnLegRequiresReturnDate(t *testing.T) {
	f := newFlightFixture(nil)

	err := f.uc.AddFlight(context.Background(), validLeg(model.DirectionReturn))
	assert.ErrorIs(t, err, domain.ErrReturnDateRequired)
	assert.Empty(t, f.flightRepo.flights)
}

func TestAddFlight_OutboundLegRequiresDepartureDate(t *testing.T) {
	f := newFlightFixture(nil)

	err := f.uc.AddFlight(context.Background(), validLeg(model.DirectionOutbound))
	assert.ErrorIs(t, err, domain.ErrDepartureDateRequired)
}

func TestAddFlight_InvalidDirection(t *testing.T) {
	f := newFlightFixture(nil)

	err := f.uc.AddFlight(context.Background(), &model.Flight{QuoteID: "quote-1", Direction: "VOLTA2"})
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestAddFlight_ClampsNegativeBaggage(t *testing.T) {
	f := newFlightFixture(nil)

	flight := validLeg(model.DirectionOutbound)
	flight.DepartureDate = timePtr(time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local))
	flight.CheckedBags = -1
	flight.CarryOnBags = -3
	require.NoError(t, f.uc.AddFlight(context.Background(), flight))
	assert.Zero(t, flight.CheckedBags)
	assert.Zero(t, flight.CarryOnBags)
}

func TestAddFlight_CheckInFromManualTime(t *testing.T) {
	f := newFlightFixture(nil)

	flight := validLeg(model.DirectionOutbound)
	flight.DepartureDate = timePtr(time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, f.uc.AddFlight(context.Background(), flight))

	require.NotNil(t, flight.CheckInOpensAt)
	expected := time.Date(2026, 9, 9, 8, 30, 0, 0, time.Local)
	assert.True(t, flight.CheckInOpensAt.Equal(expected), "got %s", flight.CheckInOpensAt)
}

func TestAddFlight_CheckInFromSchedule(t *testing.T) {
	departure := time.Date(2026, 9, 10, 8, 30, 0, 0, time.FixedZone("-03", -3*3600))
	gateway := &fakeScheduleGateway{schedule: &flightdata.Schedule{
		FlightNumber:   "LA8084",
		DepartureLocal: departure,
		International:  true,
	}}
	f := newFlightFixture(gateway)

	flight := validLeg(model.DirectionOutbound)
	flight.DepartureDate = timePtr(time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, f.uc.AddFlight(context.Background(), flight))

	assert.Equal(t, 1, gateway.calls)
	// The schedule flags the leg international, widening the window to 48h
	assert.True(t, flight.International)
	require.NotNil(t, flight.CheckInOpensAt)
	assert.True(t, flight.CheckInOpensAt.Equal(departure.Add(-48*time.Hour)), "got %s", flight.CheckInOpensAt)
}

func TestAddFlight_ScheduleFailureFallsBackToManualTime(t *testing.T) {
	gateway := &fakeScheduleGateway{err: errors.New("upstream down")}
	f := newFlightFixture(gateway)

	flight := validLeg(model.DirectionOutbound)
	flight.DepartureDate = timePtr(time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, f.uc.AddFlight(context.Background(), flight))

	require.NotNil(t, flight.CheckInOpensAt)
	expected := time.Date(2026, 9, 9, 8, 30, 0, 0, time.Local)
	assert.True(t, flight.CheckInOpensAt.Equal(expected), "got %s", flight.CheckInOpensAt)
}

func TestAddFlight_UnknownQuoteRejected(t *testing.T) {
	f := newFlightFixture(nil)

	err := f.uc.AddFlight(context.Background(), &model.Flight{
		QuoteID:       "ghost",
		Direction:     model.DirectionOutbound,
		DepartureDate: timePtr(time.Now()),
	})
	assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
}

func TestUpdateFlight_KeepsQuoteBinding(t *testing.T) {
	f := newFlightFixture(nil)
	f.flightRepo.flights["flight-1"] = &model.Flight{ID: "flight-1", QuoteID: "quote-1", Direction: model.DirectionOutbound}

	update := validLeg(model.DirectionOutbound)
	update.ID = "flight-1"
	update.QuoteID = "other-quote"
	update.DepartureDate = timePtr(time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, f.uc.UpdateFlight(context.Background(), update))
	assert.Equal(t, "quote-1", f.flightRepo.flights["flight-1"].QuoteID)
}
