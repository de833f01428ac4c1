// Package flightdata wraps the external flight-schedule API used to
// auto-fill leg times and compute check-in openings.
package flightdata

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"travel-crm-service/pkg/httpclient"
	"travel-crm-service/pkg/logger"
)

// Schedule is the normalized result of a flight-number lookup
type Schedule struct {
	// FlightNumber is the carrier IATA code plus the numeric designator, e.g. "LA3340"
	FlightNumber string
	// Origin and Dest are airport IATA codes
	Origin string
	Dest   string
	// DepartureLocal and ArrivalLocal carry the airport-local times with offsets
	DepartureLocal time.Time
	ArrivalLocal   time.Time
	// International is true when origin and destination countries differ
	International bool
}

// Gateway looks up scheduled flights by designator and date
type Gateway interface {
	// GetSchedule retrieves the schedule of flightNumber on the given date.
	// Lookups are best effort: callers fall back to manual times on error.
	GetSchedule(ctx context.Context, flightNumber string, date time.Time) (*Schedule, error)
}

type gateway struct {
	client httpclient.HTTPClient
	apiKey string
	logger logger.LoggerInterface
}

// New creates a flight-schedule gateway over the given HTTP client
func New(client httpclient.HTTPClient, apiKey string, logger logger.LoggerInterface) Gateway {
	return &gateway{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}
}

// scheduleResponse mirrors the upstream flight-status payload
type scheduleResponse struct {
	Number    string `json:"number"`
	Departure struct {
		Airport struct {
			IATA        string `json:"iata"`
			CountryCode string `json:"countryCode"`
		} `json:"airport"`
		ScheduledTime struct {
			Local string `json:"local"`
		} `json:"scheduledTime"`
	} `json:"departure"`
	Arrival struct {
		Airport struct {
			IATA        string `json:"iata"`
			CountryCode string `json:"countryCode"`
		} `json:"airport"`
		ScheduledTime struct {
			Local string `json:"local"`
		} `json:"scheduledTime"`
	} `json:"arrival"`
}

// upstream local timestamps look like "2026-09-14 08:35-03:00"
const localTimeLayout = "2006-01-02 15:04-07:00"

func (g *gateway) GetSchedule(ctx context.Context, flightNumber string, date time.Time) (*Schedule, error) {
	g.logger.InfoContext(ctx, "Looking up flight schedule", "flight", flightNumber, "date", date.Format("2006-01-02"))

	path := fmt.Sprintf("/flights/number/%s/%s", url.PathEscape(flightNumber), date.Format("2006-01-02"))
	headers := map[string]string{"X-Api-Key": g.apiKey}

	var results []scheduleResponse
	if err := g.client.GetJSON(ctx, path, &results, headers); err != nil {
		g.logger.WarnContext(ctx, "Flight schedule lookup failed", "flight", flightNumber, "error", err)
		return nil, fmt.Errorf("flight schedule lookup failed: %w", err)
	}
	if len(results) == 0 {
		g.logger.WarnContext(ctx, "Flight not found in schedule", "flight", flightNumber)
		return nil, fmt.Errorf("flight %s not found on %s", flightNumber, date.Format("2006-01-02"))
	}

	raw := results[0]
	departure, err := time.Parse(localTimeLayout, raw.Departure.ScheduledTime.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid departure time %q: %w", raw.Departure.ScheduledTime.Local, err)
	}
	arrival, err := time.Parse(localTimeLayout, raw.Arrival.ScheduledTime.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid arrival time %q: %w", raw.Arrival.ScheduledTime.Local, err)
	}

	schedule := &Schedule{
		FlightNumber:   raw.Number,
		Origin:         raw.Departure.Airport.IATA,
		Dest:           raw.Arrival.Airport.IATA,
		DepartureLocal: departure,
		ArrivalLocal:   arrival,
		International:  raw.Departure.Airport.CountryCode != raw.Arrival.Airport.CountryCode,
	}
	g.logger.InfoContext(ctx, "Flight schedule retrieved", "flight", schedule.FlightNumber, "origin", schedule.Origin, "dest", schedule.Dest)
	return schedule, nil
}
