package domain

import "time"

type FareClass string

const (
	FareClassEconomy  FareClass = "economy"
	FareClassBusiness FareClass = "business"
	FareClassFirst    FareClass = "first"
)

// Flight is a catalog entry. The catalog is read-only for the process
// lifetime; bookings never write seat counts back.
type Flight struct {
	ID             string              `json:"id"`
	FlightNumber   string              `json:"flightNumber"`
	Airline        string              `json:"airline"`
	From           string              `json:"from"`
	FromCity       string              `json:"fromCity"`
	To             string              `json:"to"`
	ToCity         string              `json:"toCity"`
	Departure      time.Time           `json:"departure"`
	Arrival        time.Time           `json:"arrival"`
	Duration       string              `json:"duration"`
	AvailableSeats map[FareClass]int   `json:"availableSeats"`
	PricingCents   map[FareClass]int64 `json:"pricing"`
}

// FlightSnapshot is the subset of flight fields copied into a booking at
// creation time. Later catalog changes never alter past bookings.
type FlightSnapshot struct {
	FlightNumber string    `json:"flightNumber"`
	Airline      string    `json:"airline"`
	From         string    `json:"from"`
	FromCity     string    `json:"fromCity"`
	To           string    `json:"to"`
	ToCity       string    `json:"toCity"`
	Departure    time.Time `json:"departure"`
	Arrival      time.Time `json:"arrival"`
	Duration     string    `json:"duration"`
}

func (f *Flight) Snapshot() FlightSnapshot {
	return FlightSnapshot{
		FlightNumber: f.FlightNumber,
		Airline:      f.Airline,
		From:         f.From,
		FromCity:     f.FromCity,
		To:           f.To,
		ToCity:       f.ToCity,
		Departure:    f.Departure,
		Arrival:      f.Arrival,
		Duration:     f.Duration,
	}
}

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
