package catalog

import (
	"time"

	"github.com/flyhigh-app/flyhigh/internal/domain"
)

func seedFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:           "FL001",
			FlightNumber: "FH101",
			Airline:      "FlyHigh Airways",
			From:         "JFK", FromCity: "New York",
			To: "LAX", ToCity: "Los Angeles",
			Departure: date(2026, 10, 12, 8, 30),
			Arrival:   date(2026, 10, 12, 11, 45),
			Duration:  "6h 15m",
			AvailableSeats: map[domain.FareClass]int{
				domain.FareClassEconomy:  120,
				domain.FareClassBusiness: 24,
				domain.FareClassFirst:    8,
			},
			PricingCents: map[domain.FareClass]int64{
				domain.FareClassEconomy:  29900,
				domain.FareClassBusiness: 89900,
				domain.FareClassFirst:    159900,
			},
		},
		{
			ID:           "FL002",
			FlightNumber: "FH202",
			Airline:      "FlyHigh Airways",
			From:         "LAX", FromCity: "Los Angeles",
			To: "JFK", ToCity: "New York",
			Departure: date(2026, 10, 12, 14, 0),
			Arrival:   date(2026, 10, 12, 22, 20),
			Duration:  "5h 20m",
			AvailableSeats: map[domain.FareClass]int{
				domain.FareClassEconomy:  98,
				domain.FareClassBusiness: 18,
				domain.FareClassFirst:    6,
			},
			PricingCents: map[domain.FareClass]int64{
				domain.FareClassEconomy:  31500,
				domain.FareClassBusiness: 92000,
				domain.FareClassFirst:    164000,
			},
		},
		{
			ID:           "FL003",
			FlightNumber: "SW330",
			Airline:      "SkyWings",
			From:         "JFK", FromCity: "New York",
			To: "LHR", ToCity: "London",
			Departure: date(2026, 10, 14, 19, 15),
			Arrival:   date(2026, 10, 15, 7, 5),
			Duration:  "6h 50m",
			AvailableSeats: map[domain.FareClass]int{
				domain.FareClassEconomy:  160,
				domain.FareClassBusiness: 32,
				domain.FareClassFirst:    10,
			},
			PricingCents: map[domain.FareClass]int64{
				domain.FareClassEconomy:  48000,
				domain.FareClassBusiness: 145000,
				domain.FareClassFirst:    260000,
			},
		},
		{
			ID:           "FL004",
			FlightNumber: "SW412",
			Airline:      "SkyWings",
			From:         "LHR", FromCity: "London",
			To: "DXB", ToCity: "Dubai",
			Departure: date(2026, 10, 16, 9, 40),
			Arrival:   date(2026, 10, 16, 19, 30),
			Duration:  "6h 50m",
			AvailableSeats: map[domain.FareClass]int{
				domain.FareClassEconomy:  140,
				domain.FareClassBusiness: 28,
				domain.FareClassFirst:    12,
			},
			PricingCents: map[domain.FareClass]int64{
				domain.FareClassEconomy:  42000,
				domain.FareClassBusiness: 128000,
				domain.FareClassFirst:    230000,
			},
		},
		{
			ID:           "FL005",
			FlightNumber: "FH515",
			Airline:      "FlyHigh Airways",
			From:         "SFO", FromCity: "San Francisco",
			To: "NRT", ToCity: "Tokyo",
			Departure: date(2026, 10, 18, 11, 10),
			Arrival:   date(2026, 10, 19, 14, 25),
			Duration:  "11h 15m",
			AvailableSeats: map[domain.FareClass]int{
				domain.FareClassEconomy:  210,
				domain.FareClassBusiness: 40,
				domain.FareClassFirst:    14,
			},
			PricingCents: map[domain.FareClass]int64{
				domain.FareClassEconomy:  76000,
				domain.FareClassBusiness: 215000,
				domain.FareClassFirst:    390000,
			},
		},
		{
			ID:           "FL006",
			FlightNumber: "PA990",
			Airline:      "Pacific Air",
			From:         "LAX", FromCity: "Los Angeles",
			To: "SYD", ToCity: "Sydney",
			Departure: date(2026, 10, 20, 22, 50),
			Arrival:   date(2026, 10, 22, 8, 35),
			Duration:  "14h 45m",
			AvailableSeats: map[domain.FareClass]int{
				domain.FareClassEconomy:  2,
				domain.FareClassBusiness: 1,
				domain.FareClassFirst:    0,
			},
			PricingCents: map[domain.FareClass]int64{
				domain.FareClassEconomy:  98000,
				domain.FareClassBusiness: 290000,
				domain.FareClassFirst:    520000,
			},
		},
	}
}

func seedAirports() []domain.Airport {
	return []domain.Airport{
		{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"},
		{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA"},
		{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "USA"},
		{Code: "LHR", Name: "Heathrow", City: "London", Country: "United Kingdom"},
		{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE"},
		{Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "Japan"},
		{Code: "SYD", Name: "Kingsford Smith", City: "Sydney", Country: "Australia"},
	}
}

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}
