// Package pricing derives booking prices from a flight's per-fare-class unit
// price and the requested ancillary services. All arithmetic is in integer
// cents, so totals are exact.
package pricing

import "github.com/flyhigh-app/flyhigh/internal/domain"

const (
	BaggageRateCents  int64 = 5000
	MealRateCents     int64 = 2500
	LoungeRateCents   int64 = 4000
	InsuranceFeeCents int64 = 3000
)

// Quote computes the price of a booking. The flight portion is the fare-class
// unit price times the passenger count; services accumulate per requested
// quantity, insurance is a flat fee.
func Quote(unitPriceCents int64, passengerCount int, services domain.ServiceSelection) domain.Pricing {
	flight := unitPriceCents * int64(passengerCount)

	var svc int64
	svc += int64(services.Baggage) * BaggageRateCents
	svc += int64(services.Meals) * MealRateCents
	svc += int64(services.Lounge) * LoungeRateCents
	if services.Insurance {
		svc += InsuranceFeeCents
	}

	return domain.Pricing{
		FlightPriceCents:   flight,
		ServicesPriceCents: svc,
		TotalPriceCents:    flight + svc,
	}
}
