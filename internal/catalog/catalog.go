// Package catalog is the static flight and airport reference data. It is
// seeded at construction and read-only for the process lifetime: bookings
// check availability against it but never decrement inventory.
package catalog

import (
	"context"

	"github.com/flyhigh-app/flyhigh/internal/domain"
)

type Catalog interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Airports(ctx context.Context) ([]domain.Airport, error)
}

type StaticCatalog struct {
	flights  []domain.Flight
	byID     map[string]int
	airports []domain.Airport
}

func New() *StaticCatalog {
	return NewWithData(seedFlights(), seedAirports())
}

// NewWithData builds a catalog from explicit data, used by tests.
func NewWithData(flights []domain.Flight, airports []domain.Airport) *StaticCatalog {
	byID := make(map[string]int, len(flights))
	for i, f := range flights {
		byID[f.ID] = i
	}
	return &StaticCatalog{flights: flights, byID: byID, airports: airports}
}

func (c *StaticCatalog) List(_ context.Context) ([]domain.Flight, error) {
	out := make([]domain.Flight, len(c.flights))
	for i := range c.flights {
		out[i] = cloneFlight(&c.flights[i])
	}
	return out, nil
}

func (c *StaticCatalog) GetByID(_ context.Context, id string) (*domain.Flight, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	f := cloneFlight(&c.flights[i])
	return &f, nil
}

func (c *StaticCatalog) Airports(_ context.Context) ([]domain.Airport, error) {
	out := make([]domain.Airport, len(c.airports))
	copy(out, c.airports)
	return out, nil
}

// cloneFlight copies the seat and pricing maps so callers cannot mutate the
// catalog through a returned flight.
func cloneFlight(f *domain.Flight) domain.Flight {
	c := *f
	c.AvailableSeats = make(map[domain.FareClass]int, len(f.AvailableSeats))
	for k, v := range f.AvailableSeats {
		c.AvailableSeats[k] = v
	}
	c.PricingCents = make(map[domain.FareClass]int64, len(f.PricingCents))
	for k, v := range f.PricingCents {
		c.PricingCents[k] = v
	}
	return c
}

var _ Catalog = (*StaticCatalog)(nil)
