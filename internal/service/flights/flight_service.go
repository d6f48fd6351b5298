package flights

import (
	"context"
	"strings"
	"time"

	"github.com/flyhigh-app/flyhigh/internal/catalog"
	"github.com/flyhigh-app/flyhigh/internal/domain"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, query SearchQuery) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Airports(ctx context.Context) ([]domain.Airport, error)
}

// Cache holds the flight list between catalog reads.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type SearchQuery struct {
	From string
	To   string
	Date string // YYYY-MM-DD, matches the departure day
}

type FlightService struct {
	catalog catalog.Catalog
	cache   Cache
}

func NewFlightService(cat catalog.Catalog, cache Cache) *FlightService {
	return &FlightService{catalog: cat, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) Search(ctx context.Context, query SearchQuery) ([]domain.Flight, error) {
	flights, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Flight, 0)
	for _, f := range flights {
		if query.From != "" && !strings.EqualFold(f.From, query.From) {
			continue
		}
		if query.To != "" && !strings.EqualFold(f.To, query.To) {
			continue
		}
		if query.Date != "" && f.Departure.Format(time.DateOnly) != query.Date {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.catalog.GetByID(ctx, id)
}

func (s *FlightService) Airports(ctx context.Context) ([]domain.Airport, error) {
	return s.catalog.Airports(ctx)
}

var _ FlightUseCase = (*FlightService)(nil)
