package users

import (
	"context"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/flyhigh-app/flyhigh/internal/repository"
	"github.com/google/uuid"
)

type UserUseCase interface {
	UpdateProfile(ctx context.Context, userID string, update repository.ProfileUpdate) (*domain.User, error)
	Travelers(ctx context.Context, userID string) ([]domain.Traveler, error)
	AddTraveler(ctx context.Context, userID string, input TravelerInput) (*domain.Traveler, error)
	RemoveTraveler(ctx context.Context, userID, travelerID string) error
	ListAll(ctx context.Context) ([]domain.User, error)
}

type TravelerInput struct {
	Name           string
	DateOfBirth    string
	PassportNumber string
	Nationality    string
}

type UserService struct {
	users repository.UserRepository
	newID func() string
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users, newID: uuid.NewString}
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, update repository.ProfileUpdate) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, userID, update)
}

func (s *UserService) Travelers(ctx context.Context, userID string) ([]domain.Traveler, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Travelers == nil {
		return []domain.Traveler{}, nil
	}
	return user.Travelers, nil
}

func (s *UserService) AddTraveler(ctx context.Context, userID string, input TravelerInput) (*domain.Traveler, error) {
	traveler := domain.Traveler{
		ID:             s.newID(),
		Name:           input.Name,
		DateOfBirth:    input.DateOfBirth,
		PassportNumber: input.PassportNumber,
		Nationality:    input.Nationality,
	}
	if err := s.users.AddTraveler(ctx, userID, traveler); err != nil {
		return nil, err
	}
	return &traveler, nil
}

func (s *UserService) RemoveTraveler(ctx context.Context, userID, travelerID string) error {
	return s.users.RemoveTraveler(ctx, userID, travelerID)
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

var _ UserUseCase = (*UserService)(nil)
