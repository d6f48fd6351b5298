package auth

import (
	"context"
	"time"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/flyhigh-app/flyhigh/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}

type AuthService struct {
	users  repository.UserRepository
	tokens *TokenManager
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

func NewAuthService(users repository.UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         domain.RoleUser,
		Travelers:    []domain.Traveler{},
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// SeedUsers creates the built-in admin and demo accounts on startup.
func SeedUsers(ctx context.Context, users repository.UserRepository) error {
	seed := []struct {
		id, email, password, name, phone string
		role                             domain.Role
	}{
		{"1", "admin@flyhigh.com", "admin123", "Admin User", "+1234567890", domain.RoleAdmin},
		{"2", "user@flyhigh.com", "user123", "John Doe", "+1987654321", domain.RoleUser},
	}

	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &domain.User{
			ID:           u.id,
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Phone:        u.phone,
			Role:         u.role,
			Travelers:    []domain.Traveler{},
			CreatedAt:    time.Now(),
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

var _ AuthUseCase = (*AuthService)(nil)
