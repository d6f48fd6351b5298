package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/flyhigh-app/flyhigh/internal/domain"
)

type ProfileUpdate struct {
	Name     string
	Phone    string
	Passport string
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	AddTraveler(ctx context.Context, userID string, traveler domain.Traveler) error
	RemoveTraveler(ctx context.Context, userID, travelerID string) error
}

type MemoryUserRepository struct {
	mu      sync.RWMutex
	order   []*domain.User
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func NewUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return domain.ErrEmailExists
	}
	stored := user.Clone()
	stored.Email = email
	r.byID[stored.ID] = stored
	r.byEmail[email] = stored
	r.order = append(r.order, stored)
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *MemoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.order))
	for _, u := range r.order {
		out = append(out, *u.Clone())
	}
	return out, nil
}

func (r *MemoryUserRepository) UpdateProfile(_ context.Context, id string, update ProfileUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Phone != "" {
		u.Phone = update.Phone
	}
	if update.Passport != "" {
		u.Passport = update.Passport
	}
	return u.Clone(), nil
}

func (r *MemoryUserRepository) AddTraveler(_ context.Context, userID string, traveler domain.Traveler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Travelers = append(u.Travelers, traveler)
	return nil
}

func (r *MemoryUserRepository) RemoveTraveler(_ context.Context, userID, travelerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := u.Travelers[:0]
	for _, t := range u.Travelers {
		if t.ID != travelerID {
			kept = append(kept, t)
		}
	}
	u.Travelers = kept
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ UserRepository = (*MemoryUserRepository)(nil)
