package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("a user with this email already exists")
)

// UserRepository defines the interface for account persistence
type UserRepository interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// InMemoryUserRepository implements UserRepository with in-memory storage
type InMemoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

// NewInMemoryUserRepository creates an empty in-memory user store
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{}
}

// Create stores a new user, rejecting duplicate emails
func (r *InMemoryUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, ErrEmailTaken
		}
	}

	r.users = append(r.users, user)
	stored := user
	return &stored, nil
}

// GetByEmail returns a user by email, case-insensitive
func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByID returns a user by ID
func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}
