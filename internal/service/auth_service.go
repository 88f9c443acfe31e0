package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/batcheasycook/batchcook-api/internal/auth"
	"github.com/batcheasycook/batchcook-api/internal/config"
	"github.com/batcheasycook/batchcook-api/internal/models"
	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingContact     = errors.New("email, password, name and phone are required")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = repository.ErrEmailTaken
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = repository.ErrUserNotFound
)

// AuthService handles registration, login and the single admin principal.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	admin  config.AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, admin config.AuthConfig) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		admin:  admin,
	}
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Session is an authenticated principal plus its bearer token.
type Session struct {
	User  models.PublicUser
	Token string
}

// Register creates an account with a bcrypt-hashed password and returns
// a fresh session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" || input.Phone == "" {
		return nil, ErrMissingContact
	}
	if len(input.Password) < 6 {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, models.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name, auth.RoleUser)
	if err != nil {
		return nil, err
	}

	return &Session{User: user.Public(), Token: token}, nil
}

// Login authenticates an account. The configured admin email logs in as
// the admin principal; everyone else is looked up in the user store.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if strings.EqualFold(email, s.admin.AdminEmail) {
		if password != s.admin.AdminPassword {
			return nil, ErrInvalidCredentials
		}
		return s.adminSession()
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name, auth.RoleUser)
	if err != nil {
		return nil, err
	}

	return &Session{User: user.Public(), Token: token}, nil
}

// AdminLogin authenticates the admin dashboard credential pair.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if username != s.admin.AdminUsername || password != s.admin.AdminPassword {
		return nil, ErrInvalidCredentials
	}

	return s.adminSession()
}

func (s *AuthService) adminSession() (*Session, error) {
	token, err := s.tokens.Issue("admin", s.admin.AdminEmail, s.admin.AdminUsername, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &Session{
		User: models.PublicUser{
			ID:      "admin",
			Email:   s.admin.AdminEmail,
			Name:    s.admin.AdminUsername,
			IsAdmin: true,
		},
		Token: token,
	}, nil
}

// Profile returns the account behind a verified user ID.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

// GetUser returns the full account record for request stamping.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
