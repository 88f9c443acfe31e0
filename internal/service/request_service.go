package service

import (
	"context"
	"errors"
	"time"

	"github.com/batcheasycook/batchcook-api/internal/models"
	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrMissingFields  = errors.New("user, email and cart are required")
	ErrInvalidPayload = errors.New("invalid request payload")
	ErrInvalidStatus  = errors.New("status must be pending, confirmed or completed")
)

// RequestService handles batch cooking request business logic
type RequestService struct {
	repo     repository.RequestRepository
	validate *validator.Validate
}

// NewRequestService creates a new request service
func NewRequestService(repo repository.RequestRepository) *RequestService {
	return &RequestService{
		repo:     repo,
		validate: validator.New(),
	}
}

// Submit validates and stores an anonymous batch cooking request.
func (s *RequestService) Submit(ctx context.Context, input models.BatchCookingRequestInput) (*models.BatchCookingRequest, error) {
	return s.submit(ctx, input, nil)
}

// SubmitForUser stores a request stamped with the authenticated account.
func (s *RequestService) SubmitForUser(ctx context.Context, input models.BatchCookingRequestInput, user *models.User) (*models.BatchCookingRequest, error) {
	return s.submit(ctx, input, user)
}

func (s *RequestService) submit(ctx context.Context, input models.BatchCookingRequestInput, user *models.User) (*models.BatchCookingRequest, error) {
	if user != nil {
		// The account is the source of truth for contact fields.
		input.User = user.Name
		input.Email = user.Email
		if input.Phone == "" {
			input.Phone = user.Phone
		}
	}

	if input.User == "" || input.Email == "" || len(input.Cart.Items) == 0 {
		return nil, ErrMissingFields
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, ErrInvalidPayload
	}

	now := time.Now().UTC().Format(time.RFC3339)
	req := models.BatchCookingRequest{
		ID:        uuid.New().String(),
		User:      input.User,
		Email:     input.Email,
		Phone:     input.Phone,
		Date:      input.Date,
		Message:   input.Message,
		Cart:      input.Cart,
		Status:    models.StatusPending,
		CreatedAt: now,
	}
	if req.Date == "" {
		req.Date = now
	}
	if user != nil {
		req.UserID = user.ID
	}

	return s.repo.Add(ctx, req)
}

// List returns all requests
func (s *RequestService) List(ctx context.Context) ([]models.BatchCookingRequest, error) {
	return s.repo.GetAll(ctx)
}

// Get returns a request by ID
func (s *RequestService) Get(ctx context.Context, id string) (*models.BatchCookingRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// ListForUser returns the authenticated user's requests
func (s *RequestService) ListForUser(ctx context.Context, userID string) ([]models.BatchCookingRequest, error) {
	return s.repo.GetByUser(ctx, userID)
}

// UpdateStatus applies an admin triage patch. A nil field is left
// untouched; a present status must be a known lifecycle state.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status, notes *string) (*models.BatchCookingRequest, error) {
	if status != nil && !models.ValidStatus(*status) {
		return nil, ErrInvalidStatus
	}

	return s.repo.Update(ctx, id, repository.RequestUpdate{Status: status, Notes: notes})
}

// Stats aggregates request counts by status for the admin dashboard.
func (s *RequestService) Stats(ctx context.Context) (*models.RequestStats, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.RequestStats{Total: len(requests)}
	for _, req := range requests {
		switch req.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}
