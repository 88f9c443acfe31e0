package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

var (
	ErrRequestNotFound = errors.New("request not found")
)

// RequestUpdate carries the admin-patchable fields. Nil means "leave
// untouched".
type RequestUpdate struct {
	Status *string
	Notes  *string
}

// RequestRepository defines the interface for batch cooking request
// persistence. Requests are append-and-update only; nothing deletes them.
type RequestRepository interface {
	Add(ctx context.Context, req models.BatchCookingRequest) (*models.BatchCookingRequest, error)
	GetAll(ctx context.Context) ([]models.BatchCookingRequest, error)
	GetByID(ctx context.Context, id string) (*models.BatchCookingRequest, error)
	GetByUser(ctx context.Context, userID string) ([]models.BatchCookingRequest, error)
	Update(ctx context.Context, id string, upd RequestUpdate) (*models.BatchCookingRequest, error)
}

// InMemoryRequestRepository implements RequestRepository with in-memory
// storage, insertion-ordered.
type InMemoryRequestRepository struct {
	mu       sync.Mutex
	requests []models.BatchCookingRequest
}

// NewInMemoryRequestRepository creates an empty in-memory request store
func NewInMemoryRequestRepository() *InMemoryRequestRepository {
	return &InMemoryRequestRepository{}
}

// Add appends a request
func (r *InMemoryRequestRepository) Add(ctx context.Context, req models.BatchCookingRequest) (*models.BatchCookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)
	stored := req
	return &stored, nil
}

// GetAll returns all requests in submission order
func (r *InMemoryRequestRepository) GetAll(ctx context.Context) ([]models.BatchCookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.BatchCookingRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

// GetByID returns a request by its ID
func (r *InMemoryRequestRepository) GetByID(ctx context.Context, id string) (*models.BatchCookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range r.requests {
		if req.ID == id {
			found := req
			return &found, nil
		}
	}
	return nil, ErrRequestNotFound
}

// GetByUser returns all requests submitted by a user
func (r *InMemoryRequestRepository) GetByUser(ctx context.Context, userID string) ([]models.BatchCookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.BatchCookingRequest, 0)
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

// Update applies an admin patch to a request
func (r *InMemoryRequestRepository) Update(ctx context.Context, id string, upd RequestUpdate) (*models.BatchCookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			applyRequestUpdate(&r.requests[i], upd)
			updated := r.requests[i]
			return &updated, nil
		}
	}
	return nil, ErrRequestNotFound
}

// applyRequestUpdate mutates a stored record with the patch fields and
// stamps UpdatedAt. Shared by the in-memory and file stores.
func applyRequestUpdate(req *models.BatchCookingRequest, upd RequestUpdate) {
	if upd.Status != nil {
		req.Status = *upd.Status
	}
	if upd.Notes != nil {
		req.Notes = *upd.Notes
	}
	req.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
