package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

// fileDatabase is the on-disk JSON shape, matching the original flat-file
// database: one document holding both collections.
type fileDatabase struct {
	BatchCookingRequests []models.BatchCookingRequest `json:"batchCookingRequests"`
	Users                []models.User                `json:"users"`
}

// FileStore persists requests and users in a single JSON file with whole-
// file read-modify-write under one mutex. Last write wins; there are no
// transactional guarantees. Requests() and Users() expose the two
// collections as RequestRepository and UserRepository.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore opens (or creates) the JSON database at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		if err := s.save(fileDatabase{
			BatchCookingRequests: []models.BatchCookingRequest{},
			Users:                []models.User{},
		}); err != nil {
			return nil, fmt.Errorf("failed to initialize database file: %w", err)
		}
	}

	// Fail fast on an unreadable or corrupt file.
	if _, err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Requests returns the request collection view.
func (s *FileStore) Requests() *FileRequestStore {
	return &FileRequestStore{s: s}
}

// Users returns the user collection view.
func (s *FileStore) Users() *FileUserStore {
	return &FileUserStore{s: s}
}

func (s *FileStore) load() (fileDatabase, error) {
	var db fileDatabase

	data, err := os.ReadFile(s.path)
	if err != nil {
		return db, fmt.Errorf("failed to read database file: %w", err)
	}

	if err := json.Unmarshal(data, &db); err != nil {
		return db, fmt.Errorf("failed to parse database file: %w", err)
	}

	if db.BatchCookingRequests == nil {
		db.BatchCookingRequests = []models.BatchCookingRequest{}
	}
	if db.Users == nil {
		db.Users = []models.User{}
	}

	return db, nil
}

func (s *FileStore) save(db fileDatabase) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode database: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write database file: %w", err)
	}
	return nil
}

// FileRequestStore implements RequestRepository over a FileStore.
type FileRequestStore struct {
	s *FileStore
}

// Add appends a request
func (r *FileRequestStore) Add(ctx context.Context, req models.BatchCookingRequest) (*models.BatchCookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	db, err := r.s.load()
	if err != nil {
		return nil, err
	}

	db.BatchCookingRequests = append(db.BatchCookingRequests, req)
	if err := r.s.save(db); err != nil {
		return nil, err
	}

	stored := req
	return &stored, nil
}

// GetAll returns all requests in submission order
func (r *FileRequestStore) GetAll(ctx context.Context) ([]models.BatchCookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	db, err := r.s.load()
	if err != nil {
		return nil, err
	}
	return db.BatchCookingRequests, nil
}

// GetByID returns a request by its ID
func (r *FileRequestStore) GetByID(ctx context.Context, id string) (*models.BatchCookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	db, err := r.s.load()
	if err != nil {
		return nil, err
	}

	for _, req := range db.BatchCookingRequests {
		if req.ID == id {
			found := req
			return &found, nil
		}
	}
	return nil, ErrRequestNotFound
}

// GetByUser returns all requests submitted by a user
func (r *FileRequestStore) GetByUser(ctx context.Context, userID string) ([]models.BatchCookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	db, err := r.s.load()
	if err != nil {
		return nil, err
	}

	out := make([]models.BatchCookingRequest, 0)
	for _, req := range db.BatchCookingRequests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

// Update applies an admin patch to a request
func (r *FileRequestStore) Update(ctx context.Context, id string, upd RequestUpdate) (*models.BatchCookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	db, err := r.s.load()
	if err != nil {
		return nil, err
	}

	for i := range db.BatchCookingRequests {
		if db.BatchCookingRequests[i].ID == id {
			applyRequestUpdate(&db.BatchCookingRequests[i], upd)
			if err := r.s.save(db); err != nil {
				return nil, err
			}
			updated := db.BatchCookingRequests[i]
			return &updated, nil
		}
	}
	return nil, ErrRequestNotFound
}

// FileUserStore implements UserRepository over a FileStore.
type FileUserStore struct {
	s *FileStore
}

// Create stores a new user, rejecting duplicate emails
func (u *FileUserStore) Create(ctx context.Context, user models.User) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	db, err := u.s.load()
	if err != nil {
		return nil, err
	}

	for _, existing := range db.Users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, ErrEmailTaken
		}
	}

	db.Users = append(db.Users, user)
	if err := u.s.save(db); err != nil {
		return nil, err
	}

	stored := user
	return &stored, nil
}

// GetByEmail returns a user by email, case-insensitive
func (u *FileUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	db, err := u.s.load()
	if err != nil {
		return nil, err
	}

	for _, existing := range db.Users {
		if strings.EqualFold(existing.Email, email) {
			found := existing
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByID returns a user by ID
func (u *FileUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	db, err := u.s.load()
	if err != nil {
		return nil, err
	}

	for _, existing := range db.Users {
		if existing.ID == id {
			found := existing
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}
