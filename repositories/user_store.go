package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/vineetbagga004/Viral-Nation-Assessment/models"
)

var (
	// ErrNotFound is returned when a referenced user or movie does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned by UserStore.Create when the email is already
	// registered. It originates from the store's unique constraint, never from
	// a prior existence check.
	ErrEmailTaken = errors.New("email already registered")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) (*models.User, error)
}

type InMemoryUserStore struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		nextID: 1,
		users:  make(map[uint]models.User),
	}
}

func (s *InMemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *InMemoryUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStore) GetByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, exists := s.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *InMemoryUserStore) UpdatePassword(_ context.Context, id uint, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, exists := s.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	user.PasswordHash = passwordHash
	s.users[id] = user
	return &user, nil
}
