package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/vineetbagga004/Viral-Nation-Assessment/models"
)

// MovieFilter narrows a movie search. Search matches name, description or
// director (case-insensitive substring, OR); DirectorName is AND-ed on top.
// Limit <= 0 means no limit.
type MovieFilter struct {
	Search       string
	DirectorName string
	Offset       int
	Limit        int
}

type MovieStore interface {
	Create(ctx context.Context, movie *models.Movie) error
	GetByID(ctx context.Context, id uint) (*models.Movie, error)
	All(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, filter MovieFilter) ([]models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) (*models.Movie, error)
}

// InMemoryMovieStore resolves CreatedBy through the user store, mirroring the
// association preload the database store performs.
type InMemoryMovieStore struct {
	mu     sync.RWMutex
	nextID uint
	movies map[uint]models.Movie
	users  *InMemoryUserStore
}

func NewInMemoryMovieStore(users *InMemoryUserStore) *InMemoryMovieStore {
	return &InMemoryMovieStore{
		nextID: 1,
		movies: make(map[uint]models.Movie),
		users:  users,
	}
}

func (s *InMemoryMovieStore) withCreator(ctx context.Context, movie models.Movie) models.Movie {
	if user, err := s.users.GetByID(ctx, movie.CreatedByID); err == nil {
		movie.CreatedBy = *user
	}
	return movie
}

func (s *InMemoryMovieStore) Create(ctx context.Context, movie *models.Movie) error {
	s.mu.Lock()
	movie.ID = s.nextID
	s.nextID++
	s.movies[movie.ID] = *movie
	s.mu.Unlock()
	*movie = s.withCreator(ctx, *movie)
	return nil
}

func (s *InMemoryMovieStore) GetByID(ctx context.Context, id uint) (*models.Movie, error) {
	s.mu.RLock()
	movie, exists := s.movies[id]
	s.mu.RUnlock()
	if !exists {
		return nil, ErrNotFound
	}
	movie = s.withCreator(ctx, movie)
	return &movie, nil
}

func (s *InMemoryMovieStore) All(ctx context.Context) ([]models.Movie, error) {
	return s.Search(ctx, MovieFilter{})
}

func (s *InMemoryMovieStore) Search(ctx context.Context, filter MovieFilter) ([]models.Movie, error) {
	s.mu.RLock()
	matched := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if matchesFilter(m, filter) {
			matched = append(matched, m)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	result := make([]models.Movie, 0, len(matched))
	for _, m := range matched {
		result = append(result, s.withCreator(ctx, m))
	}
	return result, nil
}

func (s *InMemoryMovieStore) Update(ctx context.Context, movie *models.Movie) error {
	s.mu.Lock()
	if _, exists := s.movies[movie.ID]; !exists {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.movies[movie.ID] = *movie
	s.mu.Unlock()
	*movie = s.withCreator(ctx, *movie)
	return nil
}

func (s *InMemoryMovieStore) Delete(ctx context.Context, id uint) (*models.Movie, error) {
	s.mu.Lock()
	movie, exists := s.movies[id]
	if !exists {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	delete(s.movies, id)
	s.mu.Unlock()
	movie = s.withCreator(ctx, movie)
	return &movie, nil
}

func matchesFilter(m models.Movie, filter MovieFilter) bool {
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(m.MovieName), search) &&
			!strings.Contains(strings.ToLower(m.Description), search) &&
			!strings.Contains(strings.ToLower(m.DirectorName), search) {
			return false
		}
	}
	if filter.DirectorName != "" {
		if !strings.Contains(strings.ToLower(m.DirectorName), strings.ToLower(filter.DirectorName)) {
			return false
		}
	}
	return true
}
