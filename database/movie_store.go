package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vineetbagga004/Viral-Nation-Assessment/models"
	"github.com/vineetbagga004/Viral-Nation-Assessment/repositories"
)

type MovieStore struct {
	db *gorm.DB
}

func NewMovieStore(db *gorm.DB) *MovieStore {
	return &MovieStore{db: db}
}

func (s *MovieStore) Create(ctx context.Context, movie *models.Movie) error {
	if err := s.db.WithContext(ctx).Create(movie).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).First(&movie.CreatedBy, movie.CreatedByID).Error
}

func (s *MovieStore) GetByID(ctx context.Context, id uint) (*models.Movie, error) {
	var movie models.Movie
	err := s.db.WithContext(ctx).Preload("CreatedBy").First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *MovieStore) All(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := s.db.WithContext(ctx).Preload("CreatedBy").Order("id").Find(&movies).Error
	return movies, err
}

func (s *MovieStore) Search(ctx context.Context, filter repositories.MovieFilter) ([]models.Movie, error) {
	tx := s.db.WithContext(ctx)

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where(
			s.db.Where("LOWER(movie_name) LIKE ?", like).
				Or("LOWER(description) LIKE ?", like).
				Or("LOWER(director_name) LIKE ?", like),
		)
	}
	if filter.DirectorName != "" {
		tx = tx.Where("LOWER(director_name) LIKE ?", "%"+strings.ToLower(filter.DirectorName)+"%")
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var movies []models.Movie
	err := tx.Preload("CreatedBy").Order("id").Find(&movies).Error
	return movies, err
}

func (s *MovieStore) Update(ctx context.Context, movie *models.Movie) error {
	return s.db.WithContext(ctx).Save(movie).Error
}

func (s *MovieStore) Delete(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Movie{}, id).Error; err != nil {
		return nil, err
	}
	return movie, nil
}
