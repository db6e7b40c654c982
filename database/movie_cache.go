package database

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vineetbagga004/Viral-Nation-Assessment/models"
	"github.com/vineetbagga004/Viral-Nation-Assessment/repositories"
)

// The Redis key for the cached movie list.
const allMoviesCacheKey = "cache:all_movies"

const movieCacheTTL = 30 * time.Second

// MovieCache is a read-through cache over a MovieStore for the full movie
// listing. Any mutation drops the cached list. Cache failures fall back to
// the underlying store; they never fail the request.
type MovieCache struct {
	rdb  *redis.Client
	next repositories.MovieStore
}

func NewMovieCache(rdb *redis.Client, next repositories.MovieStore) *MovieCache {
	return &MovieCache{rdb: rdb, next: next}
}

func (c *MovieCache) All(ctx context.Context) ([]models.Movie, error) {
	data, err := c.rdb.Get(ctx, allMoviesCacheKey).Bytes()
	if err == nil {
		var movies []models.Movie
		if err := json.Unmarshal(data, &movies); err == nil {
			return movies, nil
		}
	}

	movies, err := c.next.All(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(movies); err == nil {
		if err := c.rdb.Set(ctx, allMoviesCacheKey, data, movieCacheTTL).Err(); err != nil {
			log.Printf("Error setting movie cache in Redis: %v", err)
		}
	}
	return movies, nil
}

func (c *MovieCache) invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, allMoviesCacheKey).Err(); err != nil {
		log.Printf("Error invalidating movie cache in Redis: %v", err)
	}
}

func (c *MovieCache) Create(ctx context.Context, movie *models.Movie) error {
	if err := c.next.Create(ctx, movie); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *MovieCache) GetByID(ctx context.Context, id uint) (*models.Movie, error) {
	return c.next.GetByID(ctx, id)
}

func (c *MovieCache) Search(ctx context.Context, filter repositories.MovieFilter) ([]models.Movie, error) {
	return c.next.Search(ctx, filter)
}

func (c *MovieCache) Update(ctx context.Context, movie *models.Movie) error {
	if err := c.next.Update(ctx, movie); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *MovieCache) Delete(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := c.next.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return movie, nil
}
