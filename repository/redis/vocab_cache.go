package redis

import (
	"context"
	"encoding/json"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
)

// The tag vocabulary and the importance levels are small, hot and rarely
// written, so full listings are cached as JSON blobs with a TTL. Any write
// drops the cached listing; redis failures fall through to Postgres.

const (
	tagListKey        = "vocab:tags"
	importanceListKey = "vocab:importance"
)

type cachedTagRepository struct {
	repository.TagRepository
	client *redislib.Client
	ttl    time.Duration
}

// NewCachedTagRepository wraps a TagRepository with a Redis listing cache.
func NewCachedTagRepository(next repository.TagRepository, client *redislib.Client, ttl time.Duration) repository.TagRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &cachedTagRepository{
		TagRepository: next,
		client:        client,
		ttl:           ttl,
	}
}

func (r *cachedTagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if hit(ctx, r.client, tagListKey, &tags) {
		return tags, nil
	}

	tags, err := r.TagRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	store(ctx, r.client, tagListKey, tags, r.ttl)
	return tags, nil
}

func (r *cachedTagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	created, err := r.TagRepository.Create(ctx, tag)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, r.client, tagListKey)
	return created, nil
}

func (r *cachedTagRepository) Rename(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	renamed, err := r.TagRepository.Rename(ctx, id, name)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, r.client, tagListKey)
	return renamed, nil
}

func (r *cachedTagRepository) Delete(ctx context.Context, id int64) error {
	if err := r.TagRepository.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, r.client, tagListKey)
	return nil
}

type cachedImportanceRepository struct {
	repository.ImportanceRepository
	client *redislib.Client
	ttl    time.Duration
}

// NewCachedImportanceRepository wraps an ImportanceRepository with a Redis listing cache.
func NewCachedImportanceRepository(next repository.ImportanceRepository, client *redislib.Client, ttl time.Duration) repository.ImportanceRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &cachedImportanceRepository{
		ImportanceRepository: next,
		client:               client,
		ttl:                  ttl,
	}
}

func (r *cachedImportanceRepository) List(ctx context.Context) ([]domain.Importance, error) {
	var levels []domain.Importance
	if hit(ctx, r.client, importanceListKey, &levels) {
		return levels, nil
	}

	levels, err := r.ImportanceRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	store(ctx, r.client, importanceListKey, levels, r.ttl)
	return levels, nil
}

func (r *cachedImportanceRepository) Create(ctx context.Context, importance *domain.Importance) (*domain.Importance, error) {
	created, err := r.ImportanceRepository.Create(ctx, importance)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, r.client, importanceListKey)
	return created, nil
}

func (r *cachedImportanceRepository) Update(ctx context.Context, importance *domain.Importance) error {
	if err := r.ImportanceRepository.Update(ctx, importance); err != nil {
		return err
	}
	invalidate(ctx, r.client, importanceListKey)
	return nil
}

func (r *cachedImportanceRepository) Delete(ctx context.Context, id int64) error {
	if err := r.ImportanceRepository.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, r.client, importanceListKey)
	return nil
}

func hit(ctx context.Context, client *redislib.Client, key string, dest interface{}) bool {
	if client == nil {
		return false
	}
	payload, err := client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(payload), dest) == nil
}

func store(ctx context.Context, client *redislib.Client, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = client.Set(ctx, key, payload, ttl).Err()
}

func invalidate(ctx context.Context, client *redislib.Client, key string) {
	if client == nil {
		return
	}
	_ = client.Del(ctx, key).Err()
}
