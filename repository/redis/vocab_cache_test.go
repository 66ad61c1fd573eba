package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/backend/domain"
)

type countingTagRepo struct {
	listCalls int
}

func (r *countingTagRepo) GetByID(_ context.Context, _ int64) (*domain.Tag, error) {
	return nil, domain.ErrTagNotFound
}

func (r *countingTagRepo) GetByName(_ context.Context, _ string) (*domain.Tag, error) {
	return nil, domain.ErrTagNotFound
}

func (r *countingTagRepo) List(_ context.Context) ([]domain.Tag, error) {
	r.listCalls++
	return []domain.Tag{{ID: 1, Name: "work"}}, nil
}

func (r *countingTagRepo) Create(_ context.Context, tag *domain.Tag) (*domain.Tag, error) {
	return tag, nil
}

func (r *countingTagRepo) Rename(_ context.Context, id int64, name string) (*domain.Tag, error) {
	return &domain.Tag{ID: id, Name: name}, nil
}

func (r *countingTagRepo) Delete(_ context.Context, _ int64) error { return nil }

func TestCachedTagRepositoryFallsThroughWithoutClient(t *testing.T) {
	next := &countingTagRepo{}
	cached := NewCachedTagRepository(next, nil, 0)

	tags, err := cached.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 1)

	_, err = cached.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, next.listCalls, "without redis every listing goes to storage")
}

func TestCachedTagRepositoryDelegatesWrites(t *testing.T) {
	next := &countingTagRepo{}
	cached := NewCachedTagRepository(next, nil, 0)

	created, err := cached.Create(context.Background(), &domain.Tag{Name: "work"})
	require.NoError(t, err)
	assert.Equal(t, "work", created.Name)

	renamed, err := cached.Rename(context.Background(), 1, "office")
	require.NoError(t, err)
	assert.Equal(t, "office", renamed.Name)

	assert.NoError(t, cached.Delete(context.Background(), 1))
}
