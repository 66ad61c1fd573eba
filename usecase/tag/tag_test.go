package tag

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/backend/domain"
)

type fakeTagRepo struct {
	tags   map[int64]*domain.Tag
	nextID int64
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[int64]*domain.Tag), nextID: 1}
}

func (r *fakeTagRepo) GetByID(_ context.Context, id int64) (*domain.Tag, error) {
	tag, ok := r.tags[id]
	if !ok {
		return nil, domain.ErrTagNotFound
	}
	return tag, nil
}

func (r *fakeTagRepo) GetByName(_ context.Context, name string) (*domain.Tag, error) {
	for _, tag := range r.tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, domain.ErrTagNotFound
}

func (r *fakeTagRepo) List(_ context.Context) ([]domain.Tag, error) {
	var out []domain.Tag
	for _, tag := range r.tags {
		out = append(out, *tag)
	}
	return out, nil
}

func (r *fakeTagRepo) Create(_ context.Context, tag *domain.Tag) (*domain.Tag, error) {
	for _, existing := range r.tags {
		if existing.Name == tag.Name {
			return nil, domain.ErrDuplicateName
		}
	}
	tag.ID = r.nextID
	r.nextID++
	r.tags[tag.ID] = tag
	return tag, nil
}

func (r *fakeTagRepo) Rename(_ context.Context, id int64, name string) (*domain.Tag, error) {
	tag, ok := r.tags[id]
	if !ok {
		return nil, domain.ErrTagNotFound
	}
	tag.Name = name
	return tag, nil
}

func (r *fakeTagRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tags[id]; !ok {
		return domain.ErrTagNotFound
	}
	delete(r.tags, id)
	return nil
}

func TestCreateTag(t *testing.T) {
	uc := New(newFakeTagRepo(), nil)

	created, err := uc.CreateTag(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "work", created.Name)
}

func TestCreateTagValidatesName(t *testing.T) {
	uc := New(newFakeTagRepo(), nil)

	_, err := uc.CreateTag(context.Background(), "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.CreateTag(context.Background(), strings.Repeat("x", domain.MaxNameLen+1))
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestCreateTagDuplicateName(t *testing.T) {
	uc := New(newFakeTagRepo(), nil)

	_, err := uc.CreateTag(context.Background(), "work")
	require.NoError(t, err)

	_, err = uc.CreateTag(context.Background(), "work")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestRenameTag(t *testing.T) {
	uc := New(newFakeTagRepo(), nil)
	created, err := uc.CreateTag(context.Background(), "work")
	require.NoError(t, err)

	renamed, err := uc.RenameTag(context.Background(), created.ID, "office")
	require.NoError(t, err)
	assert.Equal(t, "office", renamed.Name)

	_, err = uc.RenameTag(context.Background(), created.ID, "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestDeleteTagNotFound(t *testing.T) {
	uc := New(newFakeTagRepo(), nil)

	err := uc.DeleteTag(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}
