package tag

import (
	"context"

	"go.uber.org/zap"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
)

type UseCase struct {
	tags   repository.TagRepository
	logger *zap.Logger
}

func New(tags repository.TagRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tags:   tags,
		logger: logger,
	}
}

func (uc *UseCase) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return uc.tags.List(ctx)
}

func (uc *UseCase) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	return uc.tags.GetByID(ctx, id)
}

func (uc *UseCase) GetTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	return uc.tags.GetByName(ctx, name)
}

func (uc *UseCase) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return uc.tags.Create(ctx, &domain.Tag{Name: name})
}

func (uc *UseCase) RenameTag(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return uc.tags.Rename(ctx, id, name)
}

func (uc *UseCase) DeleteTag(ctx context.Context, id int64) error {
	return uc.tags.Delete(ctx, id)
}

func validateName(name string) error {
	if name == "" {
		return domain.NewError(domain.ErrCodeInvalid, "tag name must not be empty")
	}
	if len(name) > domain.MaxNameLen {
		return domain.NewError(domain.ErrCodeInvalid, "tag name exceeds 30 characters")
	}
	return nil
}
