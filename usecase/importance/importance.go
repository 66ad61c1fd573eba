package importance

import (
	"context"

	"go.uber.org/zap"

	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/repository"
)

type UseCase struct {
	levels repository.ImportanceRepository
	logger *zap.Logger
}

func New(levels repository.ImportanceRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		levels: levels,
		logger: logger,
	}
}

// UpdateParams carries the optional fields of a partial importance update.
type UpdateParams struct {
	Name *string
	Val  *int32
}

func (uc *UseCase) ListLevels(ctx context.Context) ([]domain.Importance, error) {
	return uc.levels.List(ctx)
}

func (uc *UseCase) GetLevel(ctx context.Context, id int64) (*domain.Importance, error) {
	return uc.levels.GetByID(ctx, id)
}

func (uc *UseCase) GetLevelByName(ctx context.Context, name string) (*domain.Importance, error) {
	return uc.levels.GetByName(ctx, name)
}

func (uc *UseCase) GetLevelByVal(ctx context.Context, val int32) (*domain.Importance, error) {
	return uc.levels.GetByVal(ctx, val)
}

func (uc *UseCase) CreateLevel(ctx context.Context, name string, val int32) (*domain.Importance, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return uc.levels.Create(ctx, &domain.Importance{Name: name, Val: val})
}

func (uc *UseCase) UpdateLevel(ctx context.Context, id int64, params UpdateParams) (*domain.Importance, error) {
	level, err := uc.levels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if params.Name == nil && params.Val == nil {
		return level, nil
	}

	if params.Name != nil {
		if err := validateName(*params.Name); err != nil {
			return nil, err
		}
		level.Name = *params.Name
	}
	if params.Val != nil {
		level.Val = *params.Val
	}

	if err := uc.levels.Update(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

func (uc *UseCase) DeleteLevel(ctx context.Context, id int64) error {
	return uc.levels.Delete(ctx, id)
}

func validateName(name string) error {
	if name == "" {
		return domain.NewError(domain.ErrCodeInvalid, "importance name must not be empty")
	}
	if len(name) > domain.MaxNameLen {
		return domain.NewError(domain.ErrCodeInvalid, "importance name exceeds 30 characters")
	}
	return nil
}
