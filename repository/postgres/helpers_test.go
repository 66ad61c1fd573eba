package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tasktrack/backend/domain"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   domain.ErrorCode
		passthough bool
	}{
		{
			name:     "unique name",
			err:      &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "tag_name_key"},
			wantCode: domain.ErrCodeConflict,
		},
		{
			name:     "unique importance val",
			err:      &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "importance_val_key"},
			wantCode: domain.ErrCodeConflict,
		},
		{
			name:     "duplicate assignment pair",
			err:      &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "tasktag_pkey"},
			wantCode: domain.ErrCodeConflict,
		},
		{
			name:     "missing referenced row",
			err:      &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "task_iid_fkey"},
			wantCode: domain.ErrCodeConflict,
		},
		{
			name:     "not null violation",
			err:      &pgconn.PgError{Code: codeNotNullViolation, ColumnName: "startdate"},
			wantCode: domain.ErrCodeInvalid,
		},
		{
			name:       "plain error untouched",
			err:        errors.New("connection reset"),
			passthough: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapWriteError(tt.err)
			if tt.passthough {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.True(t, domain.IsDomainError(got, tt.wantCode), "got %v", got)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestMapDeleteError(t *testing.T) {
	fk := &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "tasktag_tkid_fkey"}
	got := mapDeleteError(fk)
	assert.True(t, domain.IsDomainError(got, domain.ErrCodeConflict))

	plain := errors.New("timeout")
	assert.Equal(t, plain, mapDeleteError(plain))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 100, clampLimit(0))
	assert.Equal(t, 100, clampLimit(-5))
	assert.Equal(t, 100, clampLimit(1000))
	assert.Equal(t, 25, clampLimit(25))
}
