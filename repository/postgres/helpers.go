package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tasktrack/backend/domain"
)

// Postgres error codes surfaced by constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
)

// mapWriteError classifies insert/update failures. Unique violations on the
// assignment tables mean a duplicate pair, elsewhere a duplicate name or
// value; foreign key violations mean the referenced row is missing.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case "bookingtag_pkey", "tasktag_pkey":
			return domain.WrapError(domain.ErrCodeConflict, "tag already assigned", err)
		case "importance_val_key":
			return domain.WrapError(domain.ErrCodeConflict, "importance value already in use", err)
		default:
			return domain.WrapError(domain.ErrCodeConflict, "name already in use", err)
		}
	case codeForeignKeyViolation:
		return domain.WrapError(domain.ErrCodeConflict, "referenced row does not exist", err)
	case codeNotNullViolation:
		return domain.WrapError(domain.ErrCodeInvalid, "missing required field", err)
	}
	return err
}

// mapDeleteError classifies delete failures. A foreign key violation here
// means child rows still reference the row being removed; the schema
// declares no cascades, so the delete is rejected.
func mapDeleteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code == codeForeignKeyViolation {
		return domain.WrapError(domain.ErrCodeConflict, "row is still referenced", err)
	}
	return err
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}

// nonNilTags keeps an absent tag filter from being bound as a NULL array.
// pgx encodes a nil []string as SQL NULL, not as an empty array.
func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
