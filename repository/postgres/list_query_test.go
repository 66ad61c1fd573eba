package postgres

import (
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonNilTags(t *testing.T) {
	got := nonNilTags(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	tags := []string{"work", "office"}
	assert.Equal(t, tags, nonNilTags(tags))
}

// A nil slice reaches the wire as a NULL array, and cardinality(NULL) is
// NULL, so an unfiltered listing would match nothing. Two things keep that
// from happening: the tag parameter is always bound non-nil, and the guard
// itself tolerates NULL.
func TestNilTagSliceEncodesAsNullArray(t *testing.T) {
	m := pgtype.NewMap()

	buf, err := m.Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, []string(nil), nil)
	require.NoError(t, err)
	assert.Nil(t, buf, "a nil slice encodes as SQL NULL")

	buf, err = m.Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, nonNilTags(nil), nil)
	require.NoError(t, err)
	assert.NotNil(t, buf, "the bound filter must never be NULL")
}

func TestListQueryTagGuardsAreNullSafe(t *testing.T) {
	for _, query := range []string{bookingListQuery, taskListQuery} {
		assert.True(t, strings.Contains(query, "::text[] IS NULL OR cardinality("),
			"tag guard must short-circuit on a NULL array")
	}
}

func TestListQueriesFilterNothingByDefault(t *testing.T) {
	// Every guard must compare against the zero value of its parameter so an
	// empty filter selects all rows.
	for _, guard := range []string{
		"($1 = 0 OR id = $1)",
		"($6 = '' OR des ILIKE",
	} {
		assert.Contains(t, bookingListQuery, guard)
	}
	for _, guard := range []string{
		"($1::boolean IS NULL OR done = $1)",
		"($2 = 0 OR iid = $2)",
	} {
		assert.Contains(t, taskListQuery, guard)
	}
}
