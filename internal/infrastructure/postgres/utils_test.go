package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

func TestLikePattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%filtro%", likePattern("filtro"))
	assert.Equal(t, `%50\%\_a\\b%`, likePattern(`50%_a\b`))
}

func TestParseLocation(t *testing.T) {
	ref, err := parseLocation("vehicle", "truck-7")
	require.NoError(t, err)
	assert.Equal(t, entity.LocationRef{Type: entity.LocationVehicle, ID: "truck-7"}, ref)

	_, err = parseLocation("nave", "x")
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

func TestIsLockNotAvailable(t *testing.T) {
	wrapped := fmt.Errorf("leer stock: %w", &pgconn.PgError{Code: "55P03"})
	assert.True(t, isLockNotAvailable(wrapped))
	assert.False(t, isLockNotAvailable(errors.New("55P03")))
}

func TestIsDeadlock(t *testing.T) {
	assert.True(t, isDeadlock(fmt.Errorf("bloquear stock: %w", &pgconn.PgError{Code: "40P01"})))
	assert.False(t, isDeadlock(&pgconn.PgError{Code: "55P03"}))
	assert.False(t, isLockNotAvailable(&pgconn.PgError{Code: "40P01"}))
}
