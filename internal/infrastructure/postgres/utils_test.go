package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nexus-crm/internal/domain"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, classify("op", nil))
	assert.ErrorIs(t, classify("op", pgx.ErrNoRows), domain.ErrNotFound)

	dup := classify("op", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, dup, domain.ErrDuplicate)
	assert.NotErrorIs(t, dup, domain.ErrBackendUnreachable)

	// Un error del servidor no es de conectividad.
	check := classify("op", &pgconn.PgError{Code: "23514", Message: "check violation"})
	assert.NotErrorIs(t, check, domain.ErrBackendUnreachable)

	// Fallos de red o pool se reportan como backend inalcanzable.
	dial := classify("op", errors.New("dial tcp 10.0.0.1:5432: connect: connection refused"))
	assert.ErrorIs(t, dial, domain.ErrBackendUnreachable)
	assert.ErrorIs(t, classify("op", context.DeadlineExceeded), domain.ErrBackendUnreachable)

	assert.ErrorIs(t, classify("op", context.Canceled), context.Canceled)
	assert.NotErrorIs(t, classify("op", context.Canceled), domain.ErrBackendUnreachable)
}
