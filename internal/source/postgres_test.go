package source

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/bpagen/internal/db"
	"github.com/gyeh/bpagen/internal/model"
)

const (
	testPort     = 15433
	testDB       = "bpatest"
	testUser     = "postgres"
	testPassword = "postgres"
)

// startPostgres boots an embedded Postgres for the duration of the test.
// Set BPAGEN_PG_TESTS=1 to run; the first start downloads binaries.
func startPostgres(t *testing.T) string {
	t.Helper()
	if os.Getenv("BPAGEN_PG_TESTS") == "" {
		t.Skip("set BPAGEN_PG_TESTS=1 to run Postgres tests")
	}

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			RuntimePath(t.TempDir()).
			StartTimeout(30 * time.Second),
	)
	require.NoError(t, pg.Start())
	t.Cleanup(func() {
		if err := pg.Stop(); err != nil {
			t.Logf("stop embedded postgres: %v", err)
		}
	})

	return fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)
}

func TestQuerySource(t *testing.T) {
	dsn := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	query := `SELECT * FROM (VALUES
		('1234567'::text, 225125::int, DATE '2024-01-15', NULL::text, 30.0::numeric),
		('7654321', 515105, DATE '2023-12-01', 'Z000', 4.5)
	) AS t(CNES, cbo, data_atendimento, cid, idade)`

	src, err := Open(ctx, Spec{Query: query, Kind: DataInput}, Settings{Pool: pool})
	require.NoError(t, err)
	rows := collect(t, src)
	require.Len(t, rows, 2)

	assert.Equal(t, "1234567", rows[0][model.ColCNES])
	assert.Equal(t, "225125", rows[0][model.ColCBO])
	assert.Equal(t, "2024-01-15", rows[0][model.ColDataAtendimento])
	_, ok := rows[0][model.ColCID]
	assert.False(t, ok)
	assert.Equal(t, "Z000", rows[1][model.ColCID])
	assert.Equal(t, "4.5", rows[1][model.ColIdade])
}

func TestQuerySource_BadQuery(t *testing.T) {
	dsn := startPostgres(t)
	ctx := t.Context()

	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	src, err := OpenQuery(ctx, pool, "SELECT * FROM no_such_table")
	if err == nil {
		// pgx may defer the error to the first Next.
		assert.False(t, src.Next())
		err = src.Err()
		src.Close()
	}
	assert.Error(t, err)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "abc", valueString("abc"))
	assert.Equal(t, "42", valueString(int32(42)))
	assert.Equal(t, "123456789012345", valueString(int64(123456789012345)))
	assert.Equal(t, "2.5", valueString(2.5))
	assert.Equal(t, "2024-01-15", valueString(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "true", valueString(true))
}
