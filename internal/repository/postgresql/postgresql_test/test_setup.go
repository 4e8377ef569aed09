package postgresqltest

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

// schema mirrors what the deployment provisions. Tests create it themselves
// so a bare test database works.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'employee',
	employee_id   TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS employees (
	id                TEXT PRIMARY KEY,
	user_id           TEXT,
	full_name         TEXT NOT NULL,
	email             TEXT NOT NULL UNIQUE,
	position          TEXT,
	phone             TEXT,
	employment_status TEXT NOT NULL DEFAULT 'active',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendances (
	id                  TEXT PRIMARY KEY,
	employee_id         TEXT NOT NULL,
	date                DATE NOT NULL,
	clock_in            TIMESTAMPTZ,
	clock_out           TIMESTAMPTZ,
	clock_in_latitude   DOUBLE PRECISION,
	clock_in_longitude  DOUBLE PRECISION,
	clock_out_latitude  DOUBLE PRECISION,
	clock_out_longitude DOUBLE PRECISION,
	status              TEXT NOT NULL,
	work_minutes        INTEGER,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (employee_id, date)
);

CREATE TABLE IF NOT EXISTS shift_configs (
	id          TEXT PRIMARY KEY,
	employee_id TEXT,
	shift_start TEXT NOT NULL,
	shift_end   TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS company_settings (
	id               TEXT PRIMARY KEY,
	office_latitude  DOUBLE PRECISION,
	office_longitude DOUBLE PRECISION,
	radius_meters    DOUBLE PRECISION NOT NULL DEFAULT 0,
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS company_policies (
	key        TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	body       TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS leave_requests (
	id          TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL,
	leave_type  TEXT NOT NULL,
	start_date  DATE NOT NULL,
	end_date    DATE NOT NULL,
	reason      TEXT,
	status      TEXT NOT NULL DEFAULT 'pending',
	reviewed_by TEXT,
	reviewed_at TIMESTAMPTZ,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS documents (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	file_name   TEXT NOT NULL,
	url         TEXT NOT NULL,
	category    TEXT,
	uploaded_by TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS notices (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	body         TEXT NOT NULL,
	created_by   TEXT,
	published_at TIMESTAMPTZ NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS holidays (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	date DATE NOT NULL
);
`

// testDatabase connects to TEST_DATABASE_URL and provisions the schema.
// Tests are skipped when the variable is unset.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)

	_, err = db.Pool.Exec(context.Background(), schema)
	require.NoError(t, err, "failed to provision test schema")

	return db
}

func truncateTables(t *testing.T, db *database.DB, tables ...string) {
	t.Helper()
	ctx := context.Background()
	for _, table := range tables {
		_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}
