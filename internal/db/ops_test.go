package db

import (
	"context"
	"testing"

	"pos-versions-dashboard/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var DBPool *DB

// Setup the testcontainer DB before running any dbOps tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		panic(err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}
	migrationsPath := "./migrations"

	DBPool, err = Init(ctx, Config{
		ConnString:     connStr,
		MigrationsPath: migrationsPath,
	})
	if err != nil {
		panic(err)
	}

	m.Run()

	DBPool.Close()
	pgContainer.Terminate(ctx)
}

func TestOps(t *testing.T) {
	ctx := context.Background()
	records := []dataset.Record{
		{Row: 2, Version: "4.19", DeviceID: "A", PinpadModel: "P1", Region: "SP", Extra: []string{"L2"}},
		{Row: 1, Version: "4.19", DeviceID: "A", PinpadModel: "P1", Region: "SP", Extra: []string{"L1", "Campinas"}},
		{Row: 3, Version: "4.18", DeviceID: "B", PinpadModel: "P2", Region: "RJ"},
	}

	require.NoError(t, DBPool.ReplaceRecords(ctx, records))

	ds, err := DBPool.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())
	assert.Equal(t, 1, ds.Records[0].Row)
	assert.Equal(t, []string{"L1", "Campinas"}, ds.Records[0].Extra)
	assert.Equal(t, []string{}, ds.Records[2].Extra)
	assert.Equal(t, []string{"4.19", "4.18"}, ds.Versions())

	// a second import replaces, never appends
	require.NoError(t, DBPool.ReplaceRecords(ctx, records[:1]))
	ds, err = DBPool.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dataset.Record{records[0]}, ds.Records)
}

func TestOps_DuplicateRowRollsBack(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, DBPool.ReplaceRecords(ctx, []dataset.Record{{Row: 1, Version: "4.19", DeviceID: "A"}}))

	err := DBPool.ReplaceRecords(ctx, []dataset.Record{
		{Row: 7, Version: "4.20", DeviceID: "B"},
		{Row: 7, Version: "4.20", DeviceID: "C"},
	})
	assert.ErrorIs(t, err, ErrInsertFailed)

	ds, err := DBPool.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ds.DeviceIDs())
}
