package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-admin-auth/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupAdminPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db.DB, migrations.FS))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}
	return db, teardown
}

func TestAdminRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres container test in short mode")
	}

	db, teardown := setupAdminPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewAdminWriteRepository(db)
	readRepo := NewAdminReadRepository(db)

	require.NoError(t, writeRepo.Save(ctx, "admin", "hash-1", []string{"b", "a", "c"}))

	admin, err := readRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "hash-1", admin.PasswordHash)
	assert.Equal(t, []string{"b", "a", "c"}, admin.Permissions)

	t.Run("save replaces hash and permissions", func(t *testing.T) {
		require.NoError(t, writeRepo.Save(ctx, "admin", "hash-2", []string{"z"}))

		updated, err := readRepo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, admin.AdminID, updated.AdminID)
		assert.Equal(t, "hash-2", updated.PasswordHash)
		assert.Equal(t, []string{"z"}, updated.Permissions)
	})

	t.Run("unknown admin", func(t *testing.T) {
		missing, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("migrate is idempotent", func(t *testing.T) {
		assert.NoError(t, Migrate(ctx, db.DB, migrations.FS))
	})
}
