package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/MonoCollector_Go/internal/database"
	"github.com/osse101/MonoCollector_Go/internal/domain"
)

var (
	testPool    *pgxpool.Pool
	testPoolErr error
	testPoolMux sync.Mutex
)

// setupTestPool starts one postgres container per package run and applies
// the embedded migrations to it. Integration tests skip when docker is missing.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testPoolMux.Lock()
	defer testPoolMux.Unlock()

	if testPool != nil {
		return testPool
	}
	if testPoolErr != nil {
		t.Skipf("Skipping integration test: %v", testPoolErr)
	}

	ctx := context.Background()
	var pgContainer *postgres.PostgresContainer
	func() {
		defer func() {
			if r := recover(); r != nil {
				testPoolErr = recoveredError{r}
			}
		}()
		pgContainer, testPoolErr = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if testPoolErr != nil || pgContainer == nil {
		t.Skipf("Skipping integration test due to docker issue: %v", testPoolErr)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      connStr,
		MaxConns:        5,
		MaxConnIdleTime: time.Minute,
		MaxConnLifetime: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, pool))

	testPool = pool
	return testPool
}

type recoveredError struct{ value interface{} }

func (e recoveredError) Error() string {
	return fmt.Sprintf("panic starting container: %v", e.value)
}

// createTestUser inserts a fresh guest user
func createTestUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:          uuid.NewString(),
		DisplayName: "tester",
		IsGuest:     true,
		GuestCode:   uuid.NewString()[:10],
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, NewUserRepository(pool).CreateUser(context.Background(), user))
	return user
}

// createTestItem inserts an item for the user
func createTestItem(t *testing.T, pool *pgxpool.Pool, userID, name, category string) *domain.Item {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := &domain.Item{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Tags:      []string{"tag"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewItemRepository(pool).CreateItem(context.Background(), item))
	return item
}
