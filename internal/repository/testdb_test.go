package repository

import (
	"context"
	"testing"
	"time"

	"proshop/internal/database"
	"proshop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL container, applies the schema and
// returns a connected pool with a cleanup function.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("proshop_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.Migrate(ctx, pool, zerolog.Nop())
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedUser inserts a user with a unique username.
func seedUser(t *testing.T, pool *pgxpool.Pool) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New(),
		Username:     uuid.NewString() + "@example.com",
		Email:        "seed@example.com",
		Name:         "Seed User",
		PasswordHash: "$2a$12$notarealhashnotarealhashnotarealhash",
		CreatedAt:    time.Now(),
	}

	err := NewUserRepository(pool, zerolog.Nop()).Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

// seedProduct inserts a product with the given stock level.
func seedProduct(t *testing.T, pool *pgxpool.Pool, stock int) *model.Product {
	t.Helper()

	product := &model.Product{
		ID:           uuid.New(),
		Name:         "Airpods Wireless Headphones",
		Image:        "/images/airpods.jpg",
		Brand:        "Apple",
		Category:     "Electronics",
		Price:        89.99,
		CountInStock: stock,
		CreatedAt:    time.Now(),
	}

	err := NewProductRepository(pool, zerolog.Nop()).Create(context.Background(), product)
	require.NoError(t, err)
	return product
}
