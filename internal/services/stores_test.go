package services

import (
	"context"
	"testing"

	"github.com/localnerve/marketdb/internal/config"
	"github.com/localnerve/marketdb/internal/database"
	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/testutil"
	"github.com/localnerve/marketdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyStores(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "carol", "c", 0, 0, models.RoleCustomer)
	manager := testutil.CreateUser(t, db, "mona", "m", 0, 0, models.RoleManager)
	testutil.CreateStore(t, db, 4, 0, 29, manager.ID)
	testutil.CreateStore(t, db, 1, 10, 10, manager.ID)
	testutil.CreateStore(t, db, 2, 0, 30, manager.ID)
	// inside the bounding box, outside the radius
	testutil.CreateStore(t, db, 3, 25, 25, manager.ID)
	testutil.CreateStore(t, db, 5, -100, 0, manager.ID)

	nearby, err := NearbyStores(ctx, db, user)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, int64(1), nearby[0].Store.ID)
	assert.InDelta(t, 14.142, nearby[0].Distance, 0.001)
	assert.Equal(t, int64(4), nearby[1].Store.ID)
	assert.Equal(t, 29.0, nearby[1].Distance)
}

func TestListProductsAndFindStore(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	manager := testutil.CreateUser(t, db, "mona", "m", 0, 0, models.RoleManager)
	testutil.CreateStore(t, db, 1, 0, 0, manager.ID)
	testutil.CreateProduct(t, db, 1, "Widget", 10, 2.5)
	testutil.CreateProduct(t, db, 1, "Apple", 3, 0.5)

	products, err := ListProducts(ctx, db, 1)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Apple", products[0].ProductName)

	products, err = ListProducts(ctx, db, 9)
	require.NoError(t, err)
	assert.Empty(t, products)

	store, err := FindStore(ctx, db, 1)
	require.NoError(t, err)
	assert.Equal(t, manager.ID, store.ManagerID)

	_, err = FindStore(ctx, db, 9)
	assert.True(t, types.IsKind(err, types.KindNotFound))
}

func TestHealthCheckSQLite(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := &config.Config{DBType: "sqlite-go", DBDatabase: ":memory:"}

	result := HealthCheck(cfg, db)
	assert.True(t, result.Healthy())
	assert.Equal(t, "ok", result.Database)
	assert.Empty(t, result.Server)

	require.NoError(t, database.Close(db))
	result = HealthCheck(cfg, db)
	assert.False(t, result.Healthy())
	assert.NotEmpty(t, result.ErrorMessage)
}

func TestHealthCheckUnreachableServer(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := &config.Config{DBType: "postgres", DBHost: "127.0.0.1", DBPort: "1"}

	result := HealthCheck(cfg, db)
	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.Server)
	assert.Equal(t, "ok", result.Database)
}
