package services

import (
	"context"
	"testing"

	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/testutil"
	"github.com/localnerve/marketdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceSupplyRequest(t *testing.T) {
	ctx := context.Background()
	db, manager := setupProducts(t)
	testutil.CreateWarehouse(t, db, 7)

	req, err := PlaceSupplyRequest(ctx, db, manager.ID, SupplyRequest{WarehouseID: 7, StoreID: 1, ProductName: "Widget", Units: 15})
	require.NoError(t, err)
	assert.Equal(t, int64(1), req.RequestNumber)
	assert.Equal(t, 25, testutil.ProductUnits(t, db, 1, "Widget"))

	req, err = PlaceSupplyRequest(ctx, db, manager.ID, SupplyRequest{WarehouseID: 7, StoreID: 1, ProductName: "Widget", Units: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), req.RequestNumber)
	assert.Equal(t, int64(2), testutil.CountRows(t, db, &models.ProductSupplyRequest{}, "managerid = ?", manager.ID))
}

func TestPlaceSupplyRequestRejections(t *testing.T) {
	ctx := context.Background()
	db, manager := setupProducts(t)
	testutil.CreateWarehouse(t, db, 7)

	_, err := PlaceSupplyRequest(ctx, db, manager.ID, SupplyRequest{WarehouseID: 8, StoreID: 1, ProductName: "Widget", Units: 1})
	assert.True(t, types.IsKind(err, types.KindNotFound))
	assert.Equal(t, "That warehouse doesn't exist.", err.Error())

	_, err = PlaceSupplyRequest(ctx, db, manager.ID, SupplyRequest{WarehouseID: 7, StoreID: 1, ProductName: "Gadget", Units: 1})
	assert.True(t, types.IsKind(err, types.KindNotFound))

	_, err = PlaceSupplyRequest(ctx, db, manager.ID, SupplyRequest{WarehouseID: 7, StoreID: 1, ProductName: "Widget", Units: -3})
	assert.True(t, types.IsKind(err, types.KindInvalidInput))

	assert.Equal(t, 10, testutil.ProductUnits(t, db, 1, "Widget"))
	assert.Equal(t, int64(0), testutil.CountRows(t, db, &models.ProductSupplyRequest{}, ""))
}
