package sequence

import (
	"testing"
	"time"

	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIDCountsRows(t *testing.T) {
	for _, n := range []int{0, 1, 100} {
		db := testutil.NewTestDB(t)
		customer := testutil.CreateUser(t, db, "carol", "pw", 0, 0, models.RoleCustomer)

		orders := make([]models.Order, 0, n)
		for i := 1; i <= n; i++ {
			orders = append(orders, models.Order{
				OrderNumber:  int64(i),
				CustomerID:   customer.ID,
				StoreID:      1,
				ProductName:  "Widget",
				UnitsOrdered: 1,
				OrderTime:    time.Now(),
			})
		}
		if n > 0 {
			require.NoError(t, db.CreateInBatches(orders, 50).Error)
		}

		next, err := NextID(db, "orders")
		require.NoError(t, err)
		assert.Equal(t, int64(n+1), next, "with %d rows", n)
	}
}

func TestNextIDIsDenseUnderSerialUse(t *testing.T) {
	db := testutil.NewTestDB(t)

	for want := int64(1); want <= 3; want++ {
		next, err := NextID(db, "productsupplyrequests")
		require.NoError(t, err)
		require.Equal(t, want, next)
		require.NoError(t, db.Create(&models.ProductSupplyRequest{
			RequestNumber:  next,
			ManagerID:      1,
			WarehouseID:    1,
			StoreID:        1,
			ProductName:    "Widget",
			UnitsRequested: 5,
		}).Error)
	}
}

func TestNextIDRejectsUnknownTable(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := NextID(db, "users; DROP TABLE users")
	assert.Error(t, err)
	_, err = NextID(db, "users")
	assert.Error(t, err)
}
