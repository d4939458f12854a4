package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/sequence"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SupplyRequest restocks one product line from a warehouse
type SupplyRequest struct {
	WarehouseID int64
	StoreID     int64
	ProductName string
	Units       int
}

// PlaceSupplyRequest adds the requested units to the product line and records
// the request, in one transaction.
func PlaceSupplyRequest(ctx context.Context, db *gorm.DB, managerID int64, req SupplyRequest) (*models.ProductSupplyRequest, error) {
	req.ProductName = strings.TrimSpace(req.ProductName)
	if req.Units <= 0 {
		return nil, errUnitsNotPositive
	}

	var request *models.ProductSupplyRequest
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var warehouses int64
		if err := tx.Model(&models.Warehouse{}).Where("warehouseid = ?", req.WarehouseID).Count(&warehouses).Error; err != nil {
			return fmt.Errorf("check warehouse %d: %w", req.WarehouseID, err)
		}
		if warehouses == 0 {
			return errWarehouseNotFound
		}

		res := tx.Model(&models.Product{}).
			Where("storeid = ? AND productname = ?", req.StoreID, req.ProductName).
			UpdateColumn("numberofunits", gorm.Expr("numberofunits + ?", req.Units))
		if res.Error != nil {
			return fmt.Errorf("restock %s: %w", req.ProductName, res.Error)
		}
		if res.RowsAffected == 0 {
			return errProductNotFound
		}

		number, err := sequence.NextID(tx, "productsupplyrequests")
		if err != nil {
			return err
		}
		request = &models.ProductSupplyRequest{
			RequestNumber:  number,
			ManagerID:      managerID,
			WarehouseID:    req.WarehouseID,
			StoreID:        req.StoreID,
			ProductName:    req.ProductName,
			UnitsRequested: req.Units,
		}
		if err := tx.Create(request).Error; err != nil {
			return fmt.Errorf("insert supply request %d: %w", number, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("supply request placed",
		zap.Int64("request_number", request.RequestNumber),
		zap.Int64("manager_id", managerID),
		zap.Int64("warehouse_id", req.WarehouseID),
		zap.Int64("store_id", req.StoreID),
		zap.Int("units", req.Units))
	return request, nil
}
