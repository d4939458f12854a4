// products.go
//
// An interactive client for the marketplace relational database
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of marketdb.
// marketdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// marketdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with marketdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/sequence"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// FindProduct loads the product line (storeID, productName)
func FindProduct(ctx context.Context, db *gorm.DB, storeID int64, productName string) (*models.Product, error) {
	var products []models.Product
	err := db.WithContext(ctx).
		Where("storeid = ? AND productname = ?", storeID, strings.TrimSpace(productName)).
		Limit(1).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("query product %s: %w", productName, err)
	}
	if len(products) == 0 {
		return nil, errProductNotFound
	}
	return &products[0], nil
}

// UpdateProduct applies the requested price and stock changes to one product
// line and records them. Any number of fields may change; exactly one
// ProductUpdate row is written when at least one did, none otherwise.
// The returned update is nil when nothing changed.
func UpdateProduct(ctx context.Context, db *gorm.DB, managerID, storeID int64, productName string, changes models.ProductChanges) (*models.ProductUpdate, error) {
	productName = strings.TrimSpace(productName)
	if p := changes.PricePerUnit; p != nil {
		if math.IsNaN(*p) || math.IsInf(*p, 0) {
			return nil, errPriceNotFinite
		}
		if *p < 0 {
			return nil, errNegativePrice
		}
	}
	if changes.NumberOfUnits != nil && *changes.NumberOfUnits < 0 {
		return nil, errNegativeStock
	}

	var update *models.ProductUpdate
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FindProduct(ctx, tx, storeID, productName); err != nil {
			return err
		}
		if changes.Empty() {
			return nil
		}

		fields := make(map[string]interface{}, 2)
		if changes.PricePerUnit != nil {
			fields["priceperunit"] = *changes.PricePerUnit
		}
		if changes.NumberOfUnits != nil {
			fields["numberofunits"] = *changes.NumberOfUnits
		}
		err := tx.Model(&models.Product{}).
			Where("storeid = ? AND productname = ?", storeID, productName).
			UpdateColumns(fields).Error
		if err != nil {
			return fmt.Errorf("update product %s: %w", productName, err)
		}

		number, err := sequence.NextID(tx, "productupdates")
		if err != nil {
			return err
		}
		update = &models.ProductUpdate{
			UpdateNumber: number,
			ManagerID:    managerID,
			StoreID:      storeID,
			ProductName:  productName,
			UpdatedOn:    time.Now().UTC(),
			Changes:      datatypes.NewJSONType(changes),
		}
		if err := tx.Create(update).Error; err != nil {
			return fmt.Errorf("insert product update %d: %w", number, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if update != nil {
		zap.L().Info("product updated",
			zap.Int64("update_number", update.UpdateNumber),
			zap.Int64("manager_id", managerID),
			zap.Int64("store_id", storeID),
			zap.String("product", productName))
	}
	return update, nil
}

// RecentProductUpdates returns the five latest product updates. Admins see
// all of them, anyone else only the updates they made.
func RecentProductUpdates(ctx context.Context, db *gorm.DB, principal *models.User) ([]models.ProductUpdate, error) {
	q := db.WithContext(ctx).
		Clauses(hints.CommentBefore("SELECT", "marketdb:recent_product_updates")).
		Order("updatenumber DESC").
		Limit(5)
	if principal.Role != models.RoleAdmin {
		q = q.Where("managerid = ?", principal.ID)
	}

	var updates []models.ProductUpdate
	if err := q.Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("query product updates: %w", err)
	}
	return updates, nil
}
