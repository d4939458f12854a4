// seed.go
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

package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/localnerve/marketdb/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedData is the shape of data/seed.json
type SeedData struct {
	Users []struct {
		Name      string  `json:"name"`
		Password  string  `json:"password"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Type      string  `json:"type"`
	} `json:"users"`
	Stores []struct {
		StoreID   int64   `json:"storeID"`
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Manager   string  `json:"manager"`
	} `json:"stores"`
	Warehouses []struct {
		WarehouseID int64   `json:"warehouseID"`
		Area        float64 `json:"area"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	} `json:"warehouses"`
	Products []struct {
		StoreID       int64   `json:"storeID"`
		ProductName   string  `json:"productName"`
		NumberOfUnits int     `json:"numberOfUnits"`
		PricePerUnit  float64 `json:"pricePerUnit"`
	} `json:"products"`
}

// SeedResult counts the rows inserted by Seed. Rows that already existed are skipped.
type SeedResult struct {
	Users      int64
	Stores     int64
	Warehouses int64
	Products   int64
}

// Seed loads seed JSON into the database. Running it twice leaves the data unchanged.
func Seed(db *gorm.DB, raw []byte) (SeedResult, error) {
	var data SeedData
	var result SeedResult
	if err := json.Unmarshal(raw, &data); err != nil {
		return result, fmt.Errorf("invalid seed data: %w", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		managers := make(map[string]int64, len(data.Users))
		for _, u := range data.Users {
			role, err := models.ParseRole(u.Type)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", u.Name, err)
			}
			var existing models.User
			if err := tx.Where("name = ?", u.Name).Limit(1).Find(&existing).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", u.Name, err)
			}
			if existing.ID != 0 {
				managers[u.Name] = existing.ID
				continue
			}
			user := models.User{
				Name:      u.Name,
				Password:  u.Password,
				Latitude:  u.Latitude,
				Longitude: u.Longitude,
				Role:      role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", u.Name, err)
			}
			result.Users++
			managers[u.Name] = user.ID
		}

		for _, s := range data.Stores {
			managerID, ok := managers[s.Manager]
			if !ok {
				return fmt.Errorf("seed store %d: unknown manager %q", s.StoreID, s.Manager)
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Store{
				ID:              s.StoreID,
				Name:            s.Name,
				Latitude:        s.Latitude,
				Longitude:       s.Longitude,
				ManagerID:       managerID,
				DateEstablished: time.Now().UTC(),
			})
			if res.Error != nil {
				return fmt.Errorf("seed store %d: %w", s.StoreID, res.Error)
			}
			result.Stores += res.RowsAffected
		}

		for _, w := range data.Warehouses {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Warehouse{
				ID:        w.WarehouseID,
				Area:      w.Area,
				Latitude:  w.Latitude,
				Longitude: w.Longitude,
			})
			if res.Error != nil {
				return fmt.Errorf("seed warehouse %d: %w", w.WarehouseID, res.Error)
			}
			result.Warehouses += res.RowsAffected
		}

		for _, p := range data.Products {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Product{
				StoreID:       p.StoreID,
				ProductName:   p.ProductName,
				NumberOfUnits: p.NumberOfUnits,
				PricePerUnit:  p.PricePerUnit,
			})
			if res.Error != nil {
				return fmt.Errorf("seed product %d/%s: %w", p.StoreID, p.ProductName, res.Error)
			}
			result.Products += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	zap.L().Info("seeded database",
		zap.Int64("users", result.Users),
		zap.Int64("stores", result.Stores),
		zap.Int64("warehouses", result.Warehouses),
		zap.Int64("products", result.Products))
	return result, nil
}
