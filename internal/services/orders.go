// orders.go
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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/localnerve/marketdb/internal/geo"
	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/sequence"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// OrderState is a step of order placement
type OrderState int

const (
	CollectingInput OrderState = iota
	ValidatingDistance
	ValidatingAvailability
	Committing
	Done
	Rejected
)

func (s OrderState) String() string {
	switch s {
	case CollectingInput:
		return "collecting_input"
	case ValidatingDistance:
		return "validating_distance"
	case ValidatingAvailability:
		return "validating_availability"
	case Committing:
		return "committing"
	case Done:
		return "done"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("OrderState(%d)", int(s))
}

// OrderRequest is the collected input of one order
type OrderRequest struct {
	StoreID     int64
	ProductName string
	Units       int
}

// OrderResult reports where placement stopped. Order is set only when State is Done.
type OrderResult struct {
	State OrderState
	Order *models.Order
}

// PlaceOrder runs order placement for the customer. A rejection comes back as
// a *types.Rejection with State Rejected and nothing written.
//
// Availability check, number allocation, insert and decrement share one
// transaction. The decrement repeats the stock predicate and rolls the order
// back when another client drained the stock in between.
func PlaceOrder(ctx context.Context, db *gorm.DB, customer *models.User, req OrderRequest) (OrderResult, error) {
	result := OrderResult{State: CollectingInput}
	req.ProductName = strings.TrimSpace(req.ProductName)
	if req.Units <= 0 {
		result.State = Rejected
		return result, errUnitsNotPositive
	}

	result.State = ValidatingDistance
	store, err := FindStore(ctx, db, req.StoreID)
	if err != nil {
		if errors.Is(err, errStoreNotFound) {
			result.State = Rejected
		}
		return result, err
	}
	distance := geo.Distance(customer.Latitude, customer.Longitude, store.Latitude, store.Longitude)
	if geo.TooFar(distance) {
		result.State = Rejected
		return result, errTooFar
	}

	var order *models.Order
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result.State = ValidatingAvailability
		var available int64
		err := tx.Model(&models.Product{}).
			Where("storeid = ? AND productname = ? AND numberofunits >= ?", req.StoreID, req.ProductName, req.Units).
			Count(&available).Error
		if err != nil {
			return fmt.Errorf("check availability: %w", err)
		}
		if available == 0 {
			return errUnavailable
		}

		result.State = Committing
		number, err := sequence.NextID(tx, "orders")
		if err != nil {
			return err
		}
		order = &models.Order{
			OrderNumber:  number,
			CustomerID:   customer.ID,
			StoreID:      req.StoreID,
			ProductName:  req.ProductName,
			UnitsOrdered: req.Units,
			OrderTime:    time.Now().UTC(),
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("insert order %d: %w", number, err)
		}

		res := tx.Model(&models.Product{}).
			Where("storeid = ? AND productname = ? AND numberofunits >= ?", req.StoreID, req.ProductName, req.Units).
			UpdateColumn("numberofunits", gorm.Expr("numberofunits - ?", req.Units))
		if res.Error != nil {
			return fmt.Errorf("decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errUnavailable
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errUnavailable) {
			result.State = Rejected
		}
		return result, err
	}

	zap.L().Info("order placed",
		zap.Int64("order_number", order.OrderNumber),
		zap.Int64("customer_id", customer.ID),
		zap.Int64("store_id", req.StoreID),
		zap.Int("units", req.Units))
	result.State = Done
	result.Order = order
	return result, nil
}

// RecentOrders returns the five most recent orders visible to the principal.
// Managers see orders at their stores, newest order time first. Admins see
// every order and customers their own, both by order number descending.
// The customer is preloaded on every order.
func RecentOrders(ctx context.Context, db *gorm.DB, principal *models.User) ([]models.Order, error) {
	q := db.WithContext(ctx).
		Clauses(hints.CommentBefore("SELECT", "marketdb:recent_orders")).
		Preload("Customer").
		Limit(5)

	switch principal.Role {
	case models.RoleManager:
		q = q.Where("storeid IN (?)", ownedStores(db.WithContext(ctx), principal.ID)).
			Order("ordertime DESC").Order("ordernumber DESC")
	case models.RoleAdmin:
		q = q.Order("ordernumber DESC")
	default:
		q = q.Where("customerid = ?", principal.ID).Order("ordernumber DESC")
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("query recent orders: %w", err)
	}
	return orders, nil
}
