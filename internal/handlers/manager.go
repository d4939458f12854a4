// manager.go
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

package handlers

import (
	"context"
	"fmt"

	"github.com/localnerve/marketdb/internal/middleware"
	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/services"
	"github.com/localnerve/marketdb/internal/session"
	"go.uber.org/zap"
)

// updateProduct has passed the entry gate; the store gate comes next. All
// answers are collected before anything is written.
func (sh *Shell) updateProduct(ctx context.Context, s *session.Session) error {
	storeID, err := sh.in.Int64("\tEnter StoreID: ")
	if err != nil {
		return err
	}
	if err := middleware.RequireStore(ctx, sh.engine, s, storeID); err != nil {
		return err
	}

	name, err := sh.in.Line("\tEnter Product Name: ")
	if err != nil {
		return err
	}
	if _, err := services.FindProduct(ctx, sh.db, storeID, name); err != nil {
		return err
	}

	var changes models.ProductChanges
	yes, err := sh.in.YesNo("\tUpdate price? y/n: ")
	if err != nil {
		return err
	}
	if yes {
		price, err := sh.in.Float("\tAssign new price: ")
		if err != nil {
			return err
		}
		changes.PricePerUnit = &price
	}
	yes, err = sh.in.YesNo("\tUpdate stock? y/n: ")
	if err != nil {
		return err
	}
	if yes {
		units, err := sh.in.Int("\tAssign new numberofUnits: ")
		if err != nil {
			return err
		}
		changes.NumberOfUnits = &units
	}

	managerID, err := s.CurrentUserID(ctx, sh.db)
	if err != nil {
		return err
	}
	update, err := services.UpdateProduct(ctx, sh.db, managerID, storeID, name, changes)
	if err != nil {
		return err
	}
	if update == nil {
		sh.out.Line("No changes made.")
		return nil
	}
	middleware.Logger(ctx).Info("product update recorded", zap.Int64("update_number", update.UpdateNumber))
	sh.out.Success("Product updated!")
	return nil
}

func (sh *Shell) viewRecentUpdates(ctx context.Context, s *session.Session) error {
	user, err := s.Principal(ctx, sh.db)
	if err != nil {
		return err
	}
	updates, err := services.RecentProductUpdates(ctx, sh.db, user)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(updates))
	for _, u := range updates {
		rows = append(rows, []string{
			formatInt(u.UpdateNumber),
			formatInt(u.ManagerID),
			formatInt(u.StoreID),
			u.ProductName,
			formatTime(u.UpdatedOn),
			formatChanges(u.Changes.Data()),
		})
	}
	if sh.out.Table([]string{"updatenumber", "managerid", "storeid", "productname", "updatedon", "changes"}, rows) == 0 {
		sh.out.Line("No product updates found.")
	}
	return nil
}

func (sh *Shell) viewPopularProducts(ctx context.Context, s *session.Session) error {
	user, err := s.Principal(ctx, sh.db)
	if err != nil {
		return err
	}
	products, err := services.PopularProducts(ctx, sh.db, user)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.ProductName, formatInt(p.OrderCount)})
	}
	if sh.out.Table([]string{"productname", "ordercount"}, rows) == 0 {
		sh.out.Line("No popular products found.")
	}
	return nil
}

func (sh *Shell) viewPopularCustomers(ctx context.Context, s *session.Session) error {
	user, err := s.Principal(ctx, sh.db)
	if err != nil {
		return err
	}
	customers, err := services.PopularCustomers(ctx, sh.db, user)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{c.CustomerName, formatInt(c.OrderCount)})
	}
	if sh.out.Table([]string{"customername", "ordercount"}, rows) == 0 {
		sh.out.Line("No popular customers found.")
	}
	return nil
}

func (sh *Shell) placeSupplyRequest(ctx context.Context, s *session.Session) error {
	var req services.SupplyRequest
	var err error
	if req.StoreID, err = sh.in.Int64("\tEnter StoreID: "); err != nil {
		return err
	}
	if err := middleware.RequireStore(ctx, sh.engine, s, req.StoreID); err != nil {
		return err
	}
	if req.ProductName, err = sh.in.Line("\tEnter Product Name: "); err != nil {
		return err
	}
	if req.WarehouseID, err = sh.in.Int64("\tEnter warehouse ID: "); err != nil {
		return err
	}
	if req.Units, err = sh.in.Int("\tRequest how many units?: "); err != nil {
		return err
	}

	managerID, err := s.CurrentUserID(ctx, sh.db)
	if err != nil {
		return err
	}
	request, err := services.PlaceSupplyRequest(ctx, sh.db, managerID, req)
	if err != nil {
		return err
	}
	sh.out.Success(fmt.Sprintf("Supply request %d placed!", request.RequestNumber))
	return nil
}
