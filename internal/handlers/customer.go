// customer.go
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

	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/services"
	"github.com/localnerve/marketdb/internal/session"
)

func (sh *Shell) viewStores(ctx context.Context, s *session.Session) error {
	user, err := s.Principal(ctx, sh.db)
	if err != nil {
		return err
	}
	stores, err := services.NearbyStores(ctx, sh.db, user)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(stores))
	for _, n := range stores {
		rows = append(rows, []string{
			formatInt(n.Store.ID),
			n.Store.Name,
			formatFloat(n.Store.Latitude),
			formatFloat(n.Store.Longitude),
			fmt.Sprintf("%.2f", n.Distance),
		})
	}
	if sh.out.Table([]string{"storeid", "name", "latitude", "longitude", "distance"}, rows) == 0 {
		sh.out.Line("No stores within 30 miles.")
	}
	return nil
}

func (sh *Shell) viewProducts(ctx context.Context, _ *session.Session) error {
	storeID, err := sh.in.Int64("\tEnter StoreID: ")
	if err != nil {
		return err
	}
	products, err := services.ListProducts(ctx, sh.db, storeID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.ProductName, fmt.Sprint(p.NumberOfUnits), formatFloat(p.PricePerUnit)})
	}
	if sh.out.Table([]string{"productname", "numberofunits", "priceperunit"}, rows) == 0 {
		sh.out.Line("No products found at this store.")
	}
	return nil
}

func (sh *Shell) placeOrder(ctx context.Context, s *session.Session) error {
	var req services.OrderRequest
	var err error
	if req.StoreID, err = sh.in.Int64("\tEnter StoreID: "); err != nil {
		return err
	}
	if req.ProductName, err = sh.in.Line("\tEnter Product Name: "); err != nil {
		return err
	}
	if req.Units, err = sh.in.Int("\tEnter Number of Units: "); err != nil {
		return err
	}

	user, err := s.Principal(ctx, sh.db)
	if err != nil {
		return err
	}
	if _, err := services.PlaceOrder(ctx, sh.db, user, req); err != nil {
		return err
	}
	sh.out.Success("Product ordered!")
	return nil
}

func (sh *Shell) viewRecentOrders(ctx context.Context, s *session.Session) error {
	user, err := s.Principal(ctx, sh.db)
	if err != nil {
		return err
	}
	orders, err := services.RecentOrders(ctx, sh.db, user)
	if err != nil {
		return err
	}

	var headers []string
	rows := make([][]string, 0, len(orders))
	if user.Role == models.RoleManager {
		headers = []string{"ordernumber", "customername", "storeid", "productname", "ordertime"}
		for _, o := range orders {
			name := ""
			if o.Customer != nil {
				name = o.Customer.Name
			}
			rows = append(rows, []string{formatInt(o.OrderNumber), name, formatInt(o.StoreID), o.ProductName, formatTime(o.OrderTime)})
		}
	} else {
		headers = []string{"ordernumber", "customerid", "storeid", "productname", "unitsordered", "ordertime"}
		for _, o := range orders {
			rows = append(rows, []string{
				formatInt(o.OrderNumber),
				formatInt(o.CustomerID),
				formatInt(o.StoreID),
				o.ProductName,
				fmt.Sprint(o.UnitsOrdered),
				formatTime(o.OrderTime),
			})
		}
	}
	if sh.out.Table(headers, rows) == 0 {
		sh.out.Line("No orders found.")
	}
	return nil
}
