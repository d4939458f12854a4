// shell.go
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

// Package handlers runs the interactive menus and one handler per menu action.
package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/localnerve/marketdb/internal/authz"
	"github.com/localnerve/marketdb/internal/middleware"
	"github.com/localnerve/marketdb/internal/prompt"
	"github.com/localnerve/marketdb/internal/session"
	"github.com/localnerve/marketdb/internal/types"
	"github.com/localnerve/marketdb/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Messages printed by the entry gates
const (
	msgNoPermissions   = "User does not have permissions. Access denied."
	msgNotManager      = "User is not a manager. Access denied."
	msgNotStoreManager = "You are not a verified manager for this store."
)

const logoutChoice = 20

type menuItem struct {
	choice   int
	label    string
	name     string
	elevated bool
	cmd      middleware.Command
}

// Shell is one interactive session against the database. It holds at most
// one logged-in principal at a time.
type Shell struct {
	db      *gorm.DB
	engine  *authz.Engine
	in      *prompt.Reader
	out     *utils.Printer
	session *session.Session
	items   []menuItem
}

// NewShell creates a Shell reading answers from in and printing through out
func NewShell(db *gorm.DB, in io.Reader, out *utils.Printer) *Shell {
	sh := &Shell{
		db:     db,
		engine: authz.New(db),
		in:     prompt.New(in, out.Out),
		out:    out,
	}
	sh.items = []menuItem{
		{1, "View Stores within 30 miles", "view_stores", false, sh.viewStores},
		{2, "View Product List", "view_products", false, sh.viewProducts},
		{3, "Place a Order", "place_order", false, sh.placeOrder},
		{4, "View 5 recent orders", "view_recent_orders", false, sh.viewRecentOrders},
		{5, "Update Product", "update_product", true,
			middleware.RequireElevated(sh.engine, msgNoPermissions, sh.updateProduct)},
		{6, "View 5 recent Product Updates Info", "view_recent_updates", true,
			middleware.RequireElevated(sh.engine, msgNotStoreManager, sh.viewRecentUpdates)},
		{7, "View 5 Popular Items", "view_popular_products", true,
			middleware.RequireElevated(sh.engine, msgNotManager, sh.viewPopularProducts)},
		{8, "View 5 Popular Customers", "view_popular_customers", true,
			middleware.RequireElevated(sh.engine, msgNotManager, sh.viewPopularCustomers)},
		{9, "Place Product Supply Request to Warehouse", "place_supply_request", true,
			middleware.RequireElevated(sh.engine, msgNotManager, sh.placeSupplyRequest)},
	}
	return sh
}

// Run shows the main menu until the user exits or the input ends
func (sh *Shell) Run(ctx context.Context) error {
	err := sh.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (sh *Shell) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sh.out.Title("MAIN MENU")
		sh.out.Line("1. Create user")
		sh.out.Line("2. Log in")
		sh.out.Line("9. < EXIT")

		choice, err := sh.in.Choice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = sh.dispatch(ctx, "create_user", sh.createUser)
		case 2:
			err = sh.dispatch(ctx, "login", sh.login)
			if err == nil && sh.session != nil {
				err = sh.userMenu(ctx)
			}
		case 9:
			return nil
		default:
			sh.out.Line("Unrecognized choice!")
		}
		if err != nil {
			return err
		}
	}
}

// userMenu runs until logout. Elevated items are listed only for managers
// and admins; the handlers enforce access on their own.
func (sh *Shell) userMenu(ctx context.Context) error {
	for sh.session != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		elevated := sh.engine.HasElevatedAccess(ctx, sh.session).Allowed()

		sh.out.Title("MAIN MENU")
		for _, item := range sh.items {
			if !item.elevated || elevated {
				sh.out.Line("%d. %s", item.choice, item.label)
			}
		}
		sh.out.Line(".........................")
		sh.out.Line("%d. Log out", logoutChoice)

		choice, err := sh.in.Choice()
		if err != nil {
			return err
		}
		if choice == logoutChoice {
			zap.L().Debug("logged out", zap.String("user", sh.session.Name))
			sh.session = nil
			return nil
		}

		item, ok := sh.lookup(choice)
		if !ok {
			sh.out.Line("Unrecognized choice!")
			continue
		}
		if err := sh.dispatch(ctx, item.name, item.cmd); err != nil {
			return err
		}
	}
	return nil
}

func (sh *Shell) lookup(choice int) (menuItem, bool) {
	for _, item := range sh.items {
		if item.choice == choice {
			return item, true
		}
	}
	return menuItem{}, false
}

// dispatch runs one command and absorbs its failure. Only the end of input
// and cancellation reach the caller.
func (sh *Shell) dispatch(ctx context.Context, name string, cmd middleware.Command) error {
	err := middleware.WithCommandID(name, cmd)(ctx, sh.session)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return err
	}
	if r, ok := types.AsRejection(err); ok {
		sh.out.Warning(r.Message)
		return nil
	}
	if errors.Is(err, session.ErrNoPrincipal) {
		sh.out.Error("Your account could not be verified. Please log in again.")
		sh.session = nil
		return nil
	}

	zap.L().Error("command failed", zap.String("command", name), zap.Error(err))
	sh.out.Error(err.Error())
	return nil
}
