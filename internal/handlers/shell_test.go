// shell_test.go
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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/localnerve/marketdb/internal/config"
	"github.com/localnerve/marketdb/internal/database"
	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/testutil"
	"github.com/localnerve/marketdb/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB seeds two managers with one store each, a customer and a product
func setupTestDB(t *testing.T) *gorm.DB {
	db := testutil.NewTestDB(t)
	mona := testutil.CreateUser(t, db, "mona", "m", 0, 0, models.RoleManager)
	mark := testutil.CreateUser(t, db, "mark", "k", 0, 0, models.RoleManager)
	testutil.CreateUser(t, db, "dave", "d", 0, 0, models.RoleCustomer)
	testutil.CreateStore(t, db, 1, 0, 29, mona.ID)
	testutil.CreateStore(t, db, 2, 0, 31, mark.ID)
	testutil.CreateProduct(t, db, 1, "Widget", 10, 2.5)
	testutil.CreateWarehouse(t, db, 1)
	return db
}

// runShell feeds one answer per line and returns what went to stdout and stderr
func runShell(t *testing.T, db *gorm.DB, answers ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	script := strings.Join(answers, "\n") + "\n"
	sh := NewShell(db, strings.NewReader(script), utils.NewPrinter(&out, &errOut, config.OutputPlain))
	require.NoError(t, sh.Run(context.Background()))
	return out.String(), errOut.String()
}

func TestCreateUserLoginAndOrder(t *testing.T) {
	db := setupTestDB(t)

	out, errOut := runShell(t, db,
		"1", "carol", "pw", "0", "0",
		"2", "carol", "pw",
		"3", "1", "Widget", "5",
		"4",
		"20",
		"9",
	)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "User successfully created!")
	assert.Contains(t, out, "Product ordered!")
	assert.Contains(t, out, "ordernumber\tcustomerid\tstoreid\tproductname\tunitsordered\tordertime\t")
	assert.Contains(t, out, "20. Log out")
	assert.NotContains(t, out, "5. Update Product")

	assert.Equal(t, 5, testutil.ProductUnits(t, db, 1, "Widget"))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &models.Order{}, "unitsordered = ?", 5))
}

func TestOrderRejections(t *testing.T) {
	db := setupTestDB(t)

	out, _ := runShell(t, db,
		"2", "dave", "d",
		"3", "1", "Widget", "11",
		"3", "2", "Widget", "1",
		"3", "abc",
		"20", "9",
	)
	assert.Contains(t, out, "Product doesn't exist or you ordered too many.")
	assert.Contains(t, out, "That store is too far from you! (Must be within 30 miles from your location.)")
	assert.Contains(t, out, `Invalid value "abc" for Enter StoreID.`)
	assert.Equal(t, 10, testutil.ProductUnits(t, db, 1, "Widget"))
	assert.Equal(t, int64(0), testutil.CountRows(t, db, &models.Order{}, ""))
}

func TestCustomerIsDeniedManagerCommands(t *testing.T) {
	db := setupTestDB(t)

	out, _ := runShell(t, db,
		"2", "dave", "d",
		"5",
		"6",
		"7",
		"8",
		"9",
		"42",
		"abc", "20",
		"9",
	)
	assert.Contains(t, out, "User does not have permissions. Access denied.")
	assert.Contains(t, out, "You are not a verified manager for this store.")
	assert.Equal(t, 3, strings.Count(out, "User is not a manager. Access denied."))
	assert.Contains(t, out, "Unrecognized choice!")
	assert.Contains(t, out, "Your input is invalid!")
	// 9 in the user menu is the supply request, not exit
	assert.Equal(t, int64(0), testutil.CountRows(t, db, &models.ProductSupplyRequest{}, ""))
}

func TestManagerUpdatesProduct(t *testing.T) {
	db := setupTestDB(t)

	out, _ := runShell(t, db,
		"2", "mona", "m",
		"5", "1", "Widget", "y", "3.5", "n",
		"5", "1", "Widget", "n", "n",
		"5", "1", "Gadget",
		"6",
		"20", "9",
	)
	assert.Contains(t, out, "5. Update Product")
	assert.Contains(t, out, "Product updated!")
	assert.Contains(t, out, "No changes made.")
	assert.Contains(t, out, "This product is not available at this location.")
	assert.Contains(t, out, "price=3.5")

	assert.Equal(t, int64(1), testutil.CountRows(t, db, &models.ProductUpdate{}, ""))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &models.Product{}, "priceperunit = ?", 3.5))
}

func TestManagerOfAnotherStoreIsStopped(t *testing.T) {
	db := setupTestDB(t)

	out, _ := runShell(t, db,
		"2", "mark", "k",
		"5", "1",
		"9", "1",
		"20", "9",
	)
	assert.Equal(t, 2, strings.Count(out, "You are not a verified manager for this store."))
	assert.NotContains(t, out, "Enter Product Name")
	assert.Equal(t, int64(0), testutil.CountRows(t, db, &models.ProductUpdate{}, ""))
}

func TestManagerSupplyAndReports(t *testing.T) {
	db := setupTestDB(t)

	out, _ := runShell(t, db,
		"2", "mona", "m",
		"8",
		"9", "1", "Widget", "1", "15",
		"9", "1", "Widget", "99", "1",
		"20",
		"2", "dave", "d",
		"3", "1", "Widget", "2",
		"20",
		"2", "mona", "m",
		"7",
		"8",
		"4",
		"20", "9",
	)
	assert.Contains(t, out, "No popular customers found.")
	assert.Contains(t, out, "Supply request 1 placed!")
	assert.Contains(t, out, "That warehouse doesn't exist.")
	assert.Contains(t, out, "Widget\t1\t")
	assert.Contains(t, out, "dave\t1\t")
	assert.Contains(t, out, "ordernumber\tcustomername\tstoreid\tproductname\tordertime\t")
	assert.Equal(t, 23, testutil.ProductUnits(t, db, 1, "Widget"))
}

func TestFailedLoginKeepsUserLoggedOut(t *testing.T) {
	db := setupTestDB(t)

	out, _ := runShell(t, db, "2", "mona", "wrong", "9")
	assert.Contains(t, out, "Invalid name or password.")
	assert.NotContains(t, out, "20. Log out")
}

func TestEndOfInputExits(t *testing.T) {
	db := setupTestDB(t)

	var out bytes.Buffer
	sh := NewShell(db, strings.NewReader("2\nmona\nm\n1\n"), utils.NewPrinter(&out, &out, config.OutputPlain))
	assert.NoError(t, sh.Run(context.Background()))
}

func TestCanceledContextStops(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := NewShell(db, strings.NewReader("9\n"), utils.NewPrinter(&out, &out, config.OutputPlain))
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

func TestQueryFailureIsPrintedAndLoopContinues(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, database.Close(db))

	out, errOut := runShell(t, db, "1", "zoe", "pw", "1", "1", "9")
	assert.Contains(t, errOut, "database is closed")
	assert.Equal(t, 2, strings.Count(out, "2. Log in"))
}
