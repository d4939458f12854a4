// Package testutil provides an in-memory database and fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/localnerve/marketdb/internal/config"
	"github.com/localnerve/marketdb/internal/database"
	"github.com/localnerve/marketdb/internal/models"
	"gorm.io/gorm"
)

// NewTestDB creates a migrated in-memory SQLite database. It holds a single
// connection so every statement sees the same memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(&config.Config{
		DBType:            "sqlite-go",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 1,
		DBLogLevel:        "silent",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// CreateUser inserts a user with the given role at (lat, lon)
func CreateUser(t *testing.T, db *gorm.DB, name, password string, lat, lon float64, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Name: name, Password: password, Latitude: lat, Longitude: lon, Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", name, err)
	}
	return user
}

// CreateStore inserts a store managed by managerID
func CreateStore(t *testing.T, db *gorm.DB, id int64, lat, lon float64, managerID int64) *models.Store {
	t.Helper()
	store := &models.Store{ID: id, Latitude: lat, Longitude: lon, ManagerID: managerID}
	if err := db.Create(store).Error; err != nil {
		t.Fatalf("Failed to create store %d: %v", id, err)
	}
	return store
}

// CreateProduct inserts a product line at a store
func CreateProduct(t *testing.T, db *gorm.DB, storeID int64, name string, units int, price float64) *models.Product {
	t.Helper()
	product := &models.Product{StoreID: storeID, ProductName: name, NumberOfUnits: units, PricePerUnit: price}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to create product %s: %v", name, err)
	}
	return product
}

// CreateWarehouse inserts a warehouse
func CreateWarehouse(t *testing.T, db *gorm.DB, id int64) *models.Warehouse {
	t.Helper()
	warehouse := &models.Warehouse{ID: id, Area: 1000, Latitude: 50, Longitude: 50}
	if err := db.Create(warehouse).Error; err != nil {
		t.Fatalf("Failed to create warehouse %d: %v", id, err)
	}
	return warehouse
}

// CountRows returns the number of rows of model matching an optional condition
func CountRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}

// ProductUnits reads the current stock of one product line
func ProductUnits(t *testing.T, db *gorm.DB, storeID int64, name string) int {
	t.Helper()
	var product models.Product
	if err := db.Where("storeid = ? AND productname = ?", storeID, name).First(&product).Error; err != nil {
		t.Fatalf("Failed to read product %s: %v", name, err)
	}
	return product.NumberOfUnits
}
