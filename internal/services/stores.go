package services

import (
	"context"
	"fmt"

	"github.com/localnerve/marketdb/internal/geo"
	"github.com/localnerve/marketdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// NearbyStore is a store with its distance from the viewing user
type NearbyStore struct {
	Store    models.Store
	Distance float64
}

// NearbyStores lists the stores within range of the user, by store id.
// The bounding box narrows the query and the exact distance is applied here.
func NearbyStores(ctx context.Context, db *gorm.DB, user *models.User) ([]NearbyStore, error) {
	minLat, maxLat, minLon, maxLon := geo.Bounds(user.Latitude, user.Longitude)

	var stores []models.Store
	err := db.WithContext(ctx).
		Clauses(hints.CommentBefore("SELECT", "marketdb:nearby_stores")).
		Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?", minLat, maxLat, minLon, maxLon).
		Order("storeid").
		Find(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}

	nearby := make([]NearbyStore, 0, len(stores))
	for _, s := range stores {
		d := geo.Distance(user.Latitude, user.Longitude, s.Latitude, s.Longitude)
		if geo.WithinRange(d) {
			nearby = append(nearby, NearbyStore{Store: s, Distance: d})
		}
	}
	return nearby, nil
}

// ListProducts returns the product lines of one store, by name
func ListProducts(ctx context.Context, db *gorm.DB, storeID int64) ([]models.Product, error) {
	var products []models.Product
	err := db.WithContext(ctx).
		Where("storeid = ?", storeID).
		Order("productname").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("query products of store %d: %w", storeID, err)
	}
	return products, nil
}

// FindStore loads one store
func FindStore(ctx context.Context, db *gorm.DB, storeID int64) (*models.Store, error) {
	var stores []models.Store
	if err := db.WithContext(ctx).Where("storeid = ?", storeID).Limit(1).Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("query store %d: %w", storeID, err)
	}
	if len(stores) == 0 {
		return nil, errStoreNotFound
	}
	return &stores[0], nil
}

// ownedStores selects the ids of the stores a manager runs
func ownedStores(db *gorm.DB, managerID int64) *gorm.DB {
	return db.Model(&models.Store{}).Select("storeid").Where("managerid = ?", managerID)
}
