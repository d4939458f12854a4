package services

import (
	"context"
	"fmt"

	"github.com/localnerve/marketdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ProductPopularity is an order count for one product name
type ProductPopularity struct {
	ProductName string
	OrderCount  int64
}

// CustomerPopularity is an order count for one customer
type CustomerPopularity struct {
	CustomerName string
	OrderCount   int64
}

// scopeOrders limits a query on orders to what the principal may report on:
// every order for admins, orders at owned stores for anyone else.
func scopeOrders(db *gorm.DB, q *gorm.DB, principal *models.User) *gorm.DB {
	if principal.Role == models.RoleAdmin {
		return q
	}
	return q.Where("orders.storeid IN (?)", ownedStores(db, principal.ID))
}

// PopularProducts returns the five products with the most orders
func PopularProducts(ctx context.Context, db *gorm.DB, principal *models.User) ([]ProductPopularity, error) {
	db = db.WithContext(ctx)
	q := db.Model(&models.Order{}).
		Clauses(hints.CommentBefore("SELECT", "marketdb:popular_products")).
		Select("orders.productname AS product_name, COUNT(*) AS order_count").
		Group("orders.productname").
		Order("order_count DESC").Order("product_name").
		Limit(5)

	var rows []ProductPopularity
	if err := scopeOrders(db, q, principal).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query popular products: %w", err)
	}
	return rows, nil
}

// PopularCustomers returns the five customers with the most orders
func PopularCustomers(ctx context.Context, db *gorm.DB, principal *models.User) ([]CustomerPopularity, error) {
	db = db.WithContext(ctx)
	q := db.Model(&models.Order{}).
		Clauses(hints.CommentBefore("SELECT", "marketdb:popular_customers")).
		Select("users.name AS customer_name, COUNT(*) AS order_count").
		Joins("JOIN users ON users.userid = orders.customerid").
		Group("users.userid, users.name").
		Order("order_count DESC").Order("customer_name").
		Limit(5)

	var rows []CustomerPopularity
	if err := scopeOrders(db, q, principal).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query popular customers: %w", err)
	}
	return rows, nil
}
