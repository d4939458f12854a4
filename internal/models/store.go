package models

import "time"

// Store is a retail location operated by a manager
type Store struct {
	ID              int64     `gorm:"column:storeid;primaryKey;autoIncrement:false"`
	Name            string    `gorm:"column:name;size:30"`
	Latitude        float64   `gorm:"column:latitude;not null"`
	Longitude       float64   `gorm:"column:longitude;not null"`
	ManagerID       int64     `gorm:"column:managerid;not null;index"`
	DateEstablished time.Time `gorm:"column:dateestablished"`
}

// TableName overrides the table name for Store
func (Store) TableName() string {
	return "store"
}

// Warehouse is a supply source for product supply requests
type Warehouse struct {
	ID        int64   `gorm:"column:warehouseid;primaryKey;autoIncrement:false"`
	Area      float64 `gorm:"column:area"`
	Latitude  float64 `gorm:"column:latitude;not null"`
	Longitude float64 `gorm:"column:longitude;not null"`
}

// TableName overrides the table name for Warehouse
func (Warehouse) TableName() string {
	return "warehouse"
}

// Product is a stock line of one store, keyed by (store, name)
type Product struct {
	StoreID       int64   `gorm:"column:storeid;primaryKey;autoIncrement:false"`
	ProductName   string  `gorm:"column:productname;primaryKey;size:30"`
	NumberOfUnits int     `gorm:"column:numberofunits;not null;default:0;check:chk_product_units,numberofunits >= 0"`
	PricePerUnit  float64 `gorm:"column:priceperunit;not null"`
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "product"
}
