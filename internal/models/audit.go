package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order is an append-only purchase record
type Order struct {
	OrderNumber  int64     `gorm:"column:ordernumber;primaryKey;autoIncrement:false"`
	CustomerID   int64     `gorm:"column:customerid;not null;index"`
	StoreID      int64     `gorm:"column:storeid;not null;index"`
	ProductName  string    `gorm:"column:productname;size:30;not null"`
	UnitsOrdered int       `gorm:"column:unitsordered;not null"`
	OrderTime    time.Time `gorm:"column:ordertime;not null"`
	Customer     *User     `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName overrides the table name for Order
func (Order) TableName() string {
	return "orders"
}

// ProductChanges records which product fields an update touched.
// A nil field was left unchanged.
type ProductChanges struct {
	PricePerUnit  *float64 `json:"pricePerUnit,omitempty"`
	NumberOfUnits *int     `json:"numberOfUnits,omitempty"`
}

// Empty is true when no field was changed
func (c ProductChanges) Empty() bool {
	return c.PricePerUnit == nil && c.NumberOfUnits == nil
}

// ProductUpdate is the audit row for one product update invocation
type ProductUpdate struct {
	UpdateNumber int64                              `gorm:"column:updatenumber;primaryKey;autoIncrement:false"`
	ManagerID    int64                              `gorm:"column:managerid;not null;index"`
	StoreID      int64                              `gorm:"column:storeid;not null"`
	ProductName  string                             `gorm:"column:productname;size:30;not null"`
	UpdatedOn    time.Time                          `gorm:"column:updatedon;not null"`
	Changes      datatypes.JSONType[ProductChanges] `gorm:"column:changes"`
}

// TableName overrides the table name for ProductUpdate
func (ProductUpdate) TableName() string {
	return "productupdates"
}

// ProductSupplyRequest is the audit row for a restock from a warehouse
type ProductSupplyRequest struct {
	RequestNumber  int64  `gorm:"column:requestnumber;primaryKey;autoIncrement:false"`
	ManagerID      int64  `gorm:"column:managerid;not null;index"`
	WarehouseID    int64  `gorm:"column:warehouseid;not null"`
	StoreID        int64  `gorm:"column:storeid;not null"`
	ProductName    string `gorm:"column:productname;size:30;not null"`
	UnitsRequested int    `gorm:"column:unitsrequested;not null"`
}

// TableName overrides the table name for ProductSupplyRequest
func (ProductSupplyRequest) TableName() string {
	return "productsupplyrequests"
}

// All lists every model in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Store{},
		&Warehouse{},
		&Product{},
		&Order{},
		&ProductUpdate{},
		&ProductSupplyRequest{},
	}
}
