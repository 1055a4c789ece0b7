package entity

import "time"

// Sale represents one immutable transaction line. ProductID is a soft
// reference: a sale may point at a product that is missing from the catalog,
// and aggregation treats that as a left match rather than an error.
type Sale struct {
	SaleID      int       `gorm:"primaryKey;autoIncrement:false" json:"SaleID"`
	ProductID   int       `gorm:"not null;index" json:"ProductID"`
	Quantity    int       `gorm:"not null" json:"Quantity"`
	Date        time.Time `gorm:"not null;index" json:"Date"`
	TotalAmount float64   `gorm:"not null" json:"TotalAmount"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
