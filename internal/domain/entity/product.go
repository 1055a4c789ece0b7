package entity

// Product represents an entry in the product catalog. Field names are kept
// PascalCase in JSON for parity with the documents the dataset was imported from.
type Product struct {
	ProductID   int     `gorm:"primaryKey;autoIncrement:false" json:"ProductID"`
	ProductName string  `gorm:"size:255;not null" json:"ProductName"`
	Category    string  `gorm:"size:255;not null;index" json:"Category"`
	Price       float64 `gorm:"not null" json:"Price"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
