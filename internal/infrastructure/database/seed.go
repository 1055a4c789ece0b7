package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/salesight/salesight-api/internal/domain/entity"
)

// SeedDemoData loads a small demo dataset when both collections are empty.
// Production deployments import real data out of band, so this only runs for
// development environments (the caller guards on the environment).
func SeedDemoData(db *gorm.DB) error {
	var productCount, saleCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if err := db.Model(&entity.Sale{}).Count(&saleCount).Error; err != nil {
		return err
	}
	if productCount > 0 || saleCount > 0 {
		return nil
	}

	log.Println("Seeding demo data...")

	products := []entity.Product{
		{ProductID: 1, ProductName: "Mechanical Keyboard", Category: "Accessories", Price: 89.99},
		{ProductID: 2, ProductName: "27in Monitor", Category: "Displays", Price: 249.00},
		{ProductID: 3, ProductName: "Wireless Mouse", Category: "Accessories", Price: 39.50},
		{ProductID: 4, ProductName: "USB-C Dock", Category: "Accessories", Price: 129.00},
		{ProductID: 5, ProductName: "Ultrawide Monitor", Category: "Displays", Price: 499.00},
		{ProductID: 6, ProductName: "Webcam", Category: "Peripherals", Price: 59.00},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	day := func(offset int) time.Time {
		return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -offset)
	}
	sales := []entity.Sale{
		{SaleID: 1, ProductID: 1, Quantity: 2, Date: day(30), TotalAmount: 179.98},
		{SaleID: 2, ProductID: 2, Quantity: 1, Date: day(25), TotalAmount: 249.00},
		{SaleID: 3, ProductID: 3, Quantity: 4, Date: day(20), TotalAmount: 158.00},
		{SaleID: 4, ProductID: 1, Quantity: 1, Date: day(14), TotalAmount: 89.99},
		{SaleID: 5, ProductID: 5, Quantity: 1, Date: day(10), TotalAmount: 499.00},
		{SaleID: 6, ProductID: 3, Quantity: 2, Date: day(7), TotalAmount: 79.00},
		{SaleID: 7, ProductID: 6, Quantity: 3, Date: day(3), TotalAmount: 177.00},
		{SaleID: 8, ProductID: 2, Quantity: 2, Date: day(1), TotalAmount: 498.00},
	}
	if err := db.Create(&sales).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d products and %d sales", len(products), len(sales))
	return nil
}
