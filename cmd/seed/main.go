package main

import (
	"fmt"
	"time"

	"oms/internal/config"
	"oms/internal/domain/model"
	"oms/internal/infra/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 開発用のサンプルデータ投入。既存データは消してから入れ直す
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}

	migrator := gormDB.Migrator()
	for _, m := range []interface{}{
		&model.InventoryAdjustment{},
		&model.Shipment{},
		&model.OrderLine{},
		&model.Order{},
		&model.Product{},
		&model.Retailer{},
	} {
		if migrator.HasTable(m) {
			if err := migrator.DropTable(m); err != nil {
				panic(err)
			}
		}
	}
	if err := gormDB.AutoMigrate(
		&model.Retailer{},
		&model.Product{},
		&model.Order{},
		&model.OrderLine{},
		&model.Shipment{},
		&model.InventoryAdjustment{},
	); err != nil {
		panic(err)
	}

	if err := seed(gormDB); err != nil {
		panic(err)
	}
	fmt.Println("database seeded")
}

func seed(gormDB *gorm.DB) error {
	now := time.Now().UTC()

	retailers := []model.Retailer{
		{Name: "Walmart", EDIIdentifier: "WALMART001", ContactEmail: "edi@walmart.com", ContactPhone: "555-0001", IsActive: true},
		{Name: "Target", EDIIdentifier: "TARGET001", ContactEmail: "edi@target.com", ContactPhone: "555-0002", IsActive: true},
		{Name: "Amazon", EDIIdentifier: "AMAZON001", ContactEmail: "edi@amazon.com", ContactPhone: "555-0003", IsActive: true},
	}
	if err := gormDB.Create(&retailers).Error; err != nil {
		return err
	}

	products := []model.Product{
		sampleProduct("WIDGET-001", "123456789001", "Premium Widget", "High-quality widget for all purposes", "29.99", "15.00", 500),
		sampleProduct("GADGET-002", "123456789002", "Smart Gadget", "IoT-enabled smart gadget", "49.99", "25.00", 300),
		sampleProduct("TOOL-003", "123456789003", "Multi-Tool Set", "Complete tool set for professionals", "89.99", "45.00", 150),
		sampleProduct("GIZMO-004", "123456789004", "Portable Gizmo", "Compact and portable gizmo", "19.99", "8.00", 1000),
	}
	if err := gormDB.Create(&products).Error; err != nil {
		return err
	}

	shipBy1 := now.Add(3 * 24 * time.Hour)
	order1 := model.Order{
		OrderNumber:    "WMT-20240115-001",
		RetailerID:     retailers[0].ID,
		Status:         model.OrderStatusPending,
		OrderDate:      now.Add(-2 * 24 * time.Hour),
		ShipByDate:     &shipBy1,
		ShipToName:     "John Smith",
		ShipToAddress1: "123 Main Street",
		ShipToCity:     "Springfield",
		ShipToState:    "IL",
		ShipToZip:      "62701",
		ShipToCountry:  "USA",
		Subtotal:       decimal.RequireFromString("59.98"),
		TaxAmount:      decimal.RequireFromString("4.80"),
		ShippingAmount: decimal.RequireFromString("9.99"),
		TotalAmount:    decimal.RequireFromString("74.77"),
	}
	if err := gormDB.Create(&order1).Error; err != nil {
		return err
	}
	if err := gormDB.Create(&model.OrderLine{
		OrderID:         order1.ID,
		ProductID:       products[0].ID,
		QuantityOrdered: 2,
		UnitPrice:       decimal.RequireFromString("29.99"),
		LineTotal:       decimal.RequireFromString("59.98"),
	}).Error; err != nil {
		return err
	}

	shipBy2 := now.Add(2 * 24 * time.Hour)
	order2 := model.Order{
		OrderNumber:    "TGT-20240116-001",
		RetailerID:     retailers[1].ID,
		Status:         model.OrderStatusProcessing,
		OrderDate:      now.Add(-24 * time.Hour),
		ShipByDate:     &shipBy2,
		ShipToName:     "Jane Doe",
		ShipToAddress1: "456 Oak Avenue",
		ShipToCity:     "Portland",
		ShipToState:    "OR",
		ShipToZip:      "97201",
		ShipToCountry:  "USA",
		Subtotal:       decimal.RequireFromString("139.97"),
		TaxAmount:      decimal.RequireFromString("11.20"),
		ShippingAmount: decimal.RequireFromString("12.99"),
		TotalAmount:    decimal.RequireFromString("164.16"),
	}
	if err := gormDB.Create(&order2).Error; err != nil {
		return err
	}
	order2Lines := []model.OrderLine{
		{
			OrderID:         order2.ID,
			ProductID:       products[1].ID,
			QuantityOrdered: 1,
			UnitPrice:       decimal.RequireFromString("49.99"),
			LineTotal:       decimal.RequireFromString("49.99"),
		},
		{
			OrderID:         order2.ID,
			ProductID:       products[2].ID,
			QuantityOrdered: 1,
			UnitPrice:       decimal.RequireFromString("89.99"),
			LineTotal:       decimal.RequireFromString("89.99"),
		},
	}
	if err := gormDB.Create(&order2Lines).Error; err != nil {
		return err
	}

	shipBy3 := now.Add(24 * time.Hour)
	order3 := model.Order{
		OrderNumber:    "AMZ-20240117-001",
		RetailerID:     retailers[2].ID,
		Status:         model.OrderStatusShipped,
		OrderDate:      now.Add(-12 * time.Hour),
		ShipByDate:     &shipBy3,
		ShipToName:     "Bob Johnson",
		ShipToAddress1: "789 Pine Street",
		ShipToAddress2: "Apt 4B",
		ShipToCity:     "Austin",
		ShipToState:    "TX",
		ShipToZip:      "78701",
		ShipToCountry:  "USA",
		Subtotal:       decimal.RequireFromString("99.95"),
		TaxAmount:      decimal.RequireFromString("8.00"),
		ShippingAmount: decimal.RequireFromString("0.00"),
		TotalAmount:    decimal.RequireFromString("107.95"),
	}
	if err := gormDB.Create(&order3).Error; err != nil {
		return err
	}
	if err := gormDB.Create(&model.OrderLine{
		OrderID:         order3.ID,
		ProductID:       products[3].ID,
		QuantityOrdered: 5,
		UnitPrice:       decimal.RequireFromString("19.99"),
		LineTotal:       decimal.RequireFromString("99.95"),
	}).Error; err != nil {
		return err
	}

	shippedDate := now.Add(-6 * time.Hour)
	return gormDB.Create(&model.Shipment{
		OrderID:        order3.ID,
		ShipmentNumber: "SHIP-20240117-001",
		Carrier:        "UPS",
		TrackingNumber: "1Z999AA10123456789",
		ServiceLevel:   "Ground",
		Status:         model.ShipmentStatusInTransit,
		ShippedDate:    &shippedDate,
	}).Error
}

func sampleProduct(sku, upc, name, description, price, cost string, onHand int64) model.Product {
	return model.Product{
		SKU:               sku,
		UPC:               &upc,
		Name:              name,
		Description:       description,
		Price:             decimal.RequireFromString(price),
		Cost:              decimal.RequireFromString(cost),
		QuantityOnHand:    onHand,
		QuantityAvailable: onHand,
		IsActive:          true,
	}
}
