// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/lib/pq"
	"github.com/your-org/cartigo-backend/internal/domain/catalog"
	"github.com/your-org/cartigo-backend/internal/domain/order"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// uuid defaults rely on pgcrypto's gen_random_uuid
	if err := m.db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		log.Printf("⚠️ Failed to create pgcrypto extension: %v", err)
	}

	// Define all models that need migration in dependency order
	models := []interface{}{
		// Catalog domain - Base tables
		&catalog.Category{},
		&catalog.Store{},
		&catalog.Product{},
		&catalog.DeliverySlot{},

		// Order domain - Dependent tables
		&order.Order{},
	}

	// Run auto-migration for each model
	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_store ON products(store_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",

		// Store indexes
		"CREATE INDEX IF NOT EXISTS idx_stores_rating ON stores(rating DESC)",

		// Delivery slot indexes
		"CREATE INDEX IF NOT EXISTS idx_delivery_slots_active ON delivery_slots(active)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_product ON orders(product_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedStores(); err != nil {
		return fmt.Errorf("failed to seed stores: %w", err)
	}

	if err := m.seedDeliverySlots(); err != nil {
		return fmt.Errorf("failed to seed delivery slots: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates the default browsable categories
func (m *Migration) seedCategories() error {
	var count int64
	m.db.Model(&catalog.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	log.Println("🏷️ Seeding categories...")

	categories := []catalog.Category{
		{Name: "Mobiles", Icon: catalog.IconSmartphone.String()},
		{Name: "Laptops", Icon: catalog.IconLaptop.String()},
		{Name: "Fashion", Icon: catalog.IconShirt.String()},
		{Name: "Home & Living", Icon: catalog.IconSofa.String()},
		{Name: "Sports", Icon: catalog.IconDumbbell.String()},
		{Name: "Beauty", Icon: catalog.IconSparkles.String()},
		{Name: "Books", Icon: catalog.IconBook.String()},
		{Name: "Toys", Icon: catalog.IconToyBrick.String()},
	}

	return m.db.Create(&categories).Error
}

// seedStores creates a handful of demo seller stores
func (m *Migration) seedStores() error {
	var count int64
	m.db.Model(&catalog.Store{}).Count(&count)
	if count > 0 {
		return nil
	}

	log.Println("🏪 Seeding stores...")

	stores := []catalog.Store{
		{Name: "TechBazaar", Location: "Indiranagar", Address: "221 100 Feet Road, Indiranagar, Bengaluru", Rating: 4.7, Verified: true},
		{Name: "Trendy Threads", Location: "Koramangala", Address: "14 80 Feet Road, Koramangala, Bengaluru", Rating: 4.5, Verified: true},
		{Name: "Home Harbour", Location: "HSR Layout", Address: "7 27th Main, HSR Layout, Bengaluru", Rating: 4.3, Verified: false},
		{Name: "FitZone", Location: "Whitefield", Address: "3 ITPL Main Road, Whitefield, Bengaluru", Rating: 4.1, Verified: true},
		{Name: "Page Turner", Location: "Jayanagar", Address: "45 4th Block, Jayanagar, Bengaluru", Rating: 4.6, Verified: false},
		{Name: "Glow Studio", Location: "MG Road", Address: "12 Church Street, MG Road, Bengaluru", Rating: 4.4, Verified: true},
	}

	return m.db.Create(&stores).Error
}

// seedDeliverySlots creates the selectable fulfillment windows
func (m *Migration) seedDeliverySlots() error {
	var count int64
	m.db.Model(&catalog.DeliverySlot{}).Count(&count)
	if count > 0 {
		return nil
	}

	log.Println("🕒 Seeding delivery slots...")

	slots := []catalog.DeliverySlot{
		{Label: "Morning", StartTime: "09:00", EndTime: "12:00", Active: true},
		{Label: "Afternoon", StartTime: "12:00", EndTime: "16:00", Active: true},
		{Label: "Evening", StartTime: "16:00", EndTime: "20:00", Active: true},
		{Label: "Late Night", StartTime: "20:00", EndTime: "23:00", Active: false},
	}

	return m.db.Create(&slots).Error
}

// seedProducts creates demo products spread across the seeded stores and
// categories
func (m *Migration) seedProducts() error {
	var count int64
	m.db.Model(&catalog.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	log.Println("📦 Seeding products...")

	var stores []catalog.Store
	if err := m.db.Order("created_at ASC").Find(&stores).Error; err != nil {
		return err
	}
	var categories []catalog.Category
	if err := m.db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return err
	}
	if len(stores) == 0 || len(categories) == 0 {
		return fmt.Errorf("stores and categories must be seeded before products")
	}

	desc := func(s string) *string { return &s }
	price := func(v int64) *int64 { return &v }

	products := []catalog.Product{
		{
			Name:            "Nebula X5 Smartphone",
			Description:     desc("6.5-inch AMOLED display, 128GB storage, dual SIM."),
			Price:           18999,
			OriginalPrice:   price(24999),
			CategoryID:      &categories[0].ID,
			StoreID:         &stores[0].ID,
			Images:          pq.StringArray{"https://images.example.com/products/nebula-x5.jpg"},
			OpenBoxDelivery: true,
			ReturnPolicy:    "7-day return",
			Stock:           25,
		},
		{
			Name:            "AeroBook 14 Laptop",
			Description:     desc("14-inch ultrabook, 16GB RAM, 512GB SSD."),
			Price:           54999,
			OriginalPrice:   price(64999),
			CategoryID:      &categories[1].ID,
			StoreID:         &stores[0].ID,
			Images:          pq.StringArray{"https://images.example.com/products/aerobook-14.jpg"},
			OpenBoxDelivery: true,
			ReturnPolicy:    "10-day return",
			Stock:           10,
		},
		{
			Name:          "Classic Denim Jacket",
			Description:   desc("Unisex denim jacket, stone washed."),
			Price:         1499,
			OriginalPrice: price(2499),
			CategoryID:    &categories[2].ID,
			StoreID:       &stores[1].ID,
			Images:        pq.StringArray{"https://images.example.com/products/denim-jacket.jpg"},
			ReturnPolicy:  "7-day return",
			Stock:         40,
		},
		{
			Name:         "Oakwood Coffee Table",
			Description:  desc("Solid oak coffee table with storage shelf."),
			Price:        7999,
			CategoryID:   &categories[3].ID,
			StoreID:      &stores[2].ID,
			Images:       pq.StringArray{"https://images.example.com/products/coffee-table.jpg"},
			ReturnPolicy: "No returns",
			Stock:        5,
		},
		{
			Name:          "Pro Yoga Mat",
			Description:   desc("6mm non-slip yoga mat with carry strap."),
			Price:         899,
			OriginalPrice: price(1299),
			CategoryID:    &categories[4].ID,
			StoreID:       &stores[3].ID,
			Images:        pq.StringArray{"https://images.example.com/products/yoga-mat.jpg"},
			ReturnPolicy:  "7-day return",
			Stock:         60,
		},
		{
			Name:         "Vitamin C Serum",
			Description:  desc("Brightening face serum, 30ml."),
			Price:        649,
			CategoryID:   &categories[5].ID,
			StoreID:      &stores[5].ID,
			Images:       pq.StringArray{"https://images.example.com/products/vitc-serum.jpg"},
			ReturnPolicy: "No returns",
			Stock:        80,
		},
		{
			Name:          "The Silent Library",
			Description:   desc("Bestselling mystery novel, paperback."),
			Price:         399,
			OriginalPrice: price(499),
			CategoryID:    &categories[6].ID,
			StoreID:       &stores[4].ID,
			Images:        pq.StringArray{"https://images.example.com/products/silent-library.jpg"},
			ReturnPolicy:  "7-day return",
			Stock:         30,
		},
		{
			Name:            "Galaxy Building Blocks",
			Description:     desc("512-piece space station building set."),
			Price:           2299,
			OriginalPrice:   price(2999),
			CategoryID:      &categories[7].ID,
			StoreID:         &stores[1].ID,
			Images:          pq.StringArray{"https://images.example.com/products/galaxy-blocks.jpg"},
			OpenBoxDelivery: true,
			ReturnPolicy:    "7-day return",
			Stock:           15,
		},
	}

	return m.db.Create(&products).Error
}

// GetTableInfo logs the row counts of the main tables
func (m *Migration) GetTableInfo() {
	tables := []string{"categories", "stores", "products", "delivery_slots", "orders"}

	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			log.Printf("⚠️ Failed to count table %s: %v", table, err)
			continue
		}
		log.Printf("📊 Table %s: %d rows", table, count)
	}
}
