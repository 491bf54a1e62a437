package main

import (
	"fmt"
	"log"

	"jewelry_shop/internal/config"
	"jewelry_shop/internal/database"
	"jewelry_shop/internal/models"

	"gorm.io/gorm"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.CartItem{},
		&models.Cart{},
		&models.ProductImage{},
		&models.Product{},
		&models.Category{},
		&models.Banner{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Banner{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeding demo data...")
	if err := seed(db); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	fmt.Println("Database initialized successfully")
}

func int64Ptr(v int64) *int64 { return &v }

func seed(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Uzuklar", Slug: "rings", Icon: "💍", SortOrder: 1, IsActive: true},
		{Name: "Sirg'alar", Slug: "earrings", Icon: "✨", SortOrder: 2, IsActive: true},
		{Name: "Marjonlar", Slug: "necklaces", Icon: "📿", SortOrder: 3, IsActive: true},
		{Name: "Bilaguzuklar", Slug: "bracelets", Icon: "⌚", SortOrder: 4, IsActive: true},
		{Name: "To'plamlar", Slug: "sets", Icon: "🎁", SortOrder: 5, IsActive: true},
		{Name: "Soatlar", Slug: "watches", Icon: "⏰", SortOrder: 6, IsActive: true},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
		fmt.Printf("  Category: %s\n", categories[i].Name)
	}

	bySlug := make(map[string]uint, len(categories))
	for _, c := range categories {
		bySlug[c.Slug] = c.ID
	}

	products := []models.Product{
		{
			Name:        "Oltin uzuk 585 proba, brilliant bilan",
			Description: "Klassik dizayndagi oltin uzuk. 585 proba sof oltin, markazida 0.5 karatli brilliant.",
			Price:       2500000,
			OldPrice:    int64Ptr(3000000),
			CategoryID:  bySlug["rings"],
			MetalType:   models.MetalGold,
			Weight:      3.5,
			Size:        "17",
			Proba:       "585",
			InStock:     true,
			IsFeatured:  true,
			IsActive:    true,
		},
		{
			Name:        "Nikoh uzugi klassik",
			Description: "Sodda va nafis nikoh uzugi. 585 proba oltin, ichki qismida isim yozish mumkin.",
			Price:       1800000,
			CategoryID:  bySlug["rings"],
			MetalType:   models.MetalGold,
			Weight:      2.8,
			Size:        "16-22",
			Proba:       "585",
			InStock:     true,
			IsActive:    true,
		},
		{
			Name:        "Sirg'a to'plami, marvarid bilan",
			Description: "Tabiiy dengiz marvaridi bilan bezatilgan sirg'alar. 585 proba oltin, marvarid diametri 8mm.",
			Price:       1800000,
			CategoryID:  bySlug["earrings"],
			MetalType:   models.MetalGold,
			Weight:      2.8,
			Proba:       "585",
			InStock:     true,
			IsFeatured:  true,
			IsActive:    true,
		},
		{
			Name:        "Osilib turadigan sirg'alar",
			Description: "Zamonaviy dizayn, 585 proba oltin. Har qanday libosga mos keladi.",
			Price:       2200000,
			OldPrice:    int64Ptr(2500000),
			CategoryID:  bySlug["earrings"],
			MetalType:   models.MetalGold,
			Weight:      4.2,
			Proba:       "585",
			InStock:     true,
			IsActive:    true,
		},
		{
			Name:        "Marjon zanjir, italyan to'qish",
			Description: "Italiya ishlab chiqarishi, 585 proba oltin. Uzunligi 45sm, kengaytirilishi mumkin.",
			Price:       4200000,
			OldPrice:    int64Ptr(4800000),
			CategoryID:  bySlug["necklaces"],
			MetalType:   models.MetalGold,
			Weight:      8.2,
			Proba:       "585",
			InStock:     true,
			IsFeatured:  true,
			IsActive:    true,
		},
		{
			Name:        "Kumush bilaguzuk",
			Description: "925 proba kumush, zamonaviy to'qish uslubi.",
			Price:       650000,
			CategoryID:  bySlug["bracelets"],
			MetalType:   models.MetalSilver,
			Weight:      12.0,
			Proba:       "925",
			InStock:     true,
			IsActive:    true,
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
		fmt.Printf("  Product: %s\n", products[i].Name)
	}

	images := []models.ProductImage{
		{ProductID: products[0].ID, ImageURL: "/media/products/ring-brilliant-main.jpg", IsMain: true, SortOrder: 1},
		{ProductID: products[0].ID, ImageURL: "/media/products/ring-brilliant-side.jpg", SortOrder: 2},
		{ProductID: products[2].ID, ImageURL: "/media/products/earrings-pearl-main.jpg", IsMain: true, SortOrder: 1},
		{ProductID: products[4].ID, ImageURL: "/media/products/chain-italian-main.jpg", IsMain: true, SortOrder: 1},
	}
	for i := range images {
		if err := db.Create(&images[i]).Error; err != nil {
			return err
		}
	}

	banners := []models.Banner{
		{
			Title:     "Yangi kolleksiya",
			Subtitle:  "2026-yil bahor kolleksiyasi sotuvda",
			Emoji:     "💎",
			SortOrder: 1,
			IsActive:  true,
		},
		{
			Title:     "Chegirmalar",
			Subtitle:  "Tanlangan mahsulotlarga 20% gacha chegirma",
			Emoji:     "🏷",
			SortOrder: 2,
			IsActive:  true,
		},
	}
	for i := range banners {
		if err := db.Create(&banners[i]).Error; err != nil {
			return err
		}
		fmt.Printf("  Banner: %s\n", banners[i].Title)
	}

	return nil
}
