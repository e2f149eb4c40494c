package main

import (
	"inventorytrack/internal/model"
	"inventorytrack/pkg/config"
	"inventorytrack/pkg/database"
	"inventorytrack/pkg/logger"

	"github.com/joho/godotenv"
)

// Seeds a handful of demo products. Wipes the ledger and the catalog first,
// so never point this at a real database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(&model.Product{}, &model.Transaction{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	// Ledger entries reference products, so they go first.
	if err := db.Where("1 = 1").Delete(&model.Transaction{}).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to clear transactions")
	}
	if err := db.Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to clear products")
	}

	products := []model.Product{
		{Name: "Pens", SKU: "PEN-001", CurrentStock: 100, ReorderLevel: 10},
		{Name: "Notebooks", SKU: "NB-003", CurrentStock: 50, ReorderLevel: 5},
		{Name: "Staplers", SKU: "STP-01", CurrentStock: 20, ReorderLevel: 2},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed products")
	}

	log.Info().Int("products", len(products)).Msg("Seed finished")
}
