package main

import (
	"os"
	"os/signal"
	"syscall"

	"inventorytrack/internal/handler"
	"inventorytrack/internal/model"
	"inventorytrack/internal/repository"
	"inventorytrack/internal/service"
	"inventorytrack/internal/ws"
	"inventorytrack/pkg/config"
	"inventorytrack/pkg/database"
	"inventorytrack/pkg/logger"
	"inventorytrack/pkg/metrics"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env (.env is optional, system env wins when absent)
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	// 2. Setup Database
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	// Auto Migrate (use a dedicated migration tool for bigger schemas)
	if err := db.AutoMigrate(&model.Product{}, &model.Transaction{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	invService := service.NewInventoryService(productRepo, txRepo, db, wsHub, log)
	productService := service.NewProductService(productRepo, txRepo, wsHub, log)
	dashService := service.NewDashboardService(txRepo)

	productHandler := handler.NewProductHandler(productService)
	txHandler := handler.NewTransactionHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	// Middleware
	app.Use(fiberlogger.New()) // request logging
	app.Use(recover.New())     // panic recovery
	app.Use(cors.New())        // CORS

	// API docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./api/swagger.yaml",
		Path:     "docs",
		Title:    "InventoryTrack API",
	}))

	// 6. Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": cfg.App.Name})
	})

	app.Get("/products", productHandler.GetProducts)
	app.Post("/products", productHandler.CreateProduct)
	app.Get("/products/:id", productHandler.GetProduct)
	app.Put("/products/:id", productHandler.UpdateProduct)
	app.Delete("/products/:id", productHandler.DeleteProduct)

	app.Get("/transactions", txHandler.GetTransactions)
	app.Post("/transactions", txHandler.CreateTransaction)
	app.Get("/transactions/:id", txHandler.GetTransaction)

	app.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	app.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register(c)
		defer wsHub.Unregister(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.App.Port).Msg("InventoryTrack backend listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info().Msg("Server exited")
}
