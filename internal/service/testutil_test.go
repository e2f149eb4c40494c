package service_test

import (
	"testing"

	"inventorytrack/internal/model"
	"inventorytrack/internal/repository"
	"inventorytrack/internal/service"
	"inventorytrack/internal/ws"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database. A single connection keeps the
// schema alive and makes concurrent transactions queue instead of failing
// with sqlite lock errors.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Transaction{}))
	return db
}

type fixture struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	inventory   service.InventoryService
	products    service.ProductService
	dashboard   service.DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	hub := ws.NewHub(zerolog.Nop())
	go hub.Run()

	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	return &fixture{
		db:          db,
		productRepo: productRepo,
		txRepo:      txRepo,
		inventory:   service.NewInventoryService(productRepo, txRepo, db, hub, zerolog.Nop()),
		products:    service.NewProductService(productRepo, txRepo, hub, zerolog.Nop()),
		dashboard:   service.NewDashboardService(txRepo),
	}
}

func (f *fixture) createProduct(t *testing.T, name string, stock int) *model.Product {
	t.Helper()

	product := &model.Product{Name: name, CurrentStock: stock}
	require.NoError(t, f.productRepo.Create(product))
	return product
}

// currentStock re-reads the committed stock value.
func (f *fixture) currentStock(t *testing.T, id uint) int {
	t.Helper()

	product, err := f.productRepo.FindByID(id)
	require.NoError(t, err)
	return product.CurrentStock
}

// assertReplaySum checks the ledger invariant: committed stock equals the
// creation stock plus the signed sum of all ledger entries.
func (f *fixture) assertReplaySum(t *testing.T, id uint, initialStock int) {
	t.Helper()

	net, err := f.txRepo.NetQuantity(id)
	require.NoError(t, err)
	require.Equal(t, initialStock+int(net), f.currentStock(t, id))
}
