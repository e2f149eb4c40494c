package repository

import (
	"time"

	"inventorytrack/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, entry *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByID(id uint) (*model.Transaction, error)
	CountByProduct(productID uint) (int64, error)
	NetQuantity(productID uint) (int64, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

// StockMovementData for chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats for overview stats
type DashboardStats struct {
	TotalProducts int64 `json:"total_products"`
	LowStockCount int64 `json:"low_stock_count"`
	TotalUnits    int64 `json:"total_units"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create takes *gorm.DB (tx): the ledger append must commit together with the
// stock update, so it always runs inside the mutation engine's transaction.
func (r *transactionRepo) Create(tx *gorm.DB, entry *model.Transaction) error {
	return tx.Create(entry).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	err := r.db.Preload("Product").Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

// NetQuantity replays the ledger for one product: IN entries count positive,
// OUT entries negative. The result plus the creation stock must equal the
// product's current_stock at all times.
func (r *transactionRepo) NetQuantity(productID uint) (int64, error) {
	var net int64
	err := r.db.Model(&model.Transaction{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(CASE WHEN type = 'IN' THEN quantity ELSE -quantity END), 0)").
		Scan(&net).Error
	return net, err
}

func (r *transactionRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	// Aggregate ledger entries per day
	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN type = 'IN' THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN type = 'OUT' THEN quantity ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

func (r *transactionRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	// Products at or below their reorder threshold
	if err := r.db.Model(&model.Product{}).
		Where("current_stock <= reorder_level").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(current_stock), 0)").
		Scan(&stats.TotalUnits).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
