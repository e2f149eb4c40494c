package repository

import (
	"inventorytrack/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Product, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	UpdateStock(tx *gorm.DB, id uint, newStock int) error
	Delete(id uint) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDForUpdate locks the product row for the duration of tx so that
// concurrent movements against the same product serialize on the row.
func (r *productRepo) FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Product, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateFields applies a partial update over an explicit column map.
// current_stock is deliberately never part of the map; only UpdateStock
// (called by the mutation engine inside its transaction) may write it.
func (r *productRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// UpdateStock takes *gorm.DB (tx) so the write participates in the caller's transaction.
func (r *productRepo) UpdateStock(tx *gorm.DB, id uint, newStock int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("current_stock", newStock).Error
}

func (r *productRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
