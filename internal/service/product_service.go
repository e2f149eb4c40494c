package service

import (
	"errors"

	"inventorytrack/internal/model"
	"inventorytrack/internal/repository"
	"inventorytrack/internal/ws"
	"inventorytrack/pkg/metrics"
	"inventorytrack/pkg/validator"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ProductService covers the product CRUD that does not touch stock. Stock is
// set once at creation and from then on belongs to the mutation engine.
type ProductService interface {
	Create(in *model.ProductInput) (*model.Product, error)
	Get(id uint) (*model.Product, error)
	List() ([]model.Product, error)
	Update(id uint, patch *model.ProductPatch) (*model.Product, error)
	Delete(id uint) error
}

type productService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	wsHub           *ws.Hub
	log             zerolog.Logger
}

func NewProductService(
	pRepo repository.ProductRepository,
	tRepo repository.TransactionRepository,
	hub *ws.Hub,
	log zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		wsHub:           hub,
		log:             log.With().Str("component", "products").Logger(),
	}
}

func (s *productService) Create(in *model.ProductInput) (*model.Product, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, ValidationError{Msg: errs[0].Message()}
	}

	product := &model.Product{
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
	}
	if in.CurrentStock != nil {
		product.CurrentStock = *in.CurrentStock
	}
	if in.ReorderLevel != nil {
		product.ReorderLevel = *in.ReorderLevel
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	s.log.Info().Uint("product_id", product.ID).Str("name", product.Name).Msg("product created")
	s.wsHub.Publish(ws.NewEvent("product_created", product))

	return product, nil
}

func (s *productService) Get(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) List() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

// Update applies a partial update of the mutable fields. currentStock is
// rejected outright: accepting it here would bypass the ledger.
func (s *productService) Update(id uint, patch *model.ProductPatch) (*model.Product, error) {
	if patch.CurrentStock != nil {
		return nil, ErrStockImmutable
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, ErrNameRequired
	}
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, ValidationError{Msg: errs[0].Message()}
	}

	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.SKU != nil {
		fields["sku"] = *patch.SKU
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.ReorderLevel != nil {
		fields["reorder_level"] = *patch.ReorderLevel
	}

	if len(fields) > 0 {
		if err := s.productRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("product_id", id).Msg("product updated")
	s.wsHub.Publish(ws.NewEvent("product_updated", product))

	return product, nil
}

// Delete removes a product that has no ledger history. Entries reference the
// product as the ledger's source of truth, so deletion is blocked while any
// exist (a RESTRICT foreign key backs this up in the database).
func (s *productService) Delete(id uint) error {
	count, err := s.transactionRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductHasMovements
	}

	rows, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}

	s.log.Info().Uint("product_id", id).Msg("product deleted")
	s.wsHub.Publish(ws.NewEvent("product_deleted", map[string]interface{}{"id": id}))

	return nil
}
