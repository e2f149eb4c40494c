package service

import (
	"errors"

	"inventorytrack/internal/model"
	"inventorytrack/internal/repository"
	"inventorytrack/internal/ws"
	"inventorytrack/pkg/metrics"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// InventoryService is the stock mutation engine: the only code path allowed
// to change a product's current stock, and the only writer of the ledger.
type InventoryService interface {
	ApplyMovement(in *model.MovementInput) (*model.Product, *model.Transaction, error)
	GetAllTransactions() ([]model.Transaction, error)
	GetTransactionByID(id uint) (*model.Transaction, error)
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
	log             zerolog.Logger
	locks           productLocks
}

func NewInventoryService(
	pRepo repository.ProductRepository,
	tRepo repository.TransactionRepository,
	db *gorm.DB,
	hub *ws.Hub,
	log zerolog.Logger,
) InventoryService {
	return &inventoryService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
		log:             log.With().Str("component", "inventory").Logger(),
	}
}

// ApplyMovement applies one stock change and appends its ledger entry as a
// single unit. The product row is locked for the duration of the database
// transaction, and a per-product mutex serializes callers in process, so the
// invariant check always runs against the last committed stock value.
func (s *inventoryService) ApplyMovement(in *model.MovementInput) (*model.Product, *model.Transaction, error) {
	// Fail fast, before any read.
	if in.Type != model.TxIn && in.Type != model.TxOut {
		metrics.MovementsRejected.WithLabelValues("validation").Inc()
		return nil, nil, ErrInvalidMovementType
	}
	if in.ProductID == 0 || in.Quantity <= 0 {
		metrics.MovementsRejected.WithLabelValues("validation").Inc()
		return nil, nil, ErrInvalidMovement
	}

	mu := s.locks.lock(in.ProductID)
	defer mu.Unlock()

	var product *model.Product
	entry := &model.Transaction{
		Type:      in.Type,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Note:      in.Note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		product, err = s.productRepo.FindByIDForUpdate(tx, in.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		newStock := product.CurrentStock + entry.Delta()
		if newStock < 0 {
			return ErrInsufficientStock
		}

		// Both writes commit together or not at all.
		if err := s.productRepo.UpdateStock(tx, product.ID, newStock); err != nil {
			return err
		}
		if err := s.transactionRepo.Create(tx, entry); err != nil {
			return err
		}

		product.CurrentStock = newStock
		return nil
	})
	if err != nil {
		s.observeRejection(in, err)
		return nil, nil, err
	}

	metrics.MovementsApplied.WithLabelValues(string(entry.Type)).Inc()
	s.log.Info().
		Uint("product_id", product.ID).
		Str("type", string(entry.Type)).
		Int("quantity", entry.Quantity).
		Int("stock", product.CurrentStock).
		Uint("entry_id", entry.ID).
		Msg("movement applied")

	s.wsHub.Publish(ws.NewEvent("movement_applied", map[string]interface{}{
		"transaction": entry,
		"product":     product,
	}))

	return product, entry, nil
}

func (s *inventoryService) observeRejection(in *model.MovementInput, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		metrics.MovementsRejected.WithLabelValues("not_found").Inc()
	case errors.Is(err, ErrInsufficientStock):
		metrics.MovementsRejected.WithLabelValues("insufficient_stock").Inc()
	default:
		metrics.MovementsRejected.WithLabelValues("storage").Inc()
		s.log.Error().Err(err).Uint("product_id", in.ProductID).Msg("movement failed")
		return
	}
	s.log.Debug().Err(err).Uint("product_id", in.ProductID).Msg("movement rejected")
}

func (s *inventoryService) GetAllTransactions() ([]model.Transaction, error) {
	return s.transactionRepo.FindAll()
}

func (s *inventoryService) GetTransactionByID(id uint) (*model.Transaction, error) {
	return s.transactionRepo.FindByID(id)
}
