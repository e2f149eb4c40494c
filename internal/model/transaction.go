package model

import "time"

type TransactionType string

const (
	TxIn  TransactionType = "IN"
	TxOut TransactionType = "OUT"
)

// Transaction is one ledger entry. Entries are append-only: they are created
// inside the stock mutation engine's commit and never updated or deleted,
// so there is no UpdatedAt and no delete path.
type Transaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Type      TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	ProductID uint            `gorm:"not null;index" json:"productId"`
	Product   *Product        `gorm:"constraint:OnDelete:RESTRICT" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"` // magnitude, always > 0; sign is implied by Type
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Delta is the signed effect of the entry on stock.
func (t *Transaction) Delta() int {
	if t.Type == TxOut {
		return -t.Quantity
	}
	return t.Quantity
}
