package model

type Product struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU         string `gorm:"type:varchar(50)" json:"sku"`
	Description string `json:"description"`
	// CurrentStock is owned by the stock mutation engine. It must always equal
	// the signed sum of this product's ledger entries plus the creation value.
	CurrentStock int `gorm:"not null;default:0" json:"currentStock" validate:"gte=0"`
	ReorderLevel int `gorm:"not null;default:0" json:"reorderLevel" validate:"gte=0"`

	Transactions []Transaction `json:"transactions,omitempty"`
}
