package model

// Request bodies, one explicit struct per write operation.

// ProductInput is the body of POST /products.
type ProductInput struct {
	Name         string `json:"name" validate:"required"`
	SKU          string `json:"sku"`
	Description  string `json:"description"`
	CurrentStock *int   `json:"currentStock" validate:"omitempty,gte=0"`
	ReorderLevel *int   `json:"reorderLevel" validate:"omitempty,gte=0"`
}

// ProductPatch is the body of PUT /products/:id. Nil means "leave unchanged".
// CurrentStock is parsed only so the request can be rejected explicitly:
// stock changes go through POST /transactions.
type ProductPatch struct {
	Name         *string `json:"name"`
	SKU          *string `json:"sku"`
	Description  *string `json:"description"`
	ReorderLevel *int    `json:"reorderLevel" validate:"omitempty,gte=0"`
	CurrentStock *int    `json:"currentStock"`
}

// MovementInput is the body of POST /transactions.
type MovementInput struct {
	Type      TransactionType `json:"type"`
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	Note      string          `json:"note"`
}
