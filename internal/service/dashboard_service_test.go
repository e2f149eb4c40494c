package service_test

import (
	"testing"

	"inventorytrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)

	pens := &model.Product{Name: "Pens", CurrentStock: 100, ReorderLevel: 10}
	staplers := &model.Product{Name: "Staplers", CurrentStock: 2, ReorderLevel: 5}
	require.NoError(t, f.productRepo.Create(pens))
	require.NoError(t, f.productRepo.Create(staplers))

	stats, err := f.dashboard.GetDashboardStats()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.LowStockCount) // staplers at 2 <= reorder level 5
	assert.EqualValues(t, 102, stats.TotalUnits)
}

func TestDashboardStockMovement(t *testing.T) {
	f := newFixture(t)
	product := f.createProduct(t, "Pens", 100)

	for _, in := range []model.MovementInput{
		{Type: model.TxIn, ProductID: product.ID, Quantity: 20},
		{Type: model.TxIn, ProductID: product.ID, Quantity: 5},
		{Type: model.TxOut, ProductID: product.ID, Quantity: 10},
	} {
		in := in
		_, _, err := f.inventory.ApplyMovement(&in)
		require.NoError(t, err)
	}

	data, err := f.dashboard.GetStockMovement(7)
	require.NoError(t, err)
	require.Len(t, data, 1) // all entries created today

	assert.Equal(t, 25, data[0].Inbound)
	assert.Equal(t, 10, data[0].Outbound)
}
