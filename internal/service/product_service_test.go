package service_test

import (
	"testing"

	"inventorytrack/internal/model"
	"inventorytrack/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateProductDefaults(t *testing.T) {
	f := newFixture(t)

	product, err := f.products.Create(&model.ProductInput{Name: "Pens", SKU: "PEN-001"})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, 0, product.CurrentStock)
	assert.Equal(t, 0, product.ReorderLevel)
}

func TestCreateProductWithInitialStock(t *testing.T) {
	f := newFixture(t)

	product, err := f.products.Create(&model.ProductInput{
		Name:         "Notebooks",
		CurrentStock: intPtr(50),
		ReorderLevel: intPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, 50, product.CurrentStock)
	assert.Equal(t, 5, product.ReorderLevel)
	// The creation value is the ledger's starting point, not an entry.
	f.assertReplaySum(t, product.ID, 50)
}

func TestCreateProductValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.products.Create(&model.ProductInput{})
	require.ErrorIs(t, err, service.ErrNameRequired)

	_, err = f.products.Create(&model.ProductInput{Name: "Pens", CurrentStock: intPtr(-1)})
	require.Error(t, err)
	assert.True(t, service.IsClientError(err))

	products, err := f.products.List()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProductsOrderedByID(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "Pens", 100)
	f.createProduct(t, "Notebooks", 50)
	f.createProduct(t, "Staplers", 20)

	products, err := f.products.List()
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i := 1; i < len(products); i++ {
		assert.Less(t, products[i-1].ID, products[i].ID)
	}
}

func TestUpdateProductPartial(t *testing.T) {
	f := newFixture(t)
	product := f.createProduct(t, "Pens", 100)

	updated, err := f.products.Update(product.ID, &model.ProductPatch{
		Name:         strPtr("Gel Pens"),
		ReorderLevel: intPtr(15),
	})
	require.NoError(t, err)

	assert.Equal(t, "Gel Pens", updated.Name)
	assert.Equal(t, 15, updated.ReorderLevel)
	// Untouched fields stay as they were.
	assert.Equal(t, 100, updated.CurrentStock)
}

func TestUpdateProductRejectsStockWrites(t *testing.T) {
	f := newFixture(t)
	product := f.createProduct(t, "Pens", 100)

	_, err := f.products.Update(product.ID, &model.ProductPatch{CurrentStock: intPtr(500)})
	require.ErrorIs(t, err, service.ErrStockImmutable)
	assert.Equal(t, 100, f.currentStock(t, product.ID))
}

func TestUpdateProductValidation(t *testing.T) {
	f := newFixture(t)
	product := f.createProduct(t, "Pens", 100)

	_, err := f.products.Update(product.ID, &model.ProductPatch{Name: strPtr("")})
	require.ErrorIs(t, err, service.ErrNameRequired)

	_, err = f.products.Update(product.ID, &model.ProductPatch{ReorderLevel: intPtr(-3)})
	require.Error(t, err)
	assert.True(t, service.IsClientError(err))

	_, err = f.products.Update(9999, &model.ProductPatch{Name: strPtr("Ghost")})
	require.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture(t)
	product := f.createProduct(t, "Pens", 100)

	require.NoError(t, f.products.Delete(product.ID))

	_, err := f.products.Get(product.ID)
	require.ErrorIs(t, err, service.ErrProductNotFound)

	require.ErrorIs(t, f.products.Delete(product.ID), service.ErrProductNotFound)
}

func TestDeleteProductWithLedgerHistory(t *testing.T) {
	f := newFixture(t)
	product := f.createProduct(t, "Pens", 100)

	_, _, err := f.inventory.ApplyMovement(&model.MovementInput{
		Type:      model.TxOut,
		ProductID: product.ID,
		Quantity:  1,
	})
	require.NoError(t, err)

	require.ErrorIs(t, f.products.Delete(product.ID), service.ErrProductHasMovements)

	// The product and its history survive.
	_, err = f.products.Get(product.ID)
	require.NoError(t, err)
	count, err := f.txRepo.CountByProduct(product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
