package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, product Product, quantity int, price int64) SaleItem {
	t.Helper()
	item, err := NewSaleItem(uuid.Nil, product, quantity, decimal.NewFromInt(price), false)
	require.NoError(t, err)
	return *item
}

func TestNewSale(t *testing.T) {
	items := []SaleItem{
		mustItem(t, ProductLager, 2, 50),
		mustItem(t, ProductStout, 10, 100),
	}

	sale, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown, items)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sale.ID)
	assert.Equal(t, 2, sale.TotalItems())
	for _, item := range sale.Items {
		assert.Equal(t, sale.ID, item.SaleID)
	}
}

func TestNewSale_RequiresItems(t *testing.T) {
	_, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown, nil)
	assert.ErrorIs(t, err, ErrSaleMustHaveItems)
}

func TestNewSale_ZeroDateDefaultsToNow(t *testing.T) {
	sale, err := NewSale("SALE-001", time.Time{}, CustomerRetail, BranchDowntown,
		[]SaleItem{mustItem(t, ProductLager, 1, 10)})
	require.NoError(t, err)

	assert.False(t, sale.SaleDate.IsZero())
	assert.WithinDuration(t, time.Now(), sale.SaleDate, time.Minute)
}

func TestSale_TotalAmount(t *testing.T) {
	sale, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown, []SaleItem{
		mustItem(t, ProductLager, 2, 50),   // 100, sin descuento
		mustItem(t, ProductStout, 10, 100), // 1000 - 200
	})
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount().Equal(decimal.NewFromInt(900)),
		"total = %s", sale.TotalAmount())
}

func TestSale_CancelZeroesTotal(t *testing.T) {
	sale, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown,
		[]SaleItem{mustItem(t, ProductLager, 10, 100)})
	require.NoError(t, err)
	require.False(t, sale.TotalAmount().IsZero())

	sale.Cancel()

	assert.True(t, sale.IsCancelled)
	assert.True(t, sale.TotalAmount().IsZero())
	// Los items conservan su estado: la cancelación es a nivel de venta
	assert.False(t, sale.Items[0].IsCancelled)
}

func TestSale_AddItem(t *testing.T) {
	sale, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown,
		[]SaleItem{mustItem(t, ProductLager, 2, 50)})
	require.NoError(t, err)

	item, err := sale.AddItem(ProductStout, 10, decimal.NewFromInt(100), false)
	require.NoError(t, err)

	assert.Equal(t, 2, sale.TotalItems())
	assert.Equal(t, sale.ID, item.SaleID)
	assert.True(t, item.Discount.Equal(decimal.NewFromInt(200)))
	assert.True(t, sale.TotalAmount().Equal(decimal.NewFromInt(900)))

	_, err = sale.AddItem(ProductLager, 21, decimal.NewFromInt(10), false)
	assert.ErrorIs(t, err, ErrQuantityAboveLimit)
	assert.Equal(t, 2, sale.TotalItems())
}

func TestSale_MergeItems(t *testing.T) {
	sale, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown, []SaleItem{
		mustItem(t, ProductLager, 2, 50),
		mustItem(t, ProductStout, 5, 20),
	})
	require.NoError(t, err)

	keptID := sale.Items[0].ID

	patches := []ItemPatch{
		// Item existente: cambia cantidad, debe recalcular descuento
		{ID: keptID, Product: ProductLager, Quantity: 10, UnitPrice: decimal.NewFromInt(50)},
		// Item nuevo sin ID
		{Product: ProductWater, Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
	}

	require.NoError(t, sale.MergeItems(patches))

	require.Equal(t, 2, sale.TotalItems())

	kept := sale.Items[0]
	assert.Equal(t, keptID, kept.ID)
	assert.Equal(t, 10, kept.Quantity)
	assert.True(t, kept.Discount.Equal(decimal.NewFromInt(100)))

	added := sale.Items[1]
	assert.NotEqual(t, uuid.Nil, added.ID)
	assert.Equal(t, ProductWater, added.Product)
	assert.Equal(t, sale.ID, added.SaleID)
}

func TestSale_MergeItemsIsIdempotent(t *testing.T) {
	sale, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown, []SaleItem{
		mustItem(t, ProductLager, 2, 50),
	})
	require.NoError(t, err)

	patches := []ItemPatch{
		{ID: sale.Items[0].ID, Product: ProductLager, Quantity: 4, UnitPrice: decimal.NewFromInt(50)},
		{ID: uuid.New(), Product: ProductSoda, Quantity: 2, UnitPrice: decimal.NewFromInt(3)},
	}

	require.NoError(t, sale.MergeItems(patches))
	firstState := append([]SaleItem(nil), sale.Items...)

	require.NoError(t, sale.MergeItems(patches))

	require.Equal(t, len(firstState), sale.TotalItems())
	for i := range firstState {
		assert.Equal(t, firstState[i].ID, sale.Items[i].ID)
		assert.Equal(t, firstState[i].Quantity, sale.Items[i].Quantity)
	}
}

func TestSale_MergeItemsRemovesAbsent(t *testing.T) {
	sale, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown, []SaleItem{
		mustItem(t, ProductLager, 2, 50),
		mustItem(t, ProductStout, 5, 20),
	})
	require.NoError(t, err)

	keptID := sale.Items[1].ID
	require.NoError(t, sale.MergeItems([]ItemPatch{
		{ID: keptID, Product: ProductStout, Quantity: 5, UnitPrice: decimal.NewFromInt(20)},
	}))

	require.Equal(t, 1, sale.TotalItems())
	assert.Equal(t, keptID, sale.Items[0].ID)
}

func TestSale_MergeItemsRejectsBadQuantity(t *testing.T) {
	sale, err := NewSale("SALE-001", time.Now(), CustomerRetail, BranchDowntown, []SaleItem{
		mustItem(t, ProductLager, 2, 50),
	})
	require.NoError(t, err)

	err = sale.MergeItems([]ItemPatch{
		{Product: ProductLager, Quantity: 30, UnitPrice: decimal.NewFromInt(10)},
	})
	assert.ErrorIs(t, err, ErrQuantityAboveLimit)
}
