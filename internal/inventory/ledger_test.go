package inventory

import (
	"testing"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawFIFOAcrossBatches(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	item := seedItem(t, db, 15, 15, nil)
	batchA := seedBatch(t, db, item.ID, 5, day(1))
	batchB := seedBatch(t, db, item.ID, 10, day(2))

	wlog, err := Withdraw(db, item.ID, 8, FIFO, "dinner service", emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, wlog.Quantity)

	var a, b models.StockBatch
	require.NoError(t, db.First(&a, batchA.ID).Error)
	require.NoError(t, db.First(&b, batchB.ID).Error)
	assert.Equal(t, 0.0, a.QuantityRemaining)
	assert.Equal(t, 7.0, b.QuantityRemaining)

	var got models.InventoryItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 7.0, got.Quantity)
	assert.Equal(t, "47", got.Status) // 7/15

	var logCount int64
	require.NoError(t, db.Model(&models.WithdrawalLog{}).Count(&logCount).Error)
	assert.Equal(t, int64(1), logCount)
}

func TestWithdrawLIFOTakesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	item := seedItem(t, db, 15, 15, nil)
	batchA := seedBatch(t, db, item.ID, 5, day(1))
	batchB := seedBatch(t, db, item.ID, 10, day(2))

	_, err := Withdraw(db, item.ID, 4, LIFO, "", emp.ID)
	require.NoError(t, err)

	var a, b models.StockBatch
	require.NoError(t, db.First(&a, batchA.ID).Error)
	require.NoError(t, db.First(&b, batchB.ID).Error)
	assert.Equal(t, 5.0, a.QuantityRemaining)
	assert.Equal(t, 6.0, b.QuantityRemaining)
}

func TestWithdrawInsufficientStockMutatesNothing(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	item := seedItem(t, db, 15, 15, nil)
	seedBatch(t, db, item.ID, 5, day(1))
	seedBatch(t, db, item.ID, 10, day(2))

	_, err := Withdraw(db, item.ID, 20, FIFO, "", emp.ID)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var batches []models.StockBatch
	require.NoError(t, db.Where("item_id = ?", item.ID).Find(&batches).Error)
	for _, b := range batches {
		assert.Equal(t, b.QuantityReceived, b.QuantityRemaining)
	}

	var got models.InventoryItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 15.0, got.Quantity)

	var logCount int64
	require.NoError(t, db.Model(&models.WithdrawalLog{}).Count(&logCount).Error)
	assert.Zero(t, logCount)
}

func TestWithdrawUnknownItem(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)

	_, err := Withdraw(db, 999, 1, FIFO, "", emp.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestWithdrawTriggersReorder(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	supplier := seedSupplier(t, db)
	item := seedItem(t, db, 100, 100, &supplier.ID)
	seedBatch(t, db, item.ID, 100, day(1))

	_, err := Withdraw(db, item.ID, 95, FIFO, "", emp.ID)
	require.NoError(t, err)

	var got models.InventoryItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, "5", got.Status)

	var order models.SupplierOrder
	require.NoError(t, db.Where("item_id = ?", item.ID).First(&order).Error)
	assert.Equal(t, 95.0, order.QuantityOrdered)
	assert.Equal(t, models.SupplierOrderSent, order.Status)
}

func TestAddStockCreatesBatchAndRatchets(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	supplier := seedSupplier(t, db)
	item := seedItem(t, db, 40, 100, nil)
	seedBatch(t, db, item.ID, 40, day(1))

	batch, err := AddStock(db, item.ID, 80, 2.5, day(5), &supplier.ID, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, batch.QuantityRemaining)
	assert.Regexp(t, `^BATCH-[0-9A-F]{8}$`, batch.BatchNumber)

	var got models.InventoryItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 120.0, got.Quantity)
	assert.Equal(t, 120.0, got.InitialQuantity) // ratcheted past the old mark
	assert.Equal(t, "100", got.Status)
	require.NotNil(t, got.SupplierID)
	assert.Equal(t, supplier.ID, *got.SupplierID)

	var purchase models.Purchase
	require.NoError(t, db.Where("batch_id = ?", batch.ID).First(&purchase).Error)
	assert.Equal(t, 200.0, purchase.TotalCost)
	assert.Equal(t, emp.ID, purchase.EmployeeID)
}

func TestAddStockBelowThresholdTriggersReorder(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	supplier := seedSupplier(t, db)
	item := seedItem(t, db, 5, 100, &supplier.ID)
	seedBatch(t, db, item.ID, 5, day(1))

	// an addition too small to clear the threshold still raises an order
	_, err := AddStock(db, item.ID, 3, 1, day(2), nil, emp.ID)
	require.NoError(t, err)

	var got models.InventoryItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, "8", got.Status)

	var order models.SupplierOrder
	require.NoError(t, db.Where("item_id = ?", item.ID).First(&order).Error)
	assert.Equal(t, 92.0, order.QuantityOrdered)
	assert.Equal(t, models.SupplierOrderSent, order.Status)
}

func TestAddStockAboveThresholdNoReorder(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	supplier := seedSupplier(t, db)
	item := seedItem(t, db, 5, 100, &supplier.ID)
	seedBatch(t, db, item.ID, 5, day(1))

	_, err := AddStock(db, item.ID, 50, 1, day(2), nil, emp.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.SupplierOrder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddStockKeepsInitialWhenBelowMark(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	item := seedItem(t, db, 40, 100, nil)
	seedBatch(t, db, item.ID, 40, day(1))

	_, err := AddStock(db, item.ID, 10, 1, day(5), nil, emp.ID)
	require.NoError(t, err)

	var got models.InventoryItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 50.0, got.Quantity)
	assert.Equal(t, 100.0, got.InitialQuantity)
	assert.Equal(t, "50", got.Status)
}

func TestAddStockSetsExpiryFromShelfLife(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	item := seedItem(t, db, 10, 10, nil)
	require.NoError(t, db.Model(&item).Update("expiry_days", 7).Error)

	batch, err := AddStock(db, item.ID, 5, 1, day(1), nil, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, batch.ExpiryDate)
	assert.Equal(t, day(8), batch.ExpiryDate.UTC())
}

func TestAddStockRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	emp := seedEmployee(t, db)
	item := seedItem(t, db, 10, 10, nil)

	_, err := AddStock(db, item.ID, 0, 1, day(1), nil, emp.ID)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewBatchNumberFormatAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := NewBatchNumber()
		assert.Regexp(t, `^BATCH-[0-9A-F]{8}$`, n)
		assert.False(t, seen[n], "duplicate batch number %s", n)
		seen[n] = true
	}
}
