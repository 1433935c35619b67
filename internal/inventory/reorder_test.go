package inventory

import (
	"testing"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderDecisionBelowThreshold(t *testing.T) {
	toOrder, ok, err := ReorderDecision("5", 5, 100)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 95.0, toOrder)
}

func TestReorderDecisionAtThreshold(t *testing.T) {
	// the trigger fires strictly below the threshold
	_, ok, err := ReorderDecision("10", 10, 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReorderDecisionHealthyStock(t *testing.T) {
	_, ok, err := ReorderDecision("85", 85, 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReorderDecisionNonNumericStatus(t *testing.T) {
	_, ok, err := ReorderDecision("low", 5, 100)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestReorderDecisionContradictoryQuantity(t *testing.T) {
	// quantity at or above the target can follow a just-lowered target;
	// nothing to order, not an error
	_, ok, err := ReorderDecision("5", 100, 100)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = ReorderDecision("5", 120, 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMaybeReorderCreatesSupplierOrder(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db)
	item := seedItem(t, db, 5, 100, &supplier.ID)

	maybeReorder(db, item.ID)

	var orders []models.SupplierOrder
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, item.ID, orders[0].ItemID)
	assert.Equal(t, supplier.ID, orders[0].SupplierID)
	assert.Equal(t, 95.0, orders[0].QuantityOrdered)
	assert.Equal(t, models.SupplierOrderSent, orders[0].Status)
}

func TestMaybeReorderSkipsWithoutSupplier(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, 5, 100, nil)

	maybeReorder(db, item.ID)

	var count int64
	require.NoError(t, db.Model(&models.SupplierOrder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMaybeReorderNoOpOnGarbageStatus(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db)
	item := seedItem(t, db, 5, 100, &supplier.ID)
	require.NoError(t, db.Model(&item).Update("status", "n/a").Error)

	maybeReorder(db, item.ID)

	var count int64
	require.NoError(t, db.Model(&models.SupplierOrder{}).Count(&count).Error)
	assert.Zero(t, count)
}
