package inventory

import (
	"testing"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRequest(t *testing.T, db *gorm.DB, itemID, employeeID uint, quantity float64) models.InventoryRequest {
	t.Helper()
	r := models.InventoryRequest{
		ItemID:     itemID,
		EmployeeID: employeeID,
		Quantity:   quantity,
		Status:     models.RequestSubmitted,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func TestApproveRequestWithdrawsAndLinks(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db)
	approver := seedEmployee(t, db)
	item := seedItem(t, db, 20, 20, nil)
	batch := seedBatch(t, db, item.ID, 20, day(1))
	req := seedRequest(t, db, item.ID, requester.ID, 8)

	got, err := ApproveRequest(db, req.ID, approver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, got.Status)

	var reloaded models.InventoryRequest
	require.NoError(t, db.First(&reloaded, req.ID).Error)
	assert.Equal(t, models.RequestApproved, reloaded.Status)
	require.NotNil(t, reloaded.WithdrawalLogID)
	require.NotNil(t, reloaded.ApprovedBy)
	assert.Equal(t, approver.ID, *reloaded.ApprovedBy)
	assert.NotNil(t, reloaded.ApprovedAt)

	// the linked log carries the requester, not the approver
	var wlog models.WithdrawalLog
	require.NoError(t, db.First(&wlog, *reloaded.WithdrawalLogID).Error)
	assert.Equal(t, requester.ID, wlog.EmployeeID)
	assert.Equal(t, 8.0, wlog.Quantity)

	var gotBatch models.StockBatch
	require.NoError(t, db.First(&gotBatch, batch.ID).Error)
	assert.Equal(t, 12.0, gotBatch.QuantityRemaining)
}

func TestApproveRequestInsufficientStockLeavesSubmitted(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db)
	approver := seedEmployee(t, db)
	item := seedItem(t, db, 5, 5, nil)
	batch := seedBatch(t, db, item.ID, 5, day(1))
	req := seedRequest(t, db, item.ID, requester.ID, 9)

	_, err := ApproveRequest(db, req.ID, approver.ID)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var reloaded models.InventoryRequest
	require.NoError(t, db.First(&reloaded, req.ID).Error)
	assert.Equal(t, models.RequestSubmitted, reloaded.Status)
	assert.Nil(t, reloaded.WithdrawalLogID)

	var gotBatch models.StockBatch
	require.NoError(t, db.First(&gotBatch, batch.ID).Error)
	assert.Equal(t, 5.0, gotBatch.QuantityRemaining)

	var logCount int64
	require.NoError(t, db.Model(&models.WithdrawalLog{}).Count(&logCount).Error)
	assert.Zero(t, logCount)
}

func TestApproveRequestTwiceDoesNotDoubleWithdraw(t *testing.T) {
	db := newTestDB(t)
	requester := seedEmployee(t, db)
	approver := seedEmployee(t, db)
	item := seedItem(t, db, 20, 20, nil)
	batch := seedBatch(t, db, item.ID, 20, day(1))
	req := seedRequest(t, db, item.ID, requester.ID, 8)

	_, err := ApproveRequest(db, req.ID, approver.ID)
	require.NoError(t, err)

	_, err = ApproveRequest(db, req.ID, approver.ID)
	assert.ErrorIs(t, err, ErrRequestAlreadyApproved)

	var gotBatch models.StockBatch
	require.NoError(t, db.First(&gotBatch, batch.ID).Error)
	assert.Equal(t, 12.0, gotBatch.QuantityRemaining)

	var logCount int64
	require.NoError(t, db.Model(&models.WithdrawalLog{}).Count(&logCount).Error)
	assert.Equal(t, int64(1), logCount)
}

func TestApproveRequestUnknown(t *testing.T) {
	db := newTestDB(t)
	approver := seedEmployee(t, db)

	_, err := ApproveRequest(db, 999, approver.ID)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
