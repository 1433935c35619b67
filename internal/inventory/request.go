package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRequestNotFound        = errors.New("inventory request not found")
	ErrRequestAlreadyApproved = errors.New("request already approved")
)

// ApproveRequest performs a FIFO withdrawal on behalf of the requester and
// links the resulting withdrawal log. Withdrawal and request update commit
// together, so a failure on either side leaves the request submitted and
// the stock untouched.
func ApproveRequest(db *gorm.DB, requestID, approverID uint) (*models.InventoryRequest, error) {
	var req models.InventoryRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&req, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status != models.RequestSubmitted {
			return ErrRequestAlreadyApproved
		}

		reason := req.Reason
		if reason == "" {
			reason = fmt.Sprintf("inventory request #%d", req.ID)
		}

		wlog, err := Withdraw(tx, req.ItemID, req.Quantity, FIFO, reason, req.EmployeeID)
		if err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&req).Updates(map[string]interface{}{
			"status":            models.RequestApproved,
			"withdrawal_log_id": wlog.ID,
			"approved_by":       approverID,
			"approved_at":       now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}
