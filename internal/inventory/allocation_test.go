package inventory

import (
	"testing"
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batch(id uint, remaining float64, purchaseDate time.Time) models.StockBatch {
	return models.StockBatch{
		ID:                id,
		BatchNumber:       "B",
		PurchaseDate:      purchaseDate,
		QuantityReceived:  remaining,
		QuantityRemaining: remaining,
	}
}

func TestPlanWithdrawalFIFO(t *testing.T) {
	batches := []models.StockBatch{
		batch(2, 10, day(2)),
		batch(1, 5, day(1)),
	}

	plan, err := PlanWithdrawal(batches, 8, FIFO)
	require.NoError(t, err)
	require.Len(t, plan, 2)

	assert.Equal(t, uint(1), plan[0].BatchID)
	assert.Equal(t, 5.0, plan[0].Quantity)
	assert.Equal(t, uint(2), plan[1].BatchID)
	assert.Equal(t, 3.0, plan[1].Quantity)
}

func TestPlanWithdrawalLIFO(t *testing.T) {
	batches := []models.StockBatch{
		batch(1, 5, day(1)),
		batch(2, 10, day(2)),
	}

	plan, err := PlanWithdrawal(batches, 12, LIFO)
	require.NoError(t, err)
	require.Len(t, plan, 2)

	assert.Equal(t, uint(2), plan[0].BatchID)
	assert.Equal(t, 10.0, plan[0].Quantity)
	assert.Equal(t, uint(1), plan[1].BatchID)
	assert.Equal(t, 2.0, plan[1].Quantity)
}

func TestPlanWithdrawalSingleBatch(t *testing.T) {
	plan, err := PlanWithdrawal([]models.StockBatch{batch(1, 10, day(1))}, 4, FIFO)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, 4.0, plan[0].Quantity)
}

func TestPlanWithdrawalTieBreakOnID(t *testing.T) {
	// same purchase date: FIFO prefers the lower id, LIFO the higher
	batches := []models.StockBatch{
		batch(7, 5, day(1)),
		batch(3, 5, day(1)),
	}

	plan, err := PlanWithdrawal(batches, 1, FIFO)
	require.NoError(t, err)
	assert.Equal(t, uint(3), plan[0].BatchID)

	plan, err = PlanWithdrawal(batches, 1, LIFO)
	require.NoError(t, err)
	assert.Equal(t, uint(7), plan[0].BatchID)
}

func TestPlanWithdrawalSkipsExhaustedBatches(t *testing.T) {
	batches := []models.StockBatch{
		batch(1, 0, day(1)),
		batch(2, 3, day(2)),
	}

	plan, err := PlanWithdrawal(batches, 3, FIFO)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, uint(2), plan[0].BatchID)
}

func TestPlanWithdrawalInsufficientStock(t *testing.T) {
	batches := []models.StockBatch{
		batch(1, 5, day(1)),
		batch(2, 10, day(2)),
	}

	plan, err := PlanWithdrawal(batches, 16, FIFO)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "requested 16, available 15")
}

func TestPlanWithdrawalRejectsNonPositiveQuantity(t *testing.T) {
	batches := []models.StockBatch{batch(1, 5, day(1))}

	_, err := PlanWithdrawal(batches, 0, FIFO)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = PlanWithdrawal(batches, -3, FIFO)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPlanWithdrawalPlanSumsToRequest(t *testing.T) {
	batches := []models.StockBatch{
		batch(1, 2.5, day(1)),
		batch(2, 4, day(2)),
		batch(3, 8, day(3)),
	}

	plan, err := PlanWithdrawal(batches, 10, FIFO)
	require.NoError(t, err)

	var total float64
	for _, d := range plan {
		total += d.Quantity
	}
	assert.Equal(t, 10.0, total)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, FIFO, s)

	s, err = ParseStrategy("fifo")
	require.NoError(t, err)
	assert.Equal(t, FIFO, s)

	s, err = ParseStrategy("lifo")
	require.NoError(t, err)
	assert.Equal(t, LIFO, s)

	_, err = ParseStrategy("newest")
	assert.Error(t, err)
}
