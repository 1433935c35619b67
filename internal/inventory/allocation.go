package inventory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"
)

type AllocationStrategy string

const (
	FIFO AllocationStrategy = "fifo" // oldest purchase date first
	LIFO AllocationStrategy = "lifo" // newest purchase date first
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// BatchDeduction is one step of an allocation plan: take Quantity from the
// batch with BatchID.
type BatchDeduction struct {
	BatchID     uint
	BatchNumber string
	Quantity    float64
}

// ParseStrategy maps the request value to a strategy; empty defaults to FIFO.
func ParseStrategy(s string) (AllocationStrategy, error) {
	switch AllocationStrategy(s) {
	case "", FIFO:
		return FIFO, nil
	case LIFO:
		return LIFO, nil
	default:
		return "", fmt.Errorf("unknown allocation strategy %q", s)
	}
}

// PlanWithdrawal computes the full allocation plan for a withdrawal without
// mutating anything. Batches are ordered by purchase date (ascending for
// FIFO, descending for LIFO, batch id as tie-break) and deducted greedily.
// If the batches cannot cover the requested quantity the plan fails as a
// whole with ErrInsufficientStock.
func PlanWithdrawal(batches []models.StockBatch, quantity float64, strategy AllocationStrategy) ([]BatchDeduction, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	ordered := make([]models.StockBatch, 0, len(batches))
	for _, b := range batches {
		if b.QuantityRemaining > 0 {
			ordered = append(ordered, b)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].PurchaseDate.Equal(ordered[j].PurchaseDate) {
			if strategy == LIFO {
				return ordered[i].ID > ordered[j].ID
			}
			return ordered[i].ID < ordered[j].ID
		}
		if strategy == LIFO {
			return ordered[i].PurchaseDate.After(ordered[j].PurchaseDate)
		}
		return ordered[i].PurchaseDate.Before(ordered[j].PurchaseDate)
	})

	var plan []BatchDeduction
	stillNeeded := quantity
	for _, b := range ordered {
		if stillNeeded <= 0 {
			break
		}
		take := b.QuantityRemaining
		if take > stillNeeded {
			take = stillNeeded
		}
		plan = append(plan, BatchDeduction{
			BatchID:     b.ID,
			BatchNumber: b.BatchNumber,
			Quantity:    take,
		})
		stillNeeded -= take
	}

	if stillNeeded > 0 {
		return nil, fmt.Errorf("%w: requested %g, available %g", ErrInsufficientStock, quantity, quantity-stillNeeded)
	}

	return plan, nil
}
