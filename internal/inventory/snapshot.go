package inventory

import (
	"fmt"
	"math"
	"strconv"
)

// StockSnapshot bundles the three mutually dependent item fields (quantity,
// initial quantity, percent-remaining status) into one value recomputed by a
// single pure function. It is persisted in the same transaction as the batch
// mutation it was derived from.
type StockSnapshot struct {
	Quantity        float64
	InitialQuantity float64
	Status          string
}

// ComputeSnapshot derives the status percentage from quantity and the
// initial-quantity high-water mark. An initial quantity of zero is a broken
// precondition, not a case to paper over with a default.
func ComputeSnapshot(quantity, initialQuantity float64) (StockSnapshot, error) {
	if initialQuantity <= 0 {
		return StockSnapshot{}, fmt.Errorf("initial quantity must be positive, got %g", initialQuantity)
	}

	pct := int(math.Round(quantity / initialQuantity * 100))
	return StockSnapshot{
		Quantity:        quantity,
		InitialQuantity: initialQuantity,
		Status:          strconv.Itoa(pct),
	}, nil
}

// RatchetInitial returns the new initial quantity after a stock addition.
// The high-water mark only ever increases.
func RatchetInitial(initial, newQuantity float64) float64 {
	if newQuantity > initial {
		return newQuantity
	}
	return initial
}
