package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSnapshot(t *testing.T) {
	snap, err := ComputeSnapshot(85, 100)
	require.NoError(t, err)
	assert.Equal(t, "85", snap.Status)
	assert.Equal(t, 85.0, snap.Quantity)
	assert.Equal(t, 100.0, snap.InitialQuantity)
}

func TestComputeSnapshotRoundsToNearestPercent(t *testing.T) {
	snap, err := ComputeSnapshot(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "33", snap.Status)

	snap, err = ComputeSnapshot(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "67", snap.Status)
}

func TestComputeSnapshotEmptyAndFull(t *testing.T) {
	snap, err := ComputeSnapshot(0, 50)
	require.NoError(t, err)
	assert.Equal(t, "0", snap.Status)

	snap, err = ComputeSnapshot(50, 50)
	require.NoError(t, err)
	assert.Equal(t, "100", snap.Status)
}

func TestComputeSnapshotRejectsNonPositiveInitial(t *testing.T) {
	_, err := ComputeSnapshot(5, 0)
	assert.Error(t, err)

	_, err = ComputeSnapshot(5, -1)
	assert.Error(t, err)
}

func TestRatchetInitial(t *testing.T) {
	// high-water mark only moves up
	assert.Equal(t, 120.0, RatchetInitial(100, 120))
	assert.Equal(t, 100.0, RatchetInitial(100, 80))
	assert.Equal(t, 100.0, RatchetInitial(100, 100))
}
