package inventory

import (
	"strings"

	"github.com/google/uuid"
)

// NewBatchNumber mints a unique batch identifier, e.g. "BATCH-9F2C41A7".
// UUID-derived, so no retry-until-unique loop is needed.
func NewBatchNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BATCH-" + strings.ToUpper(raw[:8])
}
