package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewRecordID returns a millisecond-timestamp-prefixed id with a random
// suffix, unique across all prior records and roughly sortable by creation.
func NewRecordID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
