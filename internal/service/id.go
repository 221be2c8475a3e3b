package service

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// newRecordID mints a public identifier like "trip_1a2b3c4d5e6f".
func newRecordID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(u[:])[:12])
}
