package utils

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenerateUUID generates a random (v4) UUID string
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateFileID returns a time-ordered identifier for generated files.
// ULIDs are lexicographically sortable and unique across goroutines.
func GenerateFileID() string {
	return ulid.Make().String()
}
