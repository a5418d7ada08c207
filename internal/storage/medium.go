// Package storage defines the key-value medium the persistence adapter
// writes through. Implementations live in the subpackages.
package storage

//go:generate mockgen -destination=mock/mock_medium.go -package=storagemock github.com/KirkDiggler/combat-tracker/internal/storage Medium

import "context"

// Medium is a string key-value store. Any method may fail; a failure to
// reach the backing store should be reported with an Unavailable error and a
// rejected write because of size limits with ResourceExhausted.
type Medium interface {
	// Get returns the value stored at key. found is false when the key has
	// never been written or was deleted.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value at key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
