package domain

import (
	"context"
)

// DatasetLoader defines the interface for input-boundary adapters that
// materialize a transaction snapshot from an external representation
type DatasetLoader interface {
	// Load reads, validates and materializes a full dataset snapshot
	// Returns a *MalformedRecordError if any row fails validation
	Load(ctx context.Context) (*Store, error)
}
