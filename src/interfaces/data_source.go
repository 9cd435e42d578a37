package interfaces

import (
	"context"

	"market-viewer/src/models"
)

// -----------------------------------------------------------------------------
// ISnapshotSource retrieves one complete market snapshot per call.
// -----------------------------------------------------------------------------

type ISnapshotSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// Fetch performs a single request. Failures are reported as
	// helpers.NetworkError, helpers.ParseError or helpers.EmptyDataError.
	Fetch(ctx context.Context) (*models.MSnapshot, error)
}
