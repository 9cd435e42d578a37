package interfaces

import "market-viewer/src/models"

// -----------------------------------------------------------------------------
// IStateProvider is the read-only surface the controller offers to consumers
// (REST, websocket, gRPC).
// -----------------------------------------------------------------------------

type IStateProvider interface {

	// State returns the most recently published polling state.
	State() models.MPollingState

	// -----------------------------------------------------------------------------

	// RefreshNow requests an out-of-band fetch.
	RefreshNow() error

	// -----------------------------------------------------------------------------

	// Subscribe registers fn to receive every published state.
	Subscribe(fn func(models.MPollingState))

	// -----------------------------------------------------------------------------

	// Attempts returns recent completed fetches, oldest first.
	Attempts() []models.MFetchAttempt
}
