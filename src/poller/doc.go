// Package poller implements the controller that keeps the market snapshot fresh.
//
// The controller:
//   - fetches once on Start, then on every tick of a fixed interval (default 5m)
//   - accepts out-of-band RefreshNow requests, coalescing them while a fetch is in flight
//   - never runs two fetches at once, so results apply in completion order
//   - keeps the last good snapshot when a fetch fails (Idle/Loading/Ready/Error)
//   - discards results that arrive after Stop
//   - keeps a short history of completed fetches for diagnostics
package poller

//go:generate mockgen -package=poller -destination=mock_snapshot_source_test.go -source=../interfaces/data_source.go ISnapshotSource
