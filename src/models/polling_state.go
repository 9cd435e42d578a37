package models

import (
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// PollStatus is the controller's lifecycle phase.
// -----------------------------------------------------------------------------

type PollStatus int

const (
	StatusIdle PollStatus = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s PollStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("PollStatus(%d)", int(s))
}

// MarshalText renders the status by name in JSON payloads.
func (s PollStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *PollStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*s = StatusIdle
	case "loading":
		*s = StatusLoading
	case "ready":
		*s = StatusReady
	case "error":
		*s = StatusError
	default:
		return fmt.Errorf("unknown poll status %q", text)
	}
	return nil
}

// -----------------------------------------------------------------------------
// MPollingState is published by the controller after every transition.
// Values are never modified once published; Snapshot is shared read-only.
// -----------------------------------------------------------------------------

type MPollingState struct {
	Status              PollStatus `json:"status"`
	Error               string     `json:"error,omitempty"`
	Snapshot            *MSnapshot `json:"-"`
	LastAttempt         time.Time  `json:"last_attempt"`
	LastSuccess         time.Time  `json:"last_success"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
}

// HasSnapshot reports whether any fetch has ever succeeded.
func (s MPollingState) HasSnapshot() bool {
	return s.Snapshot != nil
}

// -----------------------------------------------------------------------------
// MFetchAttempt records the outcome of one completed fetch.
// -----------------------------------------------------------------------------

type MFetchAttempt struct {
	Reason     string    `json:"reason"` // start | tick | manual | queued
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
	Outcome    string    `json:"outcome"` // ok | network | parse | empty_data | unknown
	Error      string    `json:"error,omitempty"`
}
