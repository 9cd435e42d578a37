package models

import "time"

// -----------------------------------------------------------------------------
// MStateSummary is the client-facing view of a polling state.
// -----------------------------------------------------------------------------

type MStateSummary struct {
	Status              PollStatus       `json:"status"`
	Error               string           `json:"error,omitempty"`
	CapturedAt          time.Time        `json:"captured_at,omitzero"`
	SourceAsOf          string           `json:"source_as_of,omitempty"`
	Counts              map[Category]int `json:"counts"`
	LastAttempt         time.Time        `json:"last_attempt,omitzero"`
	LastSuccess         time.Time        `json:"last_success,omitzero"`
	ConsecutiveFailures int              `json:"consecutive_failures"`
}

// Summarize flattens a polling state for clients. An error state still
// reports the counts of the snapshot it kept.
func Summarize(st MPollingState) MStateSummary {
	out := MStateSummary{
		Status:              st.Status,
		Error:               st.Error,
		Counts:              st.Snapshot.Counts(),
		LastAttempt:         st.LastAttempt,
		LastSuccess:         st.LastSuccess,
		ConsecutiveFailures: st.ConsecutiveFailures,
	}
	if st.Snapshot != nil {
		out.CapturedAt = st.Snapshot.CapturedAt
		out.SourceAsOf = st.Snapshot.SourceAsOf()
	}
	return out
}

// -----------------------------------------------------------------------------
// MInstrumentView is one instrument rendered for display.
// -----------------------------------------------------------------------------

type MInstrumentView struct {
	Category         Category `json:"category"`
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Flag             string   `json:"flag,omitempty"`
	Unit             string   `json:"unit"`
	Price            float64  `json:"price"`
	PriceText        string   `json:"price_text"`
	ChangeValue      float64  `json:"change_value"`
	ChangeText       string   `json:"change_text"`
	ChangeDirection  string   `json:"change_direction"`
	ChangePercent    float64  `json:"change_percent"`
	PercentText      string   `json:"percent_text"`
	PercentDirection string   `json:"percent_direction"`
	MarketCap        float64  `json:"market_cap,omitempty"`
	MarketCapText    string   `json:"market_cap_text,omitempty"`
	Date             string   `json:"date,omitempty"`
	Time             string   `json:"time,omitempty"`
}

// -----------------------------------------------------------------------------
// Websocket messages
// -----------------------------------------------------------------------------

// MClientCommand is sent by websocket clients.
type MClientCommand struct {
	Command  string `json:"command"` // "refresh" | "filter"
	Category string `json:"category,omitempty"`
	Query    string `json:"q,omitempty"`
}

// MServerMessage is pushed to websocket clients.
type MServerMessage struct {
	Type        string            `json:"type"` // "state" | "instruments" | "error"
	State       *MStateSummary    `json:"state,omitempty"`
	Category    Category          `json:"category,omitempty"`
	Query       string            `json:"q,omitempty"`
	Instruments []MInstrumentView `json:"instruments,omitempty"`
	Error       string            `json:"error,omitempty"`
}
