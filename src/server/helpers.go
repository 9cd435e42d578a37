package server

import (
	"market-viewer/src/filter"
	"market-viewer/src/models"
)

// -----------------------------------------------------------------------------

// instruments filters the state's snapshot and renders the matches. An
// unknown category yields an empty list, as does a state with no snapshot.
func (s *FastAPIServer) instruments(st models.MPollingState, name, query string) (models.Category, []models.MInstrumentView) {
	category, ok := models.ParseCategory(name)
	if !ok {
		return models.Category(name), []models.MInstrumentView{}
	}
	return category, s.Formatter.PresentAll(filter.Filter(st.Snapshot, category, query))
}

// -----------------------------------------------------------------------------

// healthStatus is "ok" unless the last fetch failed.
func healthStatus(st models.MPollingState) string {
	if st.Status == models.StatusError {
		return "degraded"
	}
	return "ok"
}

// -----------------------------------------------------------------------------

func stateMessage(st models.MPollingState) models.MServerMessage {
	summary := models.Summarize(st)
	return models.MServerMessage{Type: "state", State: &summary}
}
