package model

// HistoryPhase is the chart region's lifecycle:
// Idle -> Loading -> (Success | Error) -> Idle.
type HistoryPhase string

const (
	HistoryIdle    HistoryPhase = "idle"
	HistoryLoading HistoryPhase = "loading"
	HistorySuccess HistoryPhase = "success"
	HistoryError   HistoryPhase = "error"
)

// HistoryView is what the chart region renders: the current phase plus
// either a live chart configuration or a textual error message.
type HistoryView struct {
	Phase   HistoryPhase `json:"phase"`
	Chart   any          `json:"chart,omitempty"`
	Message string       `json:"message,omitempty"`
}
