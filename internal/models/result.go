package models

// QueryResult is the outcome of a single ask.
// Answer is nil when no confident match was found. Suggestions is a
// deduplicated, score-ordered list of candidate questions the asker
// might have meant (may be empty).
type QueryResult struct {
	Answer      *string  `json:"answer"`
	Suggestions []string `json:"suggestions"`
	Outcome     Outcome  `json:"outcome"`
}

// AskRequest is the body of an ask call over HTTP.
type AskRequest struct {
	Question string `json:"question"`
}

// ReloadResponse reports the snapshot activated by a reload.
type ReloadResponse struct {
	SnapshotID string `json:"snapshot_id"`
	Entries    int    `json:"entries"`
}

// StatusResponse is the shape of GET /api/v1/status.
type StatusResponse struct {
	Entries    int                    `json:"entries"`
	SnapshotID string                 `json:"snapshot_id"`
	Config     map[string]interface{} `json:"config,omitempty"`
}
