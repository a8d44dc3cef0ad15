package web

// Message types
const (
	// Client to server
	MessageTypeKey  = "key"  // one key press, by key name
	MessageTypeSync = "sync" // ask for the current display

	// Server to client
	MessageTypeDisplay = "display"
	MessageTypeError   = "error"
)

// WebMessage represents a message sent over WebSocket
type WebMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`

	// For display updates
	Text     string `json:"text"`
	State    string `json:"state,omitempty"`
	Accepted *bool  `json:"accepted,omitempty"` // pointer to distinguish a rejected key from a sync

	// Session is the id the connection is bound to, set on the first display
	// message. It differs from the requested id when that one was invalid.
	Session string `json:"session,omitempty"`

	Error string `json:"error,omitempty"`
}

// SolveRequest is the body of POST /api/solve
type SolveRequest struct {
	Expression string `json:"expression"`
}

// SolveResponse is the reply of POST /api/solve. OK is false when the
// expression cannot be evaluated; Error names a display error state.
type SolveResponse struct {
	OK    bool   `json:"ok"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// HealthResponse is the reply of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Clients int    `json:"clients"`
}
