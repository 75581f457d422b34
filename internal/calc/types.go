package calc

import (
	"github.com/Turab-IE/Calcu-App/internal/engine"
	"github.com/Turab-IE/Calcu-App/internal/history"
)

// CalculateRequest is the JSON body for POST /calculate. Y and Base are
// pointers because most operations do not take them; Precision is a pointer
// so an absent field falls back to the configured default rather than 0.
type CalculateRequest struct {
	Category  string   `json:"category"`
	Operation string   `json:"operation"`
	X         float64  `json:"x"`
	Y         *float64 `json:"y"`
	Base      *float64 `json:"base"`
	AngleMode string   `json:"angle_mode"`
	Precision *int     `json:"precision"`
}

// CalculateResponse is the JSON response for a successful evaluation.
// Result carries the numeric value (exact integer for factorial), Formatted
// the fixed-point rendering at the requested precision.
type CalculateResponse struct {
	Category  string        `json:"category"`
	Operation string        `json:"operation"`
	Result    engine.Number `json:"result"`
	Formatted string        `json:"formatted"`
	AngleMode string        `json:"angle_mode"`
	Precision int           `json:"precision"`
	SessionID string        `json:"session_id"`
}

// FailureResponse is the JSON response for a domain failure (HTTP 422).
// The attempt is recorded in the session history before this is written.
type FailureResponse struct {
	Error     string `json:"error"`
	SessionID string `json:"session_id"`
}

// HistoryEntry is the rendered form of one audit record.
type HistoryEntry struct {
	Time      string         `json:"time"`
	Operation string         `json:"operation"`
	Inputs    history.Inputs `json:"inputs"`
	Result    *engine.Number `json:"result"`
	Error     string         `json:"error,omitempty"`
}

// HistoryResponse is the JSON response for GET /history, newest first.
type HistoryResponse struct {
	SessionID string         `json:"session_id"`
	Count     int            `json:"count"`
	Entries   []HistoryEntry `json:"entries"`
}

// ClearResponse is the JSON response for DELETE /history.
type ClearResponse struct {
	SessionID string `json:"session_id"`
	Cleared   int    `json:"cleared"`
}

// LastResultResponse is the JSON response for GET /history/last. Result is
// the generic string conversion of the value, suitable for pasting back in.
type LastResultResponse struct {
	Result    string `json:"result"`
	SessionID string `json:"session_id"`
}

// OperationInfo describes one operation in the catalog: its name, the
// operand slots it requires, and whether it consults the angle mode.
type OperationInfo struct {
	Name       string   `json:"name"`
	Operands   []string `json:"operands"`
	AngleAware bool     `json:"angle_aware"`
}

// CategoryInfo groups a category's operations in presentation order.
type CategoryInfo struct {
	Category   string          `json:"category"`
	Operations []OperationInfo `json:"operations"`
}

// OperationsResponse is the JSON response for GET /operations. It feeds the
// caller's category and operation pickers.
type OperationsResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

// Constant is one quick constant the caller can offer for pasting.
type Constant struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Value  float64 `json:"value"`
}

// ConstantsResponse is the JSON response for GET /constants.
type ConstantsResponse struct {
	Constants []Constant `json:"constants"`
}
