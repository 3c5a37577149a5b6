package schema

import (
	"github.com/ollama/ollama/api"
)

// Frame type values carried in the "type" field of a stream frame.
const (
	FrameReasoningStep = "reasoning_step"
	FrameStatus        = "status"
	FrameFinalAnswer   = "final_answer"
	FrameError         = "error"
	FrameComplete      = "complete"
)

// Status values used by single-shot and upload responses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StreamFrame is the JSON envelope of one `data: <json>` line in a
// streamed response. Only the fields relevant to the frame's type are
// populated by the server.
type StreamFrame struct {
	Type         string          `json:"type"`
	Message      string          `json:"message,omitempty"`
	ToolName     string          `json:"tool_name,omitempty"`
	Content      string          `json:"content,omitempty"`
	ReasoningLog []ReasoningStep `json:"reasoning_log,omitempty"`
}

// ReasoningStep is one tool execution recorded by the reasoning engine.
// Immutable once attached to a message.
type ReasoningStep struct {
	ToolName        string                        `json:"tool_name"`
	ToolParams      api.ToolCallFunctionArguments `json:"tool_params,omitempty"`
	ToolOutput      string                        `json:"tool_output,omitempty"`
	ExecutionTimeMs int64                         `json:"execution_time_ms,omitempty"`
	Status          string                        `json:"status,omitempty"`
}

// QueryRequest is the outgoing chat request body. ActiveDocument is the
// legacy single-value field; servers that predate multi-document scoping
// read it instead of ActiveDocuments, so both are populated.
type QueryRequest struct {
	Query           string   `json:"query"`
	SessionID       string   `json:"session_id"`
	ActiveDocument  string   `json:"active_document,omitempty"`
	ActiveDocuments []string `json:"active_documents,omitempty"`
}

// QueryResponse is the full body of a single-shot (non-streamed) chat
// response.
type QueryResponse struct {
	Status           string          `json:"status"`
	FinalAnswer      string          `json:"final_answer"`
	ReasoningLog     []ReasoningStep `json:"reasoning_log"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
	SessionID        string          `json:"session_id"`
	ErrorMessage     string          `json:"error_message,omitempty"`
}

// UploadResponse is the result of a document upload. Filename is the
// server-assigned internal name that later requests reference.
type UploadResponse struct {
	Status           string `json:"status"`
	Filename         string `json:"filename"`
	ChunksCreated    int    `json:"chunks_created"`
	FileSize         int64  `json:"file_size"`
	FileType         string `json:"file_type"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
	ErrorMessage     string `json:"error_message,omitempty"`
}

// DocumentInfo is one entry of a document listing response.
type DocumentInfo struct {
	Filename    string `json:"filename"`
	DisplayName string `json:"display_name,omitempty"`
	FileSize    int64  `json:"file_size"`
	FileType    string `json:"file_type"`
	ChunkCount  int    `json:"chunk_count"`
}

// DocumentListResponse is the body of a document listing response.
type DocumentListResponse struct {
	Documents []DocumentInfo `json:"documents"`
}

// RemoveResponse is the body of a document removal response.
type RemoveResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}
