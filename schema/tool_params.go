package schema

import (
	"github.com/ollama/ollama/api"
)

// Tool names the reasoning engine is known to emit.
const (
	ToolSearchDocuments   = "search_documents"
	ToolSummarizeDocument = "summarize_document"
	ToolCountOccurrences  = "count_occurrences"
)

// ToolParams is the decoded parameter shape of a reasoning step. Each known
// tool has its own variant; steps from tools this client does not know fall
// back to UnknownParams with the raw arguments preserved.
type ToolParams interface {
	isToolParams()
}

// SearchParams are the parameters of a document search step.
type SearchParams struct {
	Query    string
	Document string
}

// SummarizeParams are the parameters of a summarization step.
type SummarizeParams struct {
	Document     string
	MaxSentences int
}

// CountParams are the parameters of a term-count step.
type CountParams struct {
	Term     string
	Document string
}

// UnknownParams carries the raw arguments of an unrecognized tool.
type UnknownParams struct {
	Tool string
	Args api.ToolCallFunctionArguments
}

func (SearchParams) isToolParams()    {}
func (SummarizeParams) isToolParams() {}
func (CountParams) isToolParams()     {}
func (UnknownParams) isToolParams()   {}

// Params decodes the step's loosely-typed tool_params map into the closed
// set of known parameter shapes.
func (s ReasoningStep) Params() ToolParams {
	switch s.ToolName {
	case ToolSearchDocuments:
		return SearchParams{
			Query:    stringArg(s.ToolParams, "query"),
			Document: stringArg(s.ToolParams, "document"),
		}
	case ToolSummarizeDocument:
		return SummarizeParams{
			Document:     stringArg(s.ToolParams, "document"),
			MaxSentences: intArg(s.ToolParams, "max_sentences"),
		}
	case ToolCountOccurrences:
		return CountParams{
			Term:     stringArg(s.ToolParams, "term"),
			Document: stringArg(s.ToolParams, "document"),
		}
	default:
		return UnknownParams{Tool: s.ToolName, Args: s.ToolParams}
	}
}

func stringArg(args api.ToolCallFunctionArguments, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args api.ToolCallFunctionArguments, key string) int {
	// JSON numbers decode as float64
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
