package stream

import (
	"github.com/docreason/client/schema"
)

// Event is one decoded stream event. A stream yields zero or more Progress
// events followed by exactly one terminal event: FinalAnswer, StreamError or
// Complete.
type Event interface {
	isStreamEvent()
}

// Progress is a non-terminal reasoning_step or status frame.
type Progress struct {
	Frame schema.StreamFrame
}

// FinalAnswer is the terminal answer frame carrying the full response.
type FinalAnswer struct {
	Content      string
	ReasoningLog []schema.ReasoningStep
}

// StreamError is a terminal failure, either an explicit error frame or a
// transport-level read failure.
type StreamError struct {
	Message string
}

// Complete is the terminal frame of a stream that ends without an answer,
// or the implicit completion synthesized when the transport closes without
// any terminal frame.
type Complete struct{}

func (Progress) isStreamEvent()    {}
func (FinalAnswer) isStreamEvent() {}
func (StreamError) isStreamEvent() {}
func (Complete) isStreamEvent()    {}

// IsTerminal reports whether ev ends the stream.
func IsTerminal(ev Event) bool {
	switch ev.(type) {
	case FinalAnswer, StreamError, Complete:
		return true
	default:
		return false
	}
}
