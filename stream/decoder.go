package stream

import (
	"encoding/json"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/docreason/client/schema"
	"go.uber.org/zap"
)

// framePrefix marks a logical record line. Lines without it are ignored.
const framePrefix = "data: "

// Decoder turns raw transport chunks into stream events. Chunks may split
// lines at arbitrary byte boundaries; the decoder buffers the trailing
// partial line between Feed calls. Decoder is not safe for concurrent use;
// feed chunks strictly in arrival order.
type Decoder struct {
	rest string
	done bool
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends one transport chunk and returns the events completed by it,
// in order. Once a terminal event has been returned, further chunks are
// discarded.
func (d *Decoder) Feed(chunk []byte) []Event {
	if d.done || len(chunk) == 0 {
		return nil
	}

	lines := strings.Split(d.rest+string(chunk), "\n")
	d.rest = lines[len(lines)-1]

	var events []Event
	for _, line := range lines[:len(lines)-1] {
		ev := d.decodeLine(line)
		if ev == nil {
			continue
		}
		events = append(events, ev)
		if IsTerminal(ev) {
			d.done = true
			break
		}
	}
	return events
}

// Close marks the transport as closed and returns the remaining events. If
// no terminal frame was observed, the last of them is an implicit Complete,
// so every stream terminates with exactly one terminal event.
func (d *Decoder) Close() []Event {
	if d.done {
		return nil
	}
	d.done = true

	// The transport is gone, so a buffered trailing line is complete even
	// without its newline.
	rest := d.rest
	d.rest = ""
	if ev := d.decodeLine(rest); ev != nil {
		if IsTerminal(ev) {
			return []Event{ev}
		}
		return []Event{ev, Complete{}}
	}
	return []Event{Complete{}}
}

// Done reports whether a terminal event has been emitted.
func (d *Decoder) Done() bool {
	return d.done
}

// decodeLine parses one complete line into an event. Malformed lines and
// unrecognized frame types are decode warnings: logged and skipped, never
// fatal to the stream.
func (d *Decoder) decodeLine(line string) Event {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if !strings.HasPrefix(line, framePrefix) {
		logger.Info("Skipping stream line without data prefix", zap.String("line", truncateForLog(line)))
		return nil
	}

	var frame schema.StreamFrame
	if err := json.Unmarshal([]byte(strings.TrimPrefix(line, framePrefix)), &frame); err != nil {
		logger.Info("Skipping malformed stream frame", zap.Error(err))
		return nil
	}

	switch frame.Type {
	case schema.FrameReasoningStep, schema.FrameStatus:
		return Progress{Frame: frame}
	case schema.FrameFinalAnswer:
		return FinalAnswer{Content: frame.Content, ReasoningLog: frame.ReasoningLog}
	case schema.FrameError:
		return StreamError{Message: frame.Message}
	case schema.FrameComplete:
		return Complete{}
	default:
		logger.Info("Skipping stream frame with unknown type", zap.String("type", frame.Type))
		return nil
	}
}

func truncateForLog(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
