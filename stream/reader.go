package stream

import (
	"context"
	"errors"
	"io"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// Events reads transport chunks from r and delivers decoded events on the
// returned channel. Reading stops after the terminal event, on EOF, or when
// ctx is cancelled; the channel is closed afterwards. Closing r is the
// caller's responsibility.
//
// A cancelled context is the only way the channel closes without a terminal
// event: EOF yields an implicit Complete and a read failure yields a
// StreamError.
func Events(ctx context.Context, r io.Reader) <-chan Event {
	out := make(chan Event, 8)

	go func() {
		defer close(out)

		dec := NewDecoder()
		buf := make([]byte, 4096)

		emit := func(events []Event) bool {
			for _, ev := range events {
				if ctx.Err() != nil {
					return false
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return false
				}
			}
			return true
		}

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			n, err := r.Read(buf)
			if n > 0 {
				if !emit(dec.Feed(buf[:n])) {
					return
				}
				if dec.Done() {
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					emit(dec.Close())
				} else if !dec.Done() {
					logger.Error("Stream read failed", zap.Error(err))
					emit([]Event{StreamError{Message: err.Error()}})
				}
				return
			}
		}
	}()

	return out
}
