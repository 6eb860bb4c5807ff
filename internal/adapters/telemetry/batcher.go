// Package telemetry provides the OpenTelemetry tracer and the bridge that
// forwards spans to a renderer.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
)

// DefaultLineLimit is the number of buffered bytes after which complete lines are flushed.
const DefaultLineLimit = 4096

// errLineBufferClosed is returned by writes after Close.
var errLineBufferClosed = errors.New("line buffer is closed")

// LineBuffer collects mojo output and hands whole lines to onFlush once
// limit bytes are buffered. Close flushes whatever is left. It is safe for
// concurrent use.
type LineBuffer struct {
	limit   int
	onFlush func([]byte)

	mu     sync.Mutex
	buffer bytes.Buffer
	closed bool
}

// NewLineBuffer returns a LineBuffer. A limit of zero selects DefaultLineLimit.
func NewLineBuffer(limit int, onFlush func([]byte)) *LineBuffer {
	if limit <= 0 {
		limit = DefaultLineLimit
	}
	return &LineBuffer{limit: limit, onFlush: onFlush}
}

// Write buffers p.
func (b *LineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errLineBufferClosed
	}
	n, _ := b.buffer.Write(p)

	if b.buffer.Len() >= b.limit {
		data := b.buffer.Bytes()
		if cut := bytes.LastIndexByte(data, '\n'); cut >= 0 {
			b.emitLocked(data[:cut+1])
			b.buffer.Next(cut + 1)
		}
	}
	return n, nil
}

// Close flushes the remaining bytes. Further writes fail.
func (b *LineBuffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if b.buffer.Len() > 0 {
		b.emitLocked(b.buffer.Bytes())
		b.buffer.Reset()
	}
	return nil
}

// emitLocked hands a copy of data to onFlush; mu must be held.
func (b *LineBuffer) emitLocked(data []byte) {
	if b.onFlush == nil {
		return
	}
	out := make([]byte, len(data))
	copy(out, data)
	b.onFlush(out)
}
