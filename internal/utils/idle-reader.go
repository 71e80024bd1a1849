package utils

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"
)

var ErrIdleTimeout = errors.New("no data received within timeout")

// IdleReader cancels the request behind r when no bytes arrive for timeout.
// Each read that returns data pushes the deadline back, so a body that keeps
// moving is never cut off.
type IdleReader struct {
	r       io.Reader
	timeout time.Duration
	timer   *time.Timer
	expired atomic.Bool
}

func NewIdleReader(r io.Reader, timeout time.Duration, cancel context.CancelFunc) *IdleReader {
	ir := &IdleReader{r: r, timeout: timeout}
	ir.timer = time.AfterFunc(timeout, func() {
		ir.expired.Store(true)
		cancel()
	})
	return ir
}

func (ir *IdleReader) Read(p []byte) (int, error) {
	n, err := ir.r.Read(p)
	if ir.expired.Load() {
		return n, ErrIdleTimeout
	}
	if n > 0 {
		ir.timer.Reset(ir.timeout)
	}
	return n, err
}

func (ir *IdleReader) Stop() {
	ir.timer.Stop()
}

func (ir *IdleReader) Expired() bool {
	return ir.expired.Load()
}
