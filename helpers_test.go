// SPDX-License-Identifier: MIT

package invcache_test

import (
	"sync"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/matrix"
)

// Trace messages are part of the observable contract.
const (
	traceHit  = "cache hit"
	traceMiss = "cache miss"
)

// newTestLogger returns a DEBUG-level logger that records every entry.
func newTestLogger() (*log.Logger, *memory.Handler) {
	h := memory.New()

	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

// lastTrace returns the most recent hit/miss message, or "" if none was logged.
func lastTrace(h *memory.Handler) string {
	for i := len(h.Entries) - 1; i >= 0; i-- {
		switch msg := h.Entries[i].Message; msg {
		case traceHit, traceMiss:
			return msg
		}
	}

	return ""
}

// countTrace counts entries with the given message.
func countTrace(h *memory.Handler, msg string) int {
	n := 0
	for _, e := range h.Entries {
		if e.Message == msg {
			n++
		}
	}

	return n
}

// countingInverter wraps matrix.Inverse and records calls and forwarded options.
type countingInverter struct {
	mu    sync.Mutex
	calls int
	opts  []matrix.Option
}

func (c *countingInverter) Invert(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
	c.mu.Lock()
	c.calls++
	c.opts = opts
	c.mu.Unlock()

	return matrix.Inverse(m, opts...)
}

func (c *countingInverter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

// mustDense builds a *matrix.Dense from a literal or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// requireSame asserts exact element equality.
func requireSame(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, matrix.Equal(mustDense(t, want), got), "want %v, got %v", want, got)
}
