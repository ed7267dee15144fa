// Package testutil provides shared test helpers for herodex packages: a
// test-scoped logger, a controllable clock and hero fixtures.
package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger returns a debug-level logger that writes through tb.Log, so output
// only shows for failing or verbose tests.
func Logger(tb testing.TB) *zap.Logger {
	return zaptest.NewLogger(tb, zaptest.Level(zap.DebugLevel))
}
