// Package leaktest checks that code under test leaves no goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// DefaultSettleTimeout is how long Check waits for goroutines to exit
	DefaultSettleTimeout = 2 * time.Second
	pollInterval         = 10 * time.Millisecond
	stackDumpBytes       = 1 << 16
)

// GoroutineChecker compares the goroutine count against a baseline taken
// when it was created.
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check fails the test unless the goroutine count falls back to at most
// baseline+tolerance within DefaultSettleTimeout.
func (c *GoroutineChecker) Check(tolerance int) {
	c.t.Helper()
	c.CheckWithin(tolerance, DefaultSettleTimeout)
}

// CheckWithin is Check with an explicit settle timeout. The count is polled,
// so a clean run returns as soon as stragglers have exited.
func (c *GoroutineChecker) CheckWithin(tolerance int, timeout time.Duration) {
	c.t.Helper()

	deadline := time.Now().Add(timeout)
	current := runtime.NumGoroutine()
	for current-c.baseline > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.Gosched()
		current = runtime.NumGoroutine()
	}

	if leaked := current - c.baseline; leaked > tolerance {
		c.t.Errorf("goroutine leak: baseline=%d current=%d leaked=%d tolerance=%d\n%s",
			c.baseline, current, leaked, tolerance, stacks())
	}
}

// Leaked reports how many goroutines exist beyond the baseline right now
func (c *GoroutineChecker) Leaked() int {
	return runtime.NumGoroutine() - c.baseline
}

// Run executes fn and fails t if any goroutine it started is still alive
// after DefaultSettleTimeout.
func Run(t testing.TB, fn func()) {
	t.Helper()
	c := NewGoroutineChecker(t)
	fn()
	c.Check(0)
}

func stacks() string {
	buf := make([]byte, stackDumpBytes)
	return string(buf[:runtime.Stack(buf, true)])
}
