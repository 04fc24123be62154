package config

import (
	"testing"

	"go.uber.org/goleak"
)

// Watcher goroutines must be gone once every test has closed its watcher.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
