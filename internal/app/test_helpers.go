package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	hclloader "github.com/specialistvlad/droidspec/internal/hcl"
	"github.com/specialistvlad/droidspec/internal/plugin"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. It returns the
// app, its rendered output and its log output.
func SetupAppTest(t *testing.T, cfg *Config, modules ...plugin.Module) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, cfg, hclloader.NewLoader(), modules...)

	t.Cleanup(func() {
		if os.Getenv("DROIDSPEC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
		_ = testApp.Close()
	})

	return testApp, outBuffer, logBuffer
}
