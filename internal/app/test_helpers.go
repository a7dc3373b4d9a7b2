package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
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

// WriteInput writes a map file into a fresh temp dir and returns its path.
func WriteInput(t *testing.T, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(p, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
	return p
}

// SetupAppTest creates a new app instance for testing. Logs are captured at
// debug level and dumped when TOBOGGAN_TEST_LOGS=true.
func SetupAppTest(t *testing.T, appConfig *Config) (*App, *bytes.Buffer, *SafeBuffer, error) {
	t.Helper()

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp, err := NewApp(out, logBuffer, appConfig)

	t.Cleanup(func() {
		if os.Getenv("TOBOGGAN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer, err
}
