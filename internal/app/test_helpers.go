package app

import (
	"bytes"
	"os"
	"strings"
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

// SetupAppTest creates an app instance for system testing. The dump text is
// served through the app's input stream, reports are captured in the
// returned output buffer and debug logs in the log buffer.
func SetupAppTest(t *testing.T, appConfig *Config, dump string) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "json"

	cfg, err := NewConfig(*appConfig)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	testApp, err := NewApp(outBuffer, logBuffer, strings.NewReader(dump), cfg)
	if err != nil {
		t.Fatalf("failed to construct app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("UACSCAN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
