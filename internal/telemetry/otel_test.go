package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	for _, tc := range []struct {
		endpoint string
		enabled  bool
	}{
		{"", true},
		{"http://localhost:4318", false},
	} {
		shutdown, err := Setup(context.Background(), "rustkit-test", tc.endpoint, tc.enabled)
		if err != nil {
			t.Fatalf("setup(%q, %v): %v", tc.endpoint, tc.enabled, err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("noop shutdown: %v", err)
		}
	}
}

func TestSetupEnabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), "rustkit-test", "http://127.0.0.1:4318/v1/traces", true)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Nothing was exported, so shutdown only has to stop the batcher.
	_ = shutdown(ctx)
}
