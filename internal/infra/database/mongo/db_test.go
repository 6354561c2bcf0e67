package mongo

import "testing"

func TestIsParseError(t *testing.T) {
	tests := []struct {
		failure string
		want    bool
	}{
		{"(FailedToParse) unknown operator: $sett", true},
		{"(InvalidBSON) invalid bson type", true},
		{"(NotWritablePrimary) not primary", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isParseError(tt.failure); got != tt.want {
			t.Errorf("isParseError(%q) = %v, want %v", tt.failure, got, tt.want)
		}
	}
}

func TestLifecycleMonitorTransitions(t *testing.T) {
	m := &lifecycleMonitor{}
	server := m.serverMonitor()

	server.ServerHeartbeatSucceeded(succeeded())
	if !m.everConnected.Load() || !m.healthy.Load() {
		t.Fatal("first heartbeat must mark the store connected")
	}

	server.ServerHeartbeatFailed(failed())
	server.ServerHeartbeatFailed(failed())
	if m.healthy.Load() {
		t.Error("failed heartbeat must mark the store unhealthy")
	}
	if got := m.failures.Load(); got != 2 {
		t.Errorf("failures: got %d, want 2", got)
	}

	server.ServerHeartbeatSucceeded(succeeded())
	if !m.healthy.Load() || m.failures.Load() != 0 {
		t.Error("successful heartbeat must reset the failure count")
	}
}
