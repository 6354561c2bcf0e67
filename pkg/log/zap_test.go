package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestJSONOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(zapcore.AddSync(&buf))
	t.Cleanup(func() {
		_ = SetLevel("info")
		SetOutput(zapcore.AddSync(os.Stdout))
	})

	Debug("hidden at info level")
	Info("created", zap.String("id", "42"))

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "created" {
		t.Errorf("msg: got %v, want created", entry["msg"])
	}
	if entry["id"] != "42" {
		t.Errorf("id: got %v, want 42", entry["id"])
	}
	if _, ok := entry["@timestamp"]; !ok {
		t.Error("expected @timestamp field")
	}

	buf.Reset()
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	Debug("visible")
	if buf.Len() == 0 {
		t.Error("expected debug entry after lowering the level")
	}

	if err := SetLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
