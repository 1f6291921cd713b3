package log

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose logging to be enabled")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected verbose logging to be disabled")
	}
}

func TestDebugfHiddenUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}

	SetVerbose(true)
	Debugf("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("Expected debug message in output, got %q", buf.String())
	}
}

func TestModuleJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetFormat("json")
	defer SetOutput(os.Stderr)
	defer SetFormat("text")

	Module("api").Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["module"] != "api" {
		t.Errorf("Expected module=api, got %v", entry["module"])
	}
	if entry["msg"] != "hello" {
		t.Errorf("Expected msg=hello, got %v", entry["msg"])
	}
}
