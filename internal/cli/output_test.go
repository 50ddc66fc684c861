package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

// captureStdout runs fn with os.Stdout redirected to a buffer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	w.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestOutputFormatterSuccessJSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := captureStdout(t, func() {
		if err := f.Success(map[string]interface{}{"test": "value"}); err != nil {
			t.Errorf("Success: %v", err)
		}
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result["success"] != true {
		t.Error("expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["test"] != "value" {
		t.Errorf("expected data.test to be 'value', got %v", data["test"])
	}
}

func TestOutputFormatterSuccessQuietExtractsID(t *testing.T) {
	f := &OutputFormatter{Quiet: true}

	out := captureStdout(t, func() {
		if err := f.Success(mockDataWithID{ID: "task-7", Name: "ignored"}); err != nil {
			t.Errorf("Success: %v", err)
		}
	})

	if strings.TrimSpace(out) != "task-7" {
		t.Errorf("quiet output = %q, want just the ID", out)
	}
}

func TestOutputFormatterErrorJSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := captureStdout(t, func() {
		if err := f.ErrorWithSuggestion("TASK_NOT_FOUND", "task x not found", "check the ID"); err != nil {
			t.Errorf("ErrorWithSuggestion: %v", err)
		}
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result["success"] != false {
		t.Error("expected success to be false")
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != "TASK_NOT_FOUND" {
		t.Errorf("error code = %v", errData["code"])
	}
	if errData["suggestion"] != "check the ID" {
		t.Errorf("suggestion = %v", errData["suggestion"])
	}
}
