package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode entry %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestTraceOnlyWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	SetTraceEnabled(false)
	Trace("ignored", nil)
	SetTraceEnabled(true)
	Trace("catalog.replace", map[string]interface{}{"count": 2})
	Error(errors.New("boom"))
	Error(nil)
	Info("metrics server listening", zap.String("addr", ":9090"))
	Sync()

	entries := readEntries(t, path)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(entries), entries)
	}
	if entries[0]["event"] != "catalog.replace" {
		t.Fatalf("unexpected trace entry %v", entries[0])
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok || payload["count"] != float64(2) {
		t.Fatalf("expected payload count 2, got %v", entries[0]["payload"])
	}
	if entries[1]["event"] != "boom" || entries[1]["level"] != "error" {
		t.Fatalf("unexpected error entry %v", entries[1])
	}
	if entries[2]["addr"] != ":9090" {
		t.Fatalf("expected structured field on info entry, got %v", entries[2])
	}
	if _, ok := entries[0]["time"]; !ok {
		t.Fatalf("expected time key, got %v", entries[0])
	}
}

func TestConfigureReopensAtNewPath(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	t.Cleanup(func() { Configure("") })

	Configure(first)
	Info("one")
	Configure(second)
	Info("two")
	Sync()

	if got := readEntries(t, first); len(got) != 1 || got[0]["event"] != "one" {
		t.Fatalf("unexpected first log %v", got)
	}
	if got := readEntries(t, second); len(got) != 1 || got[0]["event"] != "two" {
		t.Fatalf("unexpected second log %v", got)
	}
}
