package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	in := writeFile(t, "records.jsonl",
		"{\"series\": [\"1\",\"2\",\"3\",\"4\",\"5\"], \"index\": \"1\"}\n{\"series\": [], \"index\": \"0\"}\n")

	var out, logs bytes.Buffer
	if err := run(context.Background(), "", in, &out, &logs); err != nil {
		t.Fatalf("run() unexpected error: %v\nlogs:\n%s", err, logs.String())
	}

	want := "0\t1\t15\n1\t0\t0\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if !strings.Contains(logs.String(), "run complete") {
		t.Errorf("logs missing run summary:\n%s", logs.String())
	}
}

func TestRunTotalsBeyondInt64(t *testing.T) {
	in := writeFile(t, "records.jsonl",
		"{\"series\": [\"9223372036854775807\", \"1\"], \"index\": \"99999999999999999999\"}\n")

	var out, logs bytes.Buffer
	if err := run(context.Background(), "", in, &out, &logs); err != nil {
		t.Fatalf("run() unexpected error: %v\nlogs:\n%s", err, logs.String())
	}

	want := "0\t99999999999999999999\t9223372036854775808\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunRejectedRecords(t *testing.T) {
	in := writeFile(t, "records.json", `[{"series": ["abc"], "index": "1"}, {"series": ["2"], "index": "2"}]`)

	var out, logs bytes.Buffer
	err := run(context.Background(), "", in, &out, &logs)
	if !errors.Is(err, errRejected) {
		t.Fatalf("run() error = %v, want errRejected", err)
	}
	if out.String() != "1\t2\t2\n" {
		t.Errorf("output = %q, want only the valid record", out.String())
	}
	if !strings.Contains(logs.String(), "invalid record") {
		t.Errorf("logs missing invalid record entry:\n%s", logs.String())
	}
}

func TestRunWithConfig(t *testing.T) {
	in := writeFile(t, "records.jsonl", "{\"series\": [\"abc\"], \"index\": \"1\"}\n")
	cfgPath := writeFile(t, "config.yaml", "instance:\n  id: test-agg\npipeline:\n  fail_fast: true\nlog:\n  format: json\n")

	var out, logs bytes.Buffer
	err := run(context.Background(), cfgPath, in, &out, &logs)
	if err == nil {
		t.Fatal("run() returned nil error, want fail-fast parse error")
	}
	if errors.Is(err, errRejected) {
		t.Errorf("run() error = %v, want the parse error itself", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
	if !strings.Contains(logs.String(), `"instance_id":"test-agg"`) {
		t.Errorf("logs not json or missing instance id:\n%s", logs.String())
	}
}

func TestRunBadConfig(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "log:\n  level: loud\n")

	var out, logs bytes.Buffer
	if err := run(context.Background(), cfgPath, "-", &out, &logs); err == nil {
		t.Error("run() with invalid config returned nil error")
	}
}

func TestRunMissingInput(t *testing.T) {
	var out, logs bytes.Buffer
	if err := run(context.Background(), "", filepath.Join(t.TempDir(), "missing.jsonl"), &out, &logs); err == nil {
		t.Error("run() with missing input returned nil error")
	}
}
