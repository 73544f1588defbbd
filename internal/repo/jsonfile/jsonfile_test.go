package jsonfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hamed0406/apiprobe/internal/domain"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screenshots", "response_times.json")
	status := 200
	msg := "ok"
	want := []domain.ProbeResult{
		{Name: "Auth Login", Method: "POST", Path: "/api/v1/auth/login", StatusCode: &status, ElapsedMS: 10.5, Message: &msg},
		{Name: "User Detail", Method: "GET", Path: "/api/v1/users/1", ElapsedMS: 3, Note: "Fallback ID used", Error: "dial tcp: refused"},
	}
	if err := Write(path, want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	if !strings.HasPrefix(string(raw), "[\n  {") {
		t.Fatalf("want indented array, got %q", string(raw[:20]))
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}

func TestWrite_EmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	if err := Write(path, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("want [], got %q", raw)
	}
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestRead_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(path, []byte("{"), 0o644)
	if _, err := Read(path); err == nil {
		t.Fatal("expected parse error")
	}
}
