package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/hamed0406/apiprobe/internal/domain"
)

type stubNotifier struct {
	err   error
	calls int
}

func (s *stubNotifier) Send(ctx context.Context, title, text string) error {
	s.calls++
	return s.err
}

func TestMulti_CollectsAllErrors(t *testing.T) {
	a := &stubNotifier{err: errors.New("a down")}
	b := &stubNotifier{}
	c := &stubNotifier{err: errors.New("c down")}
	err := Multi{a, nil, b, c}.Send(context.Background(), "t", "x")
	if a.calls != 1 || b.calls != 1 || c.calls != 1 {
		t.Fatalf("every notifier must be called: %d %d %d", a.calls, b.calls, c.calls)
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Fatalf("want 2 errors, got %d (%v)", n, err)
	}
}

func TestRunMessage(t *testing.T) {
	ok := 200
	results := []domain.ProbeResult{
		{Method: "GET", Path: "/health", StatusCode: &ok, ElapsedMS: 1},
		{Method: "GET", Path: "/api/v1/users", ElapsedMS: 99.5, Error: "timeout"},
	}
	title, text := RunMessage("http://localhost:3000", domain.Summarize(results))
	if !strings.Contains(title, "1 failing") {
		t.Fatalf("title: %q", title)
	}
	for _, want := range []string{"Endpoints: 2", "Failed: 1", "Slowest: GET /api/v1/users (99.50 ms)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text missing %q:\n%s", want, text)
		}
	}
}
