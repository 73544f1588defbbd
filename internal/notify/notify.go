package notify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/apiprobe/internal/domain"
)

type Notifier interface {
	Send(ctx context.Context, title, text string) error
}

// Multi fans out to every notifier and reports all failures.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, title, text string) error {
	var err error
	for _, n := range m {
		if n == nil {
			continue
		}
		err = multierr.Append(err, n.Send(ctx, title, text))
	}
	return err
}

// RunMessage renders the title and body announcing a finished probe run.
func RunMessage(baseURL string, s domain.Summary) (string, string) {
	title := "Kaizen probe finished"
	if s.Failed > 0 {
		title = fmt.Sprintf("Kaizen probe finished with %d failing endpoints", s.Failed)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Base: %s\n", baseURL)
	fmt.Fprintf(&b, "Endpoints: %d\n", s.Total)
	fmt.Fprintf(&b, "Failed: %d\n", s.Failed)
	fmt.Fprintf(&b, "Fallbacks: %d", s.Fallbacks)
	if s.Slowest != nil {
		fmt.Fprintf(&b, "\nSlowest: %s %s (%.2f ms)", s.Slowest.Method, s.Slowest.Path, s.Slowest.ElapsedMS)
	}
	return title, b.String()
}
