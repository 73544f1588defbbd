package repo

import (
	"context"

	"github.com/hamed0406/apiprobe/internal/domain"
)

// ResultStore keeps the ordered results of one run.
type ResultStore interface {
	Append(ctx context.Context, r domain.ProbeResult) error
	List(ctx context.Context) ([]domain.ProbeResult, error)
}
