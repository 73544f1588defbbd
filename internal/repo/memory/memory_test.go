package memory

import (
	"context"
	"testing"

	"github.com/hamed0406/apiprobe/internal/domain"
)

func TestMemoryStore_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, name := range []string{"Auth Login", "Health Check", "API Info"} {
		if err := s.Append(ctx, domain.ProbeResult{Name: name}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Name != "Auth Login" || all[2].Name != "API Info" {
		t.Fatalf("unexpected order: %+v", all)
	}

	// mutating the copy must not touch the store
	all[0].Name = "changed"
	again, _ := s.List(ctx)
	if again[0].Name != "Auth Login" {
		t.Fatalf("List must return a copy")
	}
}
