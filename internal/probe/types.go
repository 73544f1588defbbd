package probe

import (
	"context"
	"net/url"

	"github.com/hamed0406/apiprobe/internal/domain"
)

// Request describes one call of the endpoint plan.
type Request struct {
	Name   string
	Method string
	Path   string     // recorded as-is; already escaped where needed
	Query  url.Values // appended to the URL, not recorded
	JSON   any        // request body, sent as application/json when non-nil
	Public bool       // sent without Authorization
	Token  string     // bearer token for non-public calls
	Note   string     // copied to the result when non-blank
}

// Prober performs a single timed call. It never fails: transport errors are
// reported inside the result, and body is nil in that case.
type Prober interface {
	Probe(ctx context.Context, req Request) (res domain.ProbeResult, body []byte)
}
