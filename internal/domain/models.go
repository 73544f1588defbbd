package domain

import "math"

// ProbeResult is one timed request/response pair. It is the only record
// exchanged between the prober and the renderers.
type ProbeResult struct {
	Name       string  `json:"name"`
	Method     string  `json:"method"`
	Path       string  `json:"path"`
	StatusCode *int    `json:"status_code"` // nil when the call never got a response
	ElapsedMS  float64 `json:"elapsed_ms"`
	Message    *string `json:"message"`
	Note       string  `json:"note,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// Failed reports whether the call got no response or a 4xx/5xx one.
func (r ProbeResult) Failed() bool {
	return r.StatusCode == nil || *r.StatusCode >= 400
}

// RoundMS rounds a millisecond duration to two decimals and clamps at zero.
func RoundMS(ms float64) float64 {
	if ms < 0 {
		return 0
	}
	return math.Round(ms*100) / 100
}

// Summary aggregates a run for notifications and logs.
type Summary struct {
	Total     int
	Failed    int
	Fallbacks int
	Slowest   *ProbeResult
}

func Summarize(results []ProbeResult) Summary {
	var s Summary
	s.Total = len(results)
	for i := range results {
		r := results[i]
		if r.Failed() {
			s.Failed++
		}
		if r.Note != "" {
			s.Fallbacks++
		}
		if s.Slowest == nil || r.ElapsedMS > s.Slowest.ElapsedMS {
			s.Slowest = &results[i]
		}
	}
	return s
}
