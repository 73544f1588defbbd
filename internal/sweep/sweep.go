package sweep

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/hamed0406/apiprobe/internal/domain"
	"github.com/hamed0406/apiprobe/internal/probe"
	"github.com/hamed0406/apiprobe/internal/repo"
)

// ErrLoginFailed aborts a run; the login record is still stored.
var ErrLoginFailed = errors.New("login failed")

const loginPath = "/api/v1/auth/login"

// Plan carries the credentials and sample values substituted into the
// endpoint sequence.
type Plan struct {
	BaseURL     string
	UserWA      string
	Password    string
	SampleDate  string
	SampleStart string
	SampleEnd   string
}

// Sweeper walks the fixed endpoint sequence one call at a time, feeding
// identifiers from list responses into later paths.
type Sweeper struct {
	Logger  *zap.Logger
	Prober  probe.Prober
	Results repo.ResultStore
	Plan    Plan

	token  string
	userID string
}

func New(logger *zap.Logger, p probe.Prober, rs repo.ResultStore, plan Plan) *Sweeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sweeper{Logger: logger, Prober: p, Results: rs, Plan: plan}
}

// Run logs in and probes every endpoint. Per-call failures are recorded and
// never stop the sequence; a failed login stops it with ErrLoginFailed.
// A cancelled ctx stops the sequence early and is returned.
func (s *Sweeper) Run(ctx context.Context) error {
	if err := s.login(ctx); err != nil {
		return err
	}

	s.call(ctx, probe.Request{Name: "Health Check", Method: http.MethodGet, Path: "/health", Public: true})
	s.call(ctx, probe.Request{Name: "API Info", Method: http.MethodGet, Path: "/api/v1", Public: true})
	s.call(ctx, probe.Request{Name: "Profile", Method: http.MethodGet, Path: "/api/v1/auth/profile"})

	s.users(ctx)
	s.communal(ctx)
	s.serbaguna(ctx)
	for _, k := range facilityKinds {
		s.facilityBooking(ctx, k)
	}
	s.cws(ctx)

	return ctx.Err()
}

func (s *Sweeper) login(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, body := s.call(ctx, probe.Request{
		Name:   "Auth Login",
		Method: http.MethodPost,
		Path:   loginPath,
		JSON:   map[string]string{"nomorWa": s.Plan.UserWA, "password": s.Plan.Password},
		Public: true,
	})

	reason := ""
	root := gjson.ParseBytes(body)
	switch {
	case res.StatusCode == nil:
		reason = res.Error
		if s.Plan.BaseURL != "" {
			dns := probe.CheckBaseURL(ctx, s.Plan.BaseURL)
			s.Logger.Info("dns_check",
				zap.String("domain", dns.Domain),
				zap.String("class", dns.Class),
				zap.Int("ips", len(dns.IPs)),
				zap.Bool("has_ns", dns.HasNS),
				zap.String("resolver_error", dns.ResolverError),
			)
			reason = fmt.Sprintf("%s dns=%s", reason, dns.Class)
		}
	case !gjson.ValidBytes(body) || !root.IsObject():
		reason = "response is not a JSON object"
	case !root.Get("success").Bool():
		reason = "success flag not set"
		if res.Message != nil {
			reason += ": " + *res.Message
		}
	default:
		s.token = root.Get("data.token").String()
		if s.token == "" {
			reason = "response has no data.token"
		}
	}

	if reason != "" {
		s.Logger.Error("login_failed", zap.Intp("status", res.StatusCode), zap.String("reason", reason))
		return fmt.Errorf("%w: %s", ErrLoginFailed, reason)
	}
	return nil
}

// call probes one endpoint and appends the result. It is a no-op once ctx is
// done so a cancelled run keeps only real measurements.
func (s *Sweeper) call(ctx context.Context, req probe.Request) (domain.ProbeResult, []byte) {
	if ctx.Err() != nil {
		return domain.ProbeResult{}, nil
	}
	if !req.Public {
		req.Token = s.token
	}

	res, body := s.Prober.Probe(ctx, req)
	if err := s.Results.Append(ctx, res); err != nil {
		s.Logger.Warn("result_append_error", zap.String("name", res.Name), zap.Error(err))
	}

	fields := []zap.Field{
		zap.String("name", res.Name),
		zap.String("method", res.Method),
		zap.String("path", res.Path),
		zap.Intp("status", res.StatusCode),
		zap.Float64("elapsed_ms", res.ElapsedMS),
	}
	if res.Note != "" {
		fields = append(fields, zap.String("note", res.Note))
	}
	if res.Error != "" {
		s.Logger.Warn("probe_error", append(fields, zap.String("error", res.Error))...)
	} else {
		s.Logger.Info("probe_done", fields...)
	}
	return res, body
}

func (s *Sweeper) get(ctx context.Context, name, path string, query url.Values, note string) []byte {
	_, body := s.call(ctx, probe.Request{
		Name:   name,
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
		Note:   note,
	})
	return body
}

// userOr1 is the owner fallback used by the booking categories.
func (s *Sweeper) userOr1() string {
	if s.userID != "" {
		return s.userID
	}
	return fallbackID
}

func segment(v string) string {
	return url.PathEscape(v)
}

func join(base string, parts ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(segment(p))
	}
	return b.String()
}
