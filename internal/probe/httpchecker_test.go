package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestHTTPProber_StatusAndMessage(t *testing.T) {
	var gotAuth, gotQuery string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		w.Write([]byte(`{"success":true,"message":"Users retrieved","data":[]}`))
	}))
	defer s.Close()

	p := NewHTTPProber(s.URL+"/", 2*time.Second)
	res, body := p.Probe(context.Background(), Request{
		Token:  "tok",
		Name:   "Users List",
		Method: http.MethodGet,
		Path:   "/api/v1/users",
		Query:  url.Values{"date": {"2025-09-20"}},
	})
	if res.StatusCode == nil || *res.StatusCode != 200 {
		t.Fatalf("want status 200, got %+v", res)
	}
	if res.Message == nil || *res.Message != "Users retrieved" {
		t.Fatalf("want message, got %v", res.Message)
	}
	if res.Path != "/api/v1/users" || res.Name != "Users List" || res.Method != "GET" {
		t.Fatalf("identity fields wrong: %+v", res)
	}
	if res.ElapsedMS < 0 {
		t.Fatalf("latency should be >= 0, got %f", res.ElapsedMS)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("want bearer header, got %q", gotAuth)
	}
	if gotQuery != "date=2025-09-20" {
		t.Fatalf("want query, got %q", gotQuery)
	}
	if len(body) == 0 {
		t.Fatalf("want body returned")
	}
}

func TestHTTPProber_PublicSendsNoToken(t *testing.T) {
	var gotAuth string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	p := NewHTTPProber(s.URL, 2*time.Second)
	res, _ := p.Probe(context.Background(), Request{Name: "Health Check", Method: "GET", Path: "/health", Public: true, Token: "tok"})
	if gotAuth != "" {
		t.Fatalf("public call leaked token: %q", gotAuth)
	}
	if res.Message != nil {
		t.Fatalf("non-JSON body must have nil message, got %q", *res.Message)
	}
}

func TestHTTPProber_JSONBodyAndNote(t *testing.T) {
	var payload map[string]string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		http.Error(w, `{"success":false,"message":"Invalid credentials"}`, 401)
	}))
	defer s.Close()

	p := NewHTTPProber(s.URL, 2*time.Second)
	res, _ := p.Probe(context.Background(), Request{
		Name:   "Auth Login",
		Method: http.MethodPost,
		Path:   "/api/v1/auth/login",
		JSON:   map[string]string{"nomorWa": "+62", "password": "x"},
		Public: true,
		Note:   "  ",
	})
	if payload["nomorWa"] != "+62" {
		t.Fatalf("payload not sent: %v", payload)
	}
	if res.StatusCode == nil || *res.StatusCode != 401 {
		t.Fatalf("want 401, got %+v", res)
	}
	if res.Note != "" {
		t.Fatalf("blank note must be dropped, got %q", res.Note)
	}
}

func TestHTTPProber_TimeoutRecordsError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	p := NewHTTPProber(s.URL, 50*time.Millisecond)
	res, body := p.Probe(context.Background(), Request{Name: "Slow", Method: "GET", Path: "/", Public: true, Note: "Fallback ID used"})
	if res.StatusCode != nil {
		t.Fatalf("want nil status on transport error, got %d", *res.StatusCode)
	}
	if res.Error == "" {
		t.Fatalf("want non-empty error")
	}
	if body != nil {
		t.Fatalf("want nil body")
	}
	if res.Note != "Fallback ID used" {
		t.Fatalf("note lost: %+v", res)
	}
	if res.ElapsedMS < 0 {
		t.Fatalf("elapsed must be >= 0")
	}
}

func TestHTTPProber_LargeBodyReadWhole(t *testing.T) {
	payload := `{"success":true,"data":[{"id":"42","pad":"` + strings.Repeat("x", 9<<20) + `"}]}`
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer s.Close()

	p := NewHTTPProber(s.URL, 10*time.Second)
	res, body := p.Probe(context.Background(), Request{Name: "Users List", Method: "GET", Path: "/api/v1/users", Public: true})
	if res.StatusCode == nil || *res.StatusCode != 200 || res.Error != "" {
		t.Fatalf("want clean 200, got %+v", res)
	}
	if len(body) != len(payload) {
		t.Fatalf("body cut short: got %d bytes, want %d", len(body), len(payload))
	}
	if !json.Valid(body) {
		t.Fatalf("body is not valid JSON")
	}
}

func TestHTTPProber_MissingToken(t *testing.T) {
	p := NewHTTPProber("http://127.0.0.1:1", time.Second)
	res, _ := p.Probe(context.Background(), Request{Name: "Profile", Method: "GET", Path: "/api/v1/auth/profile"})
	if res.StatusCode != nil || res.Error == "" {
		t.Fatalf("want error record, got %+v", res)
	}
}

func TestMessageOf(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`{"message":"hi"}`, "hi", true},
		{`{"message":null}`, "", false},
		{`{"data":1}`, "", false},
		{`[{"message":"x"}]`, "", false},
		{`not json`, "", false},
		{`{"message":42}`, "42", true},
	}
	for _, c := range cases {
		got := messageOf([]byte(c.in))
		if (got != nil) != c.ok || (got != nil && *got != c.want) {
			t.Fatalf("messageOf(%s)=%v want %q ok=%v", c.in, got, c.want, c.ok)
		}
	}
}
