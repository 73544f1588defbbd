package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hamed0406/apiprobe/internal/domain"
)

var errMissingToken = errors.New("bearer token required")

type HTTPProber struct {
	Client  *http.Client
	BaseURL string
}

func NewHTTPProber(baseURL string, timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

func (h *HTTPProber) Probe(ctx context.Context, r Request) (domain.ProbeResult, []byte) {
	res := domain.ProbeResult{Name: r.Name, Method: r.Method, Path: r.Path}
	if strings.TrimSpace(r.Note) != "" {
		res.Note = r.Note
	}

	start := time.Now()
	req, err := h.newRequest(ctx, r)
	if err != nil {
		res.ElapsedMS = domain.RoundMS(time.Since(start).Seconds() * 1000)
		res.Error = err.Error()
		return res, nil
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		res.ElapsedMS = domain.RoundMS(time.Since(start).Seconds() * 1000)
		res.Error = err.Error()
		return res, nil
	}
	defer resp.Body.Close()

	// The body is part of the measured round trip.
	body, err := io.ReadAll(resp.Body)
	res.ElapsedMS = domain.RoundMS(time.Since(start).Seconds() * 1000)
	if err != nil {
		res.Error = err.Error()
		return res, nil
	}

	status := resp.StatusCode
	res.StatusCode = &status
	res.Message = messageOf(body)
	return res, body
}

func (h *HTTPProber) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	target := h.BaseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var payload io.Reader
	if r.JSON != nil {
		b, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !r.Public {
		if r.Token == "" {
			return nil, errMissingToken
		}
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	return req, nil
}

// messageOf returns the top-level "message" of a JSON object body.
func messageOf(body []byte) *string {
	if !gjson.ValidBytes(body) {
		return nil
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil
	}
	m := root.Get("message")
	if !m.Exists() || m.Type == gjson.Null {
		return nil
	}
	s := m.String()
	return &s
}
