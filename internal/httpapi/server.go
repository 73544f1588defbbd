package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/apiprobe/internal/domain"
	apimw "github.com/hamed0406/apiprobe/internal/httpapi/middleware"
	"github.com/hamed0406/apiprobe/internal/repo/jsonfile"
)

var imageName = regexp.MustCompile(`^[A-Za-z0-9._-]+\.png$`)

// Server exposes the artifacts of the last run read-only.
type Server struct {
	Logger       *zap.Logger
	ResultsPath  string
	SummaryImage string
	TerminalDir  string
}

func NewServer(l *zap.Logger, resultsPath, summaryImage, terminalDir string) *Server {
	return &Server{Logger: l, ResultsPath: resultsPath, SummaryImage: summaryImage, TerminalDir: terminalDir}
}

func (s *Server) Router(keys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireKey(keys))
		r.Get("/api/results", s.handleResults)
		r.Get("/api/summary", s.handleSummary)
		r.Get("/api/images", s.handleListImages)
		r.Get("/images/summary.png", s.handleSummaryImage)
		r.Get("/images/terminal/{name}", s.handleTerminalImage)
	})

	return r
}

type summaryView struct {
	Total     int                 `json:"total"`
	Failed    int                 `json:"failed"`
	Fallbacks int                 `json:"fallbacks"`
	Slowest   *domain.ProbeResult `json:"slowest,omitempty"`
}

func (s *Server) loadResults(w http.ResponseWriter) ([]domain.ProbeResult, bool) {
	results, err := jsonfile.Read(s.ResultsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, http.StatusNotFound, "no results yet")
			return nil, false
		}
		s.Logger.Warn("results_read_error", zap.String("path", s.ResultsPath), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "results unreadable")
		return nil, false
	}
	return results, true
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	results, ok := s.loadResults(w)
	if !ok {
		return
	}
	writeJSON(w, results)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	results, ok := s.loadResults(w)
	if !ok {
		return
	}
	sum := domain.Summarize(results)
	writeJSON(w, summaryView{Total: sum.Total, Failed: sum.Failed, Fallbacks: sum.Fallbacks, Slowest: sum.Slowest})
}

func (s *Server) handleListImages(w http.ResponseWriter, r *http.Request) {
	matches, err := filepath.Glob(filepath.Join(s.TerminalDir, "*.png"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list error")
		return
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)
	writeJSON(w, names)
}

func (s *Server) handleSummaryImage(w http.ResponseWriter, r *http.Request) {
	s.serveImage(w, r, s.SummaryImage)
}

func (s *Server) handleTerminalImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !imageName.MatchString(name) {
		writeError(w, http.StatusBadRequest, "bad image name")
		return
	}
	s.serveImage(w, r, filepath.Join(s.TerminalDir, name))
}

func (s *Server) serveImage(w http.ResponseWriter, r *http.Request, path string) {
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
