package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/image/font"

	"github.com/hamed0406/apiprobe/internal/domain"
)

const keyWidth = 9

var (
	termPrimary   = color.RGBA{R: 219, G: 224, B: 230, A: 255}
	termSecondary = color.RGBA{R: 136, G: 146, B: 160, A: 255}
	termCommand   = color.RGBA{R: 248, G: 189, B: 150, A: 255}
	termKeys      = color.RGBA{R: 94, G: 170, B: 246, A: 255}
)

var terminalLayout = Layout{
	PaddingX:  120,
	PaddingY:  100,
	Spacing:   18,
	MinWidth:  1920,
	MinHeight: 1080,
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Filename is the image name (without extension) of the 1-based index-th
// result. It depends only on its inputs, so reruns produce the same set.
func Filename(index int, method, path string) string {
	raw := fmt.Sprintf("%02d-%s-%s", index, method, strings.Trim(path, "/"))
	cleaned := strings.Trim(unsafeFilename.ReplaceAllString(raw, "-"), "-")
	if cleaned == "" {
		return fmt.Sprintf("endpoint-%02d", index)
	}
	return cleaned
}

func kv(key, value string) string {
	return fmt.Sprintf("%-*s: %s", keyWidth, key, value)
}

// TerminalLines renders r as a simulated shell transcript.
func TerminalLines(r domain.ProbeResult, captured string) []Line {
	name := r.Name
	if name == "" {
		name = "Unknown"
	}
	message := "-"
	if r.Message != nil && *r.Message != "" {
		message = *r.Message
	}

	lines := []Line{
		{Text: fmt.Sprintf(`$ kaizen-measure --name "%s"`, name), Color: termCommand},
		{Text: kv("method", orDash(r.Method)), Color: termKeys},
		{Text: kv("path", orDash(r.Path)), Color: termPrimary},
		{Text: kv("status", statusText(r.StatusCode)), Color: termPrimary},
		{Text: kv("elapsed", fmt.Sprintf("%.2f ms", r.ElapsedMS)), Color: termPrimary},
		{Text: kv("message", message), Color: termSecondary},
	}
	if r.Note != "" {
		lines = append(lines, Line{Text: kv("note", r.Note), Color: termSecondary})
	}
	if r.Error != "" {
		lines = append(lines, Line{Text: kv("error", r.Error), Color: termSecondary})
	}
	return append(lines, Line{Text: kv("captured", captured), Color: termSecondary})
}

func RenderTerminal(face font.Face, r domain.ProbeResult, captured time.Time) *image.RGBA {
	return terminalLayout.Draw(face, TerminalLines(r, captured.Format(timestampFmt)))
}

// RenderTerminalDir writes one image per result into dir after removing the
// PNGs of a previous run. It returns the written paths in result order.
func RenderTerminalDir(face font.Face, dir string, results []domain.ProbeResult, captured time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure terminal directory %q: %w", dir, err)
	}
	stale, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, fmt.Errorf("list stale images in %q: %w", dir, err)
	}
	for _, p := range stale {
		if err := os.Remove(p); err != nil {
			return nil, fmt.Errorf("remove stale image %q: %w", p, err)
		}
	}

	written := make([]string, 0, len(results))
	for i, r := range results {
		method, path := r.Method, r.Path
		if method == "" {
			method = "GET"
		}
		if path == "" {
			path = "/"
		}
		out := filepath.Join(dir, Filename(i+1, method, path)+".png")
		if err := SavePNG(out, RenderTerminal(face, r, captured)); err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}
