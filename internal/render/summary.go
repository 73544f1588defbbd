package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/font"

	"github.com/hamed0406/apiprobe/internal/domain"
)

const (
	summaryTitle   = "Kaizen API Response Times"
	summaryColumns = "METHOD  PATH                                         STATUS   TIME (ms)  NOTE"
	timestampFmt   = "2006-01-02 15:04:05"
)

var (
	summaryHeader    = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	summaryPrimary   = color.RGBA{R: 230, G: 232, B: 235, A: 255}
	summarySecondary = color.RGBA{R: 173, G: 181, B: 189, A: 255}
)

var summaryLayout = Layout{
	PaddingX:  80,
	PaddingY:  80,
	Spacing:   12,
	MinWidth:  1920,
	MinHeight: 1080,
}

// SummaryLines builds the header, column row, separator and one fixed-width
// row per result.
func SummaryLines(results []domain.ProbeResult, captured time.Time) []string {
	header := fmt.Sprintf("%s (captured %s)", summaryTitle, captured.Format(timestampFmt))
	sep := strings.Repeat("-", max(len(header), len(summaryColumns)))

	lines := make([]string, 0, len(results)+3)
	lines = append(lines, header, summaryColumns, sep)
	for _, r := range results {
		line := fmt.Sprintf("%-6s %-45s %-7s %9.2f  %s",
			orDash(r.Method), orDash(r.Path), statusText(r.StatusCode), r.ElapsedMS, r.Note)
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// summaryColor picks the shade of line idx: header, columns and separator
// first, then rows alternating for readability.
func summaryColor(idx int) color.RGBA {
	switch {
	case idx == 0:
		return summaryHeader
	case idx == 1:
		return summaryPrimary
	case idx == 2:
		return summarySecondary
	case idx%2 == 1:
		return summaryPrimary
	default:
		return summarySecondary
	}
}

// RenderSummary draws the whole run onto one canvas.
func RenderSummary(face font.Face, results []domain.ProbeResult, captured time.Time) *image.RGBA {
	texts := SummaryLines(results, captured)
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{Text: t, Color: summaryColor(i)}
	}
	return summaryLayout.Draw(face, lines)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func statusText(code *int) string {
	if code == nil {
		return "-"
	}
	return strconv.Itoa(*code)
}
