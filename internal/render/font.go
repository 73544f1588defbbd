package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

const (
	SummaryFontSize  = 32
	TerminalFontSize = 40
)

// Monospace fonts tried in order when no font path is configured.
var fontCandidates = []string{
	"/System/Library/Fonts/SFMono-Regular.otf",
	"/System/Library/Fonts/SFNSMono.ttf",
	"/System/Library/Fonts/Menlo.ttc",
	"/Library/Fonts/Menlo.ttc",
	"/System/Library/Fonts/Monaco.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
}

// LoadFace opens the first usable font among preferred and the candidates,
// falling back to the embedded Go Mono. The second return value names the
// source that was used.
func LoadFace(preferred string, size float64) (font.Face, string, error) {
	paths := fontCandidates
	if preferred != "" {
		paths = append([]string{preferred}, fontCandidates...)
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		face, err := parseFace(data, strings.EqualFold(filepath.Ext(p), ".ttc"), size)
		if err != nil {
			continue
		}
		return face, p, nil
	}

	face, err := parseFace(gomono.TTF, false, size)
	if err != nil {
		return nil, "", fmt.Errorf("load embedded go mono: %w", err)
	}
	return face, "gomono", nil
}

func parseFace(data []byte, collection bool, size float64) (font.Face, error) {
	var f *opentype.Font
	if collection {
		c, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		if f, err = c.Font(0); err != nil {
			return nil, err
		}
	} else {
		var err error
		if f, err = opentype.Parse(data); err != nil {
			return nil, err
		}
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
