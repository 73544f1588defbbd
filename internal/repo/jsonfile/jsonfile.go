// Package jsonfile persists a run's results as the indented JSON array the
// renderers read.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/hamed0406/apiprobe/internal/domain"
)

// Write replaces path with results. The file is written next to its final
// location and renamed so readers never see a partial array.
func Write(path string, results []domain.ProbeResult) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure results directory %q: %w", dir, err)
	}
	if results == nil {
		results = []domain.ProbeResult{}
	}

	tmp, err := os.CreateTemp(dir, ".results-*.json")
	if err != nil {
		return fmt.Errorf("create temp results file in %q: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	err = enc.Encode(results)
	err = multierr.Append(err, tmp.Close())
	if err != nil {
		return fmt.Errorf("write results %q: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod results %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace results %q: %w", path, err)
	}
	return nil
}

// Read loads the results array. A missing file is reported as an error
// wrapping os.ErrNotExist.
func Read(path string) ([]domain.ProbeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results %q: %w", path, err)
	}
	var results []domain.ProbeResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse results %q: %w", path, err)
	}
	return results, nil
}
