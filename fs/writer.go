package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hqanh/vanban"
)

// Ensure Writer implements vanban.ResultWriter at compile time.
var _ vanban.ResultWriter = (*Writer)(nil)

// Writer writes per-document pipeline outputs as JSON files under a base
// directory. Segmentation results go to processed/<id>.json and diff
// reports to diffs/<id>.json.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

func (w *Writer) WriteResult(ctx context.Context, seg *vanban.SegmentationResult, diff *vanban.DiffReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if seg == nil {
		return vanban.Errorf(vanban.EINVALID, "segmentation result required")
	}

	if err := w.writeJSON(filepath.Join(w.baseDir, "processed", seg.DocID+".json"), seg); err != nil {
		return err
	}
	if diff != nil {
		if err := w.writeJSON(filepath.Join(w.baseDir, "diffs", diff.DocID+".json"), diff); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return vanban.Errorf(vanban.EINTERNAL, "failed to create output directory: %v", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return vanban.Errorf(vanban.EINTERNAL, "failed to encode result: %v", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return vanban.Errorf(vanban.EINTERNAL, "failed to write %s: %v", path, err)
	}
	return nil
}
