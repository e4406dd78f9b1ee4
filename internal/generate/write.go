package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/bpagen/internal/bpa"
	"github.com/gyeh/bpagen/internal/charset"
	"github.com/gyeh/bpagen/internal/model"
	"github.com/gyeh/bpagen/internal/normalize"
)

// WriteResult describes the finished output file.
type WriteResult struct {
	Path     string
	SHA256   string
	Bytes    int64
	Duration time.Duration
}

// OutputName is the default file name for a run started at t.
func OutputName(m model.Mode, t time.Time) string {
	return fmt.Sprintf("BPA_%s_%s.txt", m.Name, t.Format("20060102_150405"))
}

// OutputPath joins dir and OutputName.
func OutputPath(dir string, m model.Mode, t time.Time) string {
	return filepath.Join(dir, OutputName(m, t))
}

// Write encodes f under header h into path. Content goes to a temp file in the
// same directory which is renamed into place once complete, so a failed write
// never leaves a partial file at path.
func Write(log zerolog.Logger, f *bpa.File, h model.Header, path, encoding string) (*WriteResult, error) {
	start := time.Now()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".bpa-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w, err := charset.NewWriter(tmp, encoding)
	if err != nil {
		return nil, err
	}
	if _, err := f.Encode(w, h); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flush %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return nil, fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return nil, fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return nil, fmt.Errorf("rename to %s: %w", path, err)
	}
	committed = true

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, err
	}

	res := &WriteResult{
		Path:     path,
		SHA256:   sha,
		Bytes:    stat.Size(),
		Duration: time.Since(start),
	}
	log.Debug().
		Str("path", path).
		Str("sha256", sha).
		Dur("duration", res.Duration).
		Msg("output written")
	return res, nil
}
