// Package local stores image assets on disk under the public static
// directory the HTTP server exposes.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"festivo/internal/assets"
)

type Store struct {
	baseDir      string
	publicPrefix string
}

// NewStore creates the asset directory if needed. Saved files are
// referenced as publicPrefix/<filename> in venue image lists.
func NewStore(baseDir, publicPrefix string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset directory: %w", err)
	}
	return &Store{baseDir: baseDir, publicPrefix: publicPrefix}, nil
}

func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	filename = assets.NormalizeFilename(filename)

	dest, err := s.safeJoin(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dest)
		return "", fmt.Errorf("write asset file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("close asset file: %w", err)
	}

	return path.Join(s.publicPrefix, filename), nil
}

// safeJoin resolves filename under baseDir and rejects directory traversal.
func (s *Store) safeJoin(filename string) (string, error) {
	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filename))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
