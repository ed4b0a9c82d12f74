package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileStore implements Store on the local file system.
type fileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a file-system image store rooted at dir. The
// directory is created if it does not exist.
func NewFileStore(dir string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &fileStore{
		dir:    dir,
		logger: logger.With().Str("component", "file-store").Logger(),
	}, nil
}

// Put writes the image to the upload directory and returns the path the
// API serves it under.
func (s *fileStore) Put(ctx context.Context, name string, content io.Reader) (string, error) {
	// Strip any client-supplied directory components.
	name = filepath.Base(name)

	dst := filepath.Join(s.dir, name)
	file, err := os.Create(dst)
	if err != nil {
		s.logger.Error().Err(err).Str("file", dst).Msg("failed to create image file")
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, content)
	if err != nil {
		s.logger.Error().Err(err).Str("file", dst).Msg("failed to write image file")
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	s.logger.Info().
		Str("file", dst).
		Int64("bytes", written).
		Msg("image stored")

	return path.Join("/images", name), nil
}
