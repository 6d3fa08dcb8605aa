package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
)

// assetsPrefix is how audio paths are stored in the part table.
const assetsPrefix = "assets/"

// FSStore serves media files from a directory on local disk.
type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./media/assets"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	return &FSStore{base: abs}, nil
}

func NewMediaStore(cfg *config.Config) (*FSStore, error) {
	return NewFSStore(cfg.Media.Directory)
}

// Resolve maps a stored media url like "assets/Test_1/part1.mp3" to a file inside base.
func (s *FSStore) Resolve(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), assetsPrefix)
	if key == "" {
		return "", apperror.Validation("empty media path")
	}
	dst := filepath.Join(s.base, filepath.Clean("/"+key))
	rel, err := filepath.Rel(s.base, dst)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", apperror.Validation("media path %q escapes the media directory", key)
	}
	return dst, nil
}

// Open returns the file behind key. The caller closes it.
func (s *FSStore) Open(key string) (*os.File, fs.FileInfo, error) {
	path, err := s.Resolve(key)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, apperror.NotFound("audio file not found: %s", key)
	}
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, apperror.NotFound("audio file not found: %s", key)
	}
	return f, info, nil
}
