package utils

import (
	"context"
	"os"
	"path/filepath"
)

// LocalStore writes objects below a directory on disk. Used when no R2
// bucket is configured.
type LocalStore struct {
	Dir string
}

// EnsureDir creates the store directory if it doesn't exist
func (l LocalStore) EnsureDir() error {
	return os.MkdirAll(l.Dir, os.ModePerm)
}

// Upload writes body to Dir/key and returns the file path.
func (l LocalStore) Upload(ctx context.Context, key string, body []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	destPath := filepath.Join(l.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(destPath, body, 0o644); err != nil {
		return "", err
	}
	return destPath, nil
}
