// Package archive stores report copies on the local filesystem.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirStore writes reports into a single directory, replacing any previous
// report of the same name.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Put writes pdf under name. The file is written beside its final path and
// renamed into place, so readers never see a partial report.
func (s *DirStore) Put(ctx context.Context, name string, pdf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("archive: invalid report name %q", name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("archive dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("archive temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(pdf); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("archive write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("archive write: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("archive rename: %w", err)
	}
	return nil
}
