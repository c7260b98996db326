package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path"
	"strings"
)

// FSStore implements Store on an io/fs file system.
type FSStore struct {
	fsys fs.FS
}

// NewFS wraps fsys, e.g. os.DirFS("data") or an embed.FS.
func NewFS(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Get opens a file for reading.
func (s *FSStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := cleanKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, key)
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, wrapFSError(err)
	}
	return f, nil
}

// Stat returns file metadata.
func (s *FSStore) Stat(ctx context.Context, key string) (*ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := cleanKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, key)
	}

	info, err := fs.Stat(s.fsys, name)
	if err != nil {
		return nil, wrapFSError(err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrNotFound, key)
	}

	return &ObjectInfo{
		Key:         name,
		ContentType: mime.TypeByExtension(path.Ext(name)),
		Size:        info.Size(),
	}, nil
}

// List returns every file below prefix in lexical order.
func (s *FSStore) List(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.Trim(prefix, "/")

	var keys []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasPrefix(p, prefix) {
			return nil
		}
		keys = append(keys, p)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrListFailed, err)
	}
	return keys, nil
}

func wrapFSError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	default:
		return fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
}

var _ Store = (*FSStore)(nil)
