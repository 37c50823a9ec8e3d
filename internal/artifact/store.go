package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/imamik/kscaffold/internal/platform/s3"
)

// Store persists artifact content by path.
// Read returns an error wrapping fs.ErrNotExist when nothing is stored at path.
type Store interface {
	Write(ctx context.Context, path string, data []byte) error
	Read(ctx context.Context, path string) ([]byte, error)
}

// FileStore stores artifacts on a billy filesystem.
type FileStore struct {
	fs billy.Filesystem
}

// NewFileStore returns a FileStore over fsys. Paths are made absolute
// before use, so fsys should be rooted at "/".
func NewFileStore(fsys billy.Filesystem) *FileStore {
	return &FileStore{fs: fsys}
}

// NewOSFileStore returns a FileStore over the local filesystem.
func NewOSFileStore() *FileStore {
	return NewFileStore(osfs.New("/"))
}

// Write creates parent directories and overwrites the file at p.
func (s *FileStore) Write(_ context.Context, p string, data []byte) error {
	abs, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(abs), err)
	}
	return util.WriteFile(s.fs, abs, data, 0o644)
}

// Read returns the content of the file at p.
func (s *FileStore) Read(_ context.Context, p string) ([]byte, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	return util.ReadFile(s.fs, abs)
}

// ObjectClient is the subset of the object storage client the S3Store uses.
type ObjectClient interface {
	PutObject(ctx context.Context, bucket, key string, data []byte) error
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// S3Store stores artifacts as objects keyed by prefix and cleaned path.
type S3Store struct {
	client ObjectClient
	bucket string
	prefix string
}

// NewS3Store returns a store writing to bucket below prefix.
func NewS3Store(client ObjectClient, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key for p.
func (s *S3Store) Key(p string) string {
	clean := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "/")
	clean = strings.TrimPrefix(clean, "./")
	if s.prefix == "" {
		return clean
	}
	return path.Join(strings.Trim(s.prefix, "/"), clean)
}

// Write uploads data to the object for p.
func (s *S3Store) Write(ctx context.Context, p string, data []byte) error {
	return s.client.PutObject(ctx, s.bucket, s.Key(p), data)
}

// Read downloads the object for p.
func (s *S3Store) Read(ctx context.Context, p string) ([]byte, error) {
	data, err := s.client.GetObject(ctx, s.bucket, s.Key(p))
	if errors.Is(err, s3.ErrObjectNotFound) {
		return nil, fmt.Errorf("%s: %w", s.Key(p), fs.ErrNotExist)
	}
	return data, err
}
