package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// FileInfo represents file metadata
type FileInfo struct {
	Path    string
	Size    int64
	Mode    os.FileMode
	ModTime time.Time
	IsDir   bool
}

// FileSystem is the filesystem surface the file and OT services use.
type FileSystem interface {
	// ReadFile reads the entire file
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces the file contents, creating it if needed
	WriteFile(ctx context.Context, path string, data []byte) error
	// Stat returns file information
	Stat(ctx context.Context, path string) (*FileInfo, error)
	// ListDir lists directory contents, sorted by name
	ListDir(ctx context.Context, path string) ([]*FileInfo, error)
	// MkdirAll creates a directory and all parent directories
	MkdirAll(ctx context.Context, path string) error
	// Remove deletes a file or a directory tree
	Remove(ctx context.Context, path string) error
	// Rename moves a file or directory
	Rename(ctx context.Context, from, to string) error
	// Abs resolves path against the filesystem root
	Abs(path string) string
}

// OS is a FileSystem rooted at a base directory on the local disk.
type OS struct {
	baseDir string
}

// NewOS creates a FileSystem rooted at baseDir.
func NewOS(baseDir string) *OS {
	return &OS{baseDir: baseDir}
}

func (o *OS) Abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.baseDir, path)
}

func (o *OS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(o.Abs(path))
}

func (o *OS) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(o.Abs(path), data, 0644)
}

func (o *OS) Stat(ctx context.Context, path string) (*FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st, err := os.Stat(o.Abs(path))
	if err != nil {
		return nil, err
	}
	return &FileInfo{
		Path:    path,
		Size:    st.Size(),
		Mode:    st.Mode(),
		ModTime: st.ModTime(),
		IsDir:   st.IsDir(),
	}, nil
}

func (o *OS) ListDir(ctx context.Context, path string) ([]*FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(o.Abs(path))
	if err != nil {
		return nil, err
	}

	infos := make([]*FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// raced with a delete
			continue
		}
		infos = append(infos, &FileInfo{
			Path:    entry.Name(),
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
			IsDir:   entry.IsDir(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })
	return infos, nil
}

func (o *OS) MkdirAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(o.Abs(path), 0755)
}

func (o *OS) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs := o.Abs(path)
	if _, err := os.Stat(abs); err != nil {
		return err
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (o *OS) Rename(ctx context.Context, from, to string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Rename(o.Abs(from), o.Abs(to))
}
