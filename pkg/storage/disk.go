package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"lv33global/pkg/logger"
)

// Disk stores assets in a single local directory.
type Disk struct {
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

func NewDisk(dir string, log *logger.Logger) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Disk{
		dir:    dir,
		now:    time.Now,
		logger: log,
	}, nil
}

func (d *Disk) Dir() string {
	return d.dir
}

func (d *Disk) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	now := d.now()
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := UniqueName(now.Add(time.Duration(attempt)*time.Millisecond), file.Filename)
		target := filepath.Join(d.dir, name)

		dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", target, err)
		}

		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			os.Remove(target)
			return "", fmt.Errorf("failed to write %s: %w", target, err)
		}
		if err := dst.Close(); err != nil {
			os.Remove(target)
			return "", fmt.Errorf("failed to close %s: %w", target, err)
		}

		return PublicPath(name), nil
	}

	return "", fmt.Errorf("no free file name for %q after %d attempts", file.Filename, maxNameAttempts)
}

// Remove deletes the file behind publicPath. Missing files and foreign paths
// are ignored; other failures are logged and swallowed.
func (d *Disk) Remove(ctx context.Context, publicPath string) {
	name, ok := NameFromPath(publicPath)
	if !ok {
		d.logger.Warn("[ASSETS] Refusing to remove path outside %s: %q", PublicPrefix, publicPath)
		return
	}

	err := os.Remove(filepath.Join(d.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		d.logger.Warn("[ASSETS] Failed to remove %s: %v", publicPath, err)
	}
}
