package fixer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// BackupStamp is the layout of the per-run backup directory name.
const BackupStamp = "20060102-150405"

// Backup copies every file to root/<stamp>/<rel>, keeping mode and
// modification time, and returns the directory it wrote to.
func Backup(root string, files []File, now time.Time) (string, error) {
	dir := filepath.Join(root, now.Format(BackupStamp))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	for _, f := range files {
		if err := copyFile(f.Path, filepath.Join(dir, f.Rel)); err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", f.Rel, err)
		}
	}
	return dir, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
