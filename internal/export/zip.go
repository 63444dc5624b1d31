// Package export bundles finza data files into a zip archive.
package export

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File is one entry of an export bundle.
type File struct {
	Name string
	Body []byte
}

// WriteZip writes the given files into a zip archive at path,
// creating parent directories as needed.
func WriteZip(path string, files []File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	now := time.Now()
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return fmt.Errorf("adding %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Body); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return out.Close()
}
