// Package output persists generated files.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Writer writes generated files to filesystem.
type Writer struct {
	fs afero.Fs
	l  logrus.FieldLogger
}

// NewWriter creates new Writer.
func NewWriter(fs afero.Fs, l logrus.FieldLogger) *Writer {
	return &Writer{
		fs: fs,
		l:  l,
	}
}

// Write writes data to path, replacing existing file. Missing parent directories are created.
func (w *Writer) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(w.fs, path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	w.l.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Debug("file written")

	return nil
}

// WriteJSON writes v as indented json document.
func (w *Writer) WriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", path, err)
	}
	return w.Write(path, data)
}

// Read returns content of file at path.
func (w *Writer) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
