package dper

import (
	"os"

	"github.com/pkg/errors"
)

// FileLoader reads a peer document from a local file.
type FileLoader struct {
	filename string
}

var _ Loader = &FileLoader{}

func NewFileLoader(filename string) *FileLoader {
	return &FileLoader{filename}
}

func (l *FileLoader) Load() ([]byte, error) {
	Log.WithField("file", l.filename).Debug("loading peer document")
	b, err := os.ReadFile(l.filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read '%s'", l.filename)
	}
	return b, nil
}
