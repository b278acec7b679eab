package dper

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// WriteConfig replaces the content of filename with data. The file is left
// untouched if its content already matches, unless force is set. Returns true
// if the file was written. The new file is written next to the old one and
// renamed into place so readers never see a partial configuration.
func WriteConfig(filename string, data []byte, force bool) (bool, error) {
	log := Log.WithField("file", filename)

	old, err := os.ReadFile(filename)
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "failed to read '%s'", filename)
	}
	if err == nil && bytes.Equal(old, data) && !force {
		log.Info("no change")
		return false, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(data)),
		FromFile: filename,
		ToFile:   filename + ".new",
		Context:  3,
	})
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(strings.TrimSpace(diff), "\n") {
		if line != "" {
			log.Info("diff: ", line)
		}
	}

	f, err := os.CreateTemp(filepath.Dir(filename), "conf.*.tmp")
	if err != nil {
		return false, errors.Wrap(err, "failed to create temporary file")
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, errors.Wrapf(err, "failed to write '%s'", tmp)
	}
	if err := f.Close(); err != nil {
		return false, err
	}
	if err := os.Chmod(tmp, 0444); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, filename); err != nil {
		return false, errors.Wrapf(err, "failed to replace '%s'", filename)
	}
	log.Info("wrote output")
	return true, nil
}
