package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"nixlint/internal/source"
)

// ErrNonUTF8 marks input that is not valid UTF-8. Such files are skipped,
// never transcoded.
var ErrNonUTF8 = errors.New("file is not valid UTF-8")

// LoadFile reads path into fileSet.
func LoadFile(fileSet *source.FileSet, path string) (*source.File, error) {
	// #nosec G304 -- path comes from discovery or the command line
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%s: %w", path, ErrNonUTF8)
	}
	content, flags := source.Normalize(raw)
	return fileSet.Get(fileSet.Add(path, content, flags)), nil
}

// LoadReader reads a virtual file, e.g. stdin, under name.
func LoadReader(fileSet *source.FileSet, name string, r io.Reader) (*source.File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%s: %w", name, ErrNonUTF8)
	}
	return fileSet.Get(fileSet.AddVirtual(name, raw)), nil
}

// Write replaces file's content on disk with text, restoring the BOM and
// CRLF endings it was loaded with and keeping its permissions.
func Write(file *source.File, text string) error {
	info, err := os.Stat(file.Path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return &fs.PathError{Op: "write", Path: file.Path, Err: errors.New("not a regular file")}
	}
	data := source.Restore([]byte(text), file.Flags)
	return os.WriteFile(file.Path, data, info.Mode().Perm())
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
