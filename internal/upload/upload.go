package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/rfp-advisor/internal/extract"
)

// MaxSize is the largest document accepted for analysis.
const MaxSize int64 = 16 << 20

var (
	ErrNoFile          = errors.New("no file provided")
	ErrUnsupportedType = errors.New("invalid file type, allowed: txt, pdf")
	ErrTooLarge        = errors.New("file too large, maximum size is 16MiB")
)

// Check validates a submission before any extraction happens.
func Check(name string, size int64) (extract.Format, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrNoFile
	}

	format := extract.ParseFormat(name)
	if !format.Supported() {
		return "", fmt.Errorf("%s: %w", filepath.Base(name), ErrUnsupportedType)
	}

	if size > MaxSize {
		return "", fmt.Errorf("%s is %d bytes: %w", filepath.Base(name), size, ErrTooLarge)
	}

	return format, nil
}

// Open checks and reads a document from disk and extracts its text.
func Open(path string) (extract.Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return extract.Document{}, ErrNoFile
	}

	info, err := os.Stat(path)
	if err != nil {
		return extract.Document{}, fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return extract.Document{}, fmt.Errorf("%q is a directory: %w", path, ErrNoFile)
	}

	format, err := Check(path, info.Size())
	if err != nil {
		return extract.Document{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return extract.Document{}, fmt.Errorf("reading %q: %w", path, err)
	}

	return extract.NewDocument(filepath.Base(path), raw, format), nil
}
