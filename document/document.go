// Package document mutates the target template file by replacing
// placeholder tokens with generated content.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingPlaceholder reports a token that does not occur in the
// target file. Callers treat it as a warning, not a failure: the
// catalog and the template can drift independently, and the remaining
// units must still complete.
var ErrMissingPlaceholder = errors.New("placeholder not found")

// Substitute replaces every literal occurrence of token in the file at
// path with content and persists the result. The write goes through a
// temp file in the same directory and a rename, so a failure mid-write
// never leaves a truncated template behind.
func Substitute(path, token, content string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	if !strings.Contains(text, token) {
		return fmt.Errorf("%w: %s in %s", ErrMissingPlaceholder, token, path)
	}

	text = strings.ReplaceAll(text, token, content)
	return writeAtomic(path, []byte(text))
}

func writeAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp for %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, info.Mode()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
