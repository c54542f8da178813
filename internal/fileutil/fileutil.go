// Package fileutil provides file reading and writing with the encoding
// behavior the converter needs: UTF-8 input with an ISO-8859-1
// fallback, and UTF-8 output.
package fileutil

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// filePermissions for written output: owner read+write, others read.
const filePermissions = 0o644

// ReadTextFile reads a whole file as text. Valid UTF-8 content is
// returned as is; anything else is decoded as ISO-8859-1, which maps
// every byte and therefore never fails. This is the full fallback
// chain; no other encodings are attempted.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return string(decoded), nil
}

// WriteTextFile writes content to path as UTF-8, overwriting any
// existing file.
func WriteTextFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a name. A string containing path separators (/, \) is treated
// as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
