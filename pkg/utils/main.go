package utils

import (
	"os"
	"path/filepath"
	"strings"
)

func PathExist(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return true
}

// IsGzipPath reports whether path names a gzip compressed file.
func IsGzipPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".gz" || ext == ".gzip"
}
