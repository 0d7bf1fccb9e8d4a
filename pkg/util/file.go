// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package util holds small filesystem helpers shared by the config loader.
package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFileSafely reads a regular file after cleaning and resolving the path.
// Directories and other non-regular files are refused.
func ReadFileSafely(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty file path")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute path for %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", absPath)
	}

	return os.ReadFile(absPath) // #nosec G304
}
