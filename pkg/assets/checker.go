// Package assets verifies that icon files referenced by a manifest exist
// on disk. The check is advisory: the caller decides whether absence is
// fatal, a warning, or ignored.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/webman/pkg/manifest"
)

// FileStatus records one inspected icon file.
type FileStatus struct {
	Src          string `json:"src"`
	ResolvedPath string `json:"resolved_path"`
	Sizes        string `json:"sizes,omitempty"`
	Type         string `json:"type,omitempty"`
	Exists       bool   `json:"exists"`
}

// CheckResult aggregates the outcome of an asset existence check.
// Valid is true iff Missing is empty.
type CheckResult struct {
	Valid        bool         `json:"valid"`
	Checked      int          `json:"checked"`
	Missing      []FileStatus `json:"missing,omitempty"`
	CheckedFiles []FileStatus `json:"checked_files"`
}

// Checker tests existence of referenced icon files.
type Checker struct{}

// NewChecker returns a Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check inspects every icon with a non-empty src. Icons without src are
// skipped entirely: not counted, not reported. A leading separator on the
// src is stripped before joining with baseDir and iconsDir.
func (c *Checker) Check(icons []manifest.Icon, baseDir, iconsDir string) CheckResult {
	result := CheckResult{}

	for _, icon := range icons {
		src := strings.TrimSpace(icon.Src)
		if src == "" {
			continue
		}

		resolved := filepath.Join(baseDir, iconsDir, strings.TrimPrefix(src, "/"))
		status := FileStatus{
			Src:          icon.Src,
			ResolvedPath: resolved,
			Sizes:        icon.Sizes,
			Type:         icon.Type,
		}

		if info, err := os.Stat(resolved); err == nil && !info.IsDir() {
			status.Exists = true
		}

		result.Checked++
		result.CheckedFiles = append(result.CheckedFiles, status)
		if !status.Exists {
			result.Missing = append(result.Missing, status)
		}
	}

	result.Valid = len(result.Missing) == 0
	return result
}
