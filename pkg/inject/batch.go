package inject

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fulmenhq/webman/pkg/safeio"
)

// Outcome classifies the result of processing one page file.
type Outcome string

const (
	OutcomeInjected Outcome = "injected"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeError    Outcome = "error"
)

// FileDetail records the outcome for one processed file.
type FileDetail struct {
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message,omitempty"`
}

// FileError records a failure for one file or directory.
type FileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result aggregates a batch run. Failures are isolated per file: a single
// bad file never halts the batch.
type Result struct {
	Injected int          `json:"injected"`
	Skipped  int          `json:"skipped"`
	Errors   []FileError  `json:"errors,omitempty"`
	Details  []FileDetail `json:"details,omitempty"`
}

// Options configures a batch run.
type Options struct {
	ManifestName   string
	UseCredentials bool
	Extensions     []string // without leading dot; defaults to html, htm
	Exclude        []string // doublestar patterns relative to the root
	NoOp           bool     // process but never write
}

// Processor applies Upsert to every matching file under a directory tree.
type Processor struct {
	opts       Options
	extensions map[string]bool
}

// NewProcessor returns a Processor for the given options.
func NewProcessor(opts Options) *Processor {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{"html", "htm"}
	}
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(e, ".")))
		if e != "" {
			extSet[e] = true
		}
	}
	return &Processor{opts: opts, extensions: extSet}
}

// ProcessDirectory walks dir recursively and synchronizes the manifest
// link in every file whose extension matches. A missing directory is
// nothing to do, not a failure. Files are processed sequentially in
// enumeration order; no ordering between files is guaranteed.
func (p *Processor) ProcessDirectory(dir string) Result {
	result := Result{}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return result
	}

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Enumeration failure: recorded once at the directory level.
			result.Errors = append(result.Errors, FileError{Path: path, Message: err.Error()})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !p.matches(dir, path) {
			return nil
		}
		p.processFile(dir, path, &result)
		return nil
	})

	return result
}

func (p *Processor) matches(root, path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !p.extensions[ext] {
		return false
	}
	if len(p.opts.Exclude) == 0 {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return true
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range p.opts.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	return true
}

func (p *Processor) processFile(root, path string, result *Result) {
	data, err := safeio.ReadFileContained(root, path)
	if err != nil {
		result.Errors = append(result.Errors, FileError{Path: path, Message: err.Error()})
		result.Details = append(result.Details, FileDetail{Path: path, Outcome: OutcomeError, Message: err.Error()})
		return
	}

	updated, changed := Upsert(string(data), p.opts.ManifestName, p.opts.UseCredentials)
	if !changed {
		result.Skipped++
		result.Details = append(result.Details, FileDetail{Path: path, Outcome: OutcomeSkipped})
		return
	}

	if !p.opts.NoOp {
		if err := safeio.WriteFilePreservePerms(path, []byte(updated)); err != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Message: err.Error()})
			result.Details = append(result.Details, FileDetail{Path: path, Outcome: OutcomeError, Message: err.Error()})
			return
		}
	}

	result.Injected++
	result.Details = append(result.Details, FileDetail{Path: path, Outcome: OutcomeInjected})
}
