// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

// Package affected copies the workspace files named by a report's issues
// into a separate folder, so findings can be inspected after the workspace
// is gone. Copies are named by the digest of the source file name, keeping
// the folder flat regardless of the original directory layout.
package affected

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/logsieve/logsieve-core/issue"
	"github.com/logsieve/logsieve-core/logging"
)

// FolderName is the conventional sub-folder for copied files.
const FolderName = "files-with-issues"

// Stats counts the outcomes of one collection run.
type Stats struct {
	Copied         int
	NotFound       int
	NotInWorkspace int
	Errors         int
}

// Collector copies files referenced by issues out of a workspace. Files
// outside the workspace (or the configured extra source directories) are
// never copied.
type Collector struct {
	workspace string
	sources   []string
	logger    *slog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithSourceDirectories permits copying from additional directories besides
// the workspace.
func WithSourceDirectories(dirs ...string) Option {
	return func(c *Collector) {
		c.sources = append(c.sources, dirs...)
	}
}

// WithLogger sets the logger for per-file diagnostics. The default discards
// them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// NewCollector creates a collector rooted at the given workspace directory.
// Relative file names in issues are resolved against it.
func NewCollector(workspace string, opts ...Option) (*Collector, error) {
	abs, err := filepath.Abs(workspace)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace %q: %w", workspace, err)
	}

	c := &Collector{
		workspace: abs,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for i, dir := range c.sources {
		if c.sources[i], err = filepath.Abs(dir); err != nil {
			return nil, fmt.Errorf("resolving source directory %q: %w", dir, err)
		}
	}
	return c, nil
}

// Copy copies every file named by the report's issues into destDir and
// appends a summary line to the report's info log. Per-file problems never
// abort the run: missing files, files outside the permitted directories and
// I/O failures are counted, the last of them also recorded in the report's
// error log.
func (c *Collector) Copy(rep *issue.Report, destDir string) (Stats, error) {
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return Stats{}, fmt.Errorf("creating affected files folder: %w", err)
	}

	var stats Stats
	for _, file := range rep.Files() {
		if file == issue.UndefinedFileName || file == "" {
			continue
		}

		src := c.resolve(file)
		if _, err := os.Stat(src); err != nil {
			stats.NotFound++
			c.logger.Debug("affected file not found", "file", file)
			continue
		}
		if !c.isPermitted(src) {
			stats.NotInWorkspace++
			c.logger.Debug("affected file outside workspace", "file", file)
			continue
		}

		if err := copyFile(src, filepath.Join(destDir, TempName(file))); err != nil {
			stats.Errors++
			rep.LogError("copying affected file %q failed: %v", file, err)
			c.logger.Error("copying affected file failed", "file", file, "error", err)
			continue
		}
		stats.Copied++
	}

	rep.LogInfo("-> %d copied, %d not in workspace, %d not-found, %d with I/O error",
		stats.Copied, stats.NotInWorkspace, stats.NotFound, stats.Errors)
	return stats, nil
}

// resolve turns an issue file name into an absolute path, interpreting
// relative names against the workspace.
func (c *Collector) resolve(file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	return filepath.Join(c.workspace, file)
}

// isPermitted reports whether path lies under the workspace or one of the
// extra source directories. Copying files from anywhere else is prohibited.
func (c *Collector) isPermitted(path string) bool {
	for _, root := range append([]string{c.workspace}, c.sources...) {
		if path == root || strings.HasPrefix(path, root+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	// #nosec G304 - src is confined to the workspace, dst to the dest folder
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o600)
}

// TempName returns the flat file name a source file is stored under: the
// digest of its name, not its contents, so the same file always lands in the
// same place.
func TempName(fileName string) string {
	return digest.FromString(fileName).Encoded() + ".tmp"
}

// Path returns where a copied file lives inside an affected-files folder.
func Path(destDir, fileName string) string {
	return filepath.Join(destDir, TempName(fileName))
}

// Has reports whether a copy of the file exists in the affected-files folder
// and is readable.
func Has(destDir, fileName string) bool {
	f, err := os.Open(Path(destDir, fileName))
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
