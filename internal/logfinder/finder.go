// Package logfinder locates ngStats log directories and local log files.
package logfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EnvLogDir is the environment variable name for specifying the log directory.
const EnvLogDir = "NGLOG_DIR"

// logPatterns are the file name patterns local-variant logs are written
// under. Games name logs like "netgame_2001-05-12.log"; tooling-exported
// copies often carry a trailing ".txt".
var logPatterns = []string{"*.log", "*.log.txt"}

// Sentinel errors.
var (
	ErrLogDirNotFound = errors.New("log directory not found")
	ErrNoLogFiles     = errors.New("no log files found")
)

// DefaultLogDirs returns candidate log directories in priority order.
// Games that record ngLog files conventionally keep the local copies in
// a NetGamesLocal directory; the working directory is the fallback.
func DefaultLogDirs() []string {
	wd, err := os.Getwd()
	if err != nil {
		return []string{"NetGamesLocal"}
	}
	return []string{
		filepath.Join(wd, "NetGamesLocal"),
		wd,
	}
}

// FindLogDir returns the directory holding local-variant ngLog files.
//
// Priority:
//  1. explicit (if non-empty)
//  2. NGLOG_DIR environment variable
//  3. Auto-detect from DefaultLogDirs()
//
// Returns ErrLogDirNotFound if no valid directory is found.
// The returned path has symlinks resolved for consistency.
func FindLogDir(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveAndValidateLogDir(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: specified directory is invalid or contains no log files", ErrLogDirNotFound)
	}

	if envDir := os.Getenv(EnvLogDir); envDir != "" {
		if resolved := resolveAndValidateLogDir(envDir); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to invalid directory", ErrLogDirNotFound, EnvLogDir)
	}

	for _, dir := range DefaultLogDirs() {
		if resolved := resolveAndValidateLogDir(dir); resolved != "" {
			return resolved, nil
		}
	}

	return "", ErrLogDirNotFound
}

// LogFiles returns all ngLog files in the directory, sorted by
// modification time (oldest first).
//
// Returns ErrNoLogFiles if no log files are found.
func LogFiles(dir string) ([]string, error) {
	matches, err := globLogs(dir)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoLogFiles
	}

	type fileInfo struct {
		path    string
		modTime int64
	}
	files := make([]fileInfo, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue // Skip files we can't stat
		}
		files = append(files, fileInfo{path: path, modTime: info.ModTime().UnixNano()})
	}
	if len(files) == 0 {
		return nil, ErrNoLogFiles
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime < files[j].modTime
	})

	result := make([]string, len(files))
	for i, f := range files {
		result[i] = f.path
	}
	return result, nil
}

// FindLatestLogFile returns the path to the most recently modified
// ngLog file in the given directory.
//
// Returns ErrNoLogFiles if no log files are found.
func FindLatestLogFile(dir string) (string, error) {
	files, err := LogFiles(dir)
	if err != nil {
		return "", err
	}
	return files[len(files)-1], nil
}

// globLogs matches every log file pattern in dir.
func globLogs(dir string) ([]string, error) {
	var matches []string
	for _, pattern := range logPatterns {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("globbing log files: %w", err)
		}
		matches = append(matches, m...)
	}
	return matches, nil
}

// resolveAndValidateLogDir resolves symlinks and validates the directory.
// Returns the resolved path if it exists and holds at least one log
// file, empty string otherwise.
func resolveAndValidateLogDir(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		// Fallback to the original path if symlink resolution fails
		resolved = dir
	}

	matches, err := globLogs(resolved)
	if err != nil || len(matches) == 0 {
		return ""
	}
	return resolved
}
