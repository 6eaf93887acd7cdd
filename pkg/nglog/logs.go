package nglog

import "github.com/nglog/nglog-go/internal/logfinder"

// EnvLogDir is the environment variable consulted by FindLogDir when no
// explicit directory is given.
const EnvLogDir = logfinder.EnvLogDir

// FindLogDir returns the directory holding local-variant ngLog files.
//
// Priority:
//  1. explicit (if non-empty)
//  2. the NGLOG_DIR environment variable
//  3. conventional NetGamesLocal locations, then the working directory
//
// Returns ErrLogDirNotFound if no valid directory is found.
func FindLogDir(explicit string) (string, error) {
	return logfinder.FindLogDir(explicit)
}

// LogFiles returns all ngLog files in dir, sorted by modification time
// (oldest first). Returns ErrNoLogFiles when the directory holds none.
func LogFiles(dir string) ([]string, error) {
	return logfinder.LogFiles(dir)
}

// FindLatestLogFile returns the most recently modified ngLog file in
// dir. Returns ErrNoLogFiles when the directory holds none.
func FindLatestLogFile(dir string) (string, error) {
	return logfinder.FindLatestLogFile(dir)
}
