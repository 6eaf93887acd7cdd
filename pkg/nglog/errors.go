package nglog

import (
	"github.com/nglog/nglog-go/internal/logfinder"
	"github.com/nglog/nglog-go/internal/parser"
)

// Sentinel errors returned by this package. Returned errors wrap these;
// match with errors.Is.
var (
	// ErrMalformedInput indicates structurally invalid log content: an
	// odd-length world-variant buffer, or an event line with fewer than
	// two tab-separated fields.
	ErrMalformedInput = parser.ErrMalformedInput

	// ErrInvalidEncoding indicates that a byte sequence presented for
	// interpretation as text is not valid UTF-8, either before or after
	// decoding.
	ErrInvalidEncoding = parser.ErrInvalidEncoding

	// ErrLogDirNotFound is returned when a log directory cannot be
	// found or accessed.
	ErrLogDirNotFound = logfinder.ErrLogDirNotFound

	// ErrNoLogFiles is returned when no log files are found in the
	// specified directory.
	ErrNoLogFiles = logfinder.ErrNoLogFiles
)

// LineError reports the line on which parsing first failed. It wraps
// the underlying ErrMalformedInput error.
type LineError = parser.LineError
