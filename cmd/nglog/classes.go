package main

import (
	"fmt"
	"strings"

	"github.com/nglog/nglog-go/pkg/nglog/event"
)

// KnownClassNames returns the conventional ngLog event class names,
// sorted. Used for shell completion; classes in the format itself are
// free-form, so unknown names are still accepted by the filter flags.
func KnownClassNames() []string {
	return event.KnownClasses()
}

// NormalizeClasses trims and dedupes CLI class values. Classes are
// matched case-sensitively against the log, so no case folding is done;
// only empty entries are rejected.
func NormalizeClasses(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})

	for _, raw := range values {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("empty event class provided (input: %q)", raw)
		}
		if _, dup := seen[name]; dup {
			continue // ignore duplicates silently
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result, nil
}

// RejectOverlap returns an error if any class is in both includes and excludes.
func RejectOverlap(includes, excludes []string) error {
	ex := make(map[string]struct{}, len(excludes))
	for _, c := range excludes {
		ex[c] = struct{}{}
	}
	for _, c := range includes {
		if _, ok := ex[c]; ok {
			return fmt.Errorf("event class %q cannot be both included and excluded", c)
		}
	}
	return nil
}
