package nglog

// Filter selects events by class. Events without a class are keyed by
// the empty string, so including "" selects classless events.
type Filter struct {
	include map[string]struct{}
	exclude map[string]struct{}
}

// NewFilter creates a Filter from include and exclude class lists.
// Returns nil if both slices are empty; a nil *Filter allows everything.
func NewFilter(include, exclude []string) *Filter {
	if len(include) == 0 && len(exclude) == 0 {
		return nil
	}

	f := &Filter{}

	if len(include) > 0 {
		f.include = make(map[string]struct{}, len(include))
		for _, c := range include {
			f.include[c] = struct{}{}
		}
	}

	if len(exclude) > 0 {
		f.exclude = make(map[string]struct{}, len(exclude))
		for _, c := range exclude {
			f.exclude[c] = struct{}{}
		}
	}

	return f
}

// Allows reports whether the event passes the filter.
// If include is non-empty, only listed classes are allowed.
// Excluded classes are always rejected (exclude takes precedence).
func (f *Filter) Allows(ev Event) bool {
	if f == nil {
		return true
	}

	class := ""
	if ev.HasClass {
		class = ev.Class
	}

	if len(f.include) > 0 {
		if _, ok := f.include[class]; !ok {
			return false
		}
	}

	if len(f.exclude) > 0 {
		if _, ok := f.exclude[class]; ok {
			return false
		}
	}

	return true
}

// Apply returns the events of l that pass the filter, preserving order.
// A nil Filter returns the log's events unchanged.
func (f *Filter) Apply(l Log) []Event {
	if f == nil {
		return l.Events
	}
	selected := make([]Event, 0, len(l.Events))
	for _, ev := range l.Events {
		if f.Allows(ev) {
			selected = append(selected, ev)
		}
	}
	return selected
}
