package event

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{
			name: "no class no params",
			ev:   New("1.5", "BAR"),
			want: "1.5\tBAR",
		},
		{
			name: "class no params",
			ev:   NewWithClass("1.5", "FOO", "BAR"),
			want: "1.5\tFOO\tBAR",
		},
		{
			name: "class and params",
			ev:   NewWithClass("1.5", "FOO", "BAR", "baz", "qux"),
			want: "1.5\tFOO\tBAR\tbaz\tqux",
		},
		{
			name: "params without class",
			ev:   New("1.5", "BAR", "baz"),
			want: "1.5\tBAR\tbaz",
		},
		{
			name: "empty fields render empty",
			ev:   New("", ""),
			want: "\t",
		},
		{
			name: "present empty class still rendered",
			ev:   NewWithClass("1.5", "", "BAR"),
			want: "1.5\t\tBAR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogString(t *testing.T) {
	log := Log{Events: []Event{
		NewWithClass("0.0", "game", "GameStart"),
		New("2.0", "B"),
	}}

	want := "0.0\tgame\tGameStart\n2.0\tB\n"
	if got := log.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLogString_Empty(t *testing.T) {
	if got := (Log{}).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestLogString_TerminatesLastLine(t *testing.T) {
	log := Log{Events: []Event{New("1.5", "BAR")}}
	if got := log.String(); !strings.HasSuffix(got, "\n") {
		t.Errorf("String() = %q, want trailing newline", got)
	}
}

func TestEventMarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		ev         Event
		want       string
		wantAbsent []string
	}{
		{
			name:       "class absent is omitted",
			ev:         New("1.5", "BAR"),
			want:       `{"timestamp":"1.5","event_id":"BAR"}`,
			wantAbsent: []string{"event_class", "event_params"},
		},
		{
			name: "present empty class is kept",
			ev:   NewWithClass("1.5", "", "BAR"),
			want: `{"timestamp":"1.5","event_class":"","event_id":"BAR"}`,
		},
		{
			name: "params in order",
			ev:   NewWithClass("1.5", "kill", "K", "0", "1"),
			want: `{"timestamp":"1.5","event_class":"kill","event_id":"K","event_params":["0","1"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ev)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
			for _, key := range tt.wantAbsent {
				if strings.Contains(string(data), key) {
					t.Errorf("Marshal() = %s, want %q absent", data, key)
				}
			}
		})
	}
}

func TestKnownClasses(t *testing.T) {
	classes := KnownClasses()

	if !sort.StringsAreSorted(classes) {
		t.Errorf("KnownClasses() = %v, want sorted", classes)
	}

	found := false
	for _, c := range classes {
		if c == ClassPlayer {
			found = true
		}
	}
	if !found {
		t.Errorf("KnownClasses() = %v, want to contain %q", classes, ClassPlayer)
	}

	// Mutating the returned slice must not affect later calls
	classes[0] = "mutated"
	if KnownClasses()[0] == "mutated" {
		t.Error("KnownClasses() returned shared backing storage")
	}
}

func TestConstructors(t *testing.T) {
	ev := New("1.5", "BAR")
	if ev.HasClass {
		t.Error("New() set HasClass")
	}

	withClass := NewWithClass("1.5", "FOO", "BAR")
	if !withClass.HasClass {
		t.Error("NewWithClass() did not set HasClass")
	}
	if withClass.Class != "FOO" {
		t.Errorf("Class = %q, want %q", withClass.Class, "FOO")
	}
}
