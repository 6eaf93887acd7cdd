package nglog_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nglog/nglog-go/pkg/nglog"
)

// encodeWorld builds a world-variant buffer from plain text: every
// original byte b becomes the pair (b^key, key), which Decode's
// pairwise XOR restores.
func encodeWorld(plain []byte, key byte) []byte {
	out := make([]byte, 0, len(plain)*2)
	for _, b := range plain {
		out = append(out, b^key, key)
	}
	return out
}

func TestParseText_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "terminated input reproduced",
			text: "0.0\tgame\tGameStart\n1.5\tplayer\tConnect\tPlayer\t0\n",
			want: "0.0\tgame\tGameStart\n1.5\tplayer\tConnect\tPlayer\t0\n",
		},
		{
			name: "unterminated last line gains terminator",
			text: "1.5\tFOO\tBAR\tbaz\tqux",
			want: "1.5\tFOO\tBAR\tbaz\tqux\n",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := nglog.ParseText(tt.text)
			if err != nil {
				t.Fatalf("ParseText() error = %v", err)
			}
			if got := log.String(); got != tt.want {
				t.Errorf("serialize(parse(%q)) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseEventLine_ClassBoundary(t *testing.T) {
	twoFields, err := nglog.ParseEventLine("1.5\tBAR")
	if err != nil {
		t.Fatalf("ParseEventLine() error = %v", err)
	}
	if twoFields.HasClass {
		t.Error("two-field line has a class")
	}
	if twoFields.ID != "BAR" {
		t.Errorf("ID = %q, want %q", twoFields.ID, "BAR")
	}

	threeFields, err := nglog.ParseEventLine("1.5\tFOO\tBAR")
	if err != nil {
		t.Fatalf("ParseEventLine() error = %v", err)
	}
	if !threeFields.HasClass || threeFields.Class != "FOO" {
		t.Errorf("Class = (%q, %v), want (%q, true)", threeFields.Class, threeFields.HasClass, "FOO")
	}
	if len(threeFields.Params) != 0 {
		t.Errorf("Params = %v, want empty", threeFields.Params)
	}
}

func TestParseLocal_InvalidUTF8(t *testing.T) {
	_, err := nglog.ParseLocal([]byte{'1', '.', '5', '\t', 'A', 0x80})
	if err == nil {
		t.Fatal("ParseLocal() expected error for invalid UTF-8")
	}
	if !errors.Is(err, nglog.ErrInvalidEncoding) {
		t.Errorf("ParseLocal() error = %v, want %v", err, nglog.ErrInvalidEncoding)
	}
}

func TestParseWorld_EndToEnd(t *testing.T) {
	const plain = "2.0\tA\tB"

	encoded := encodeWorld([]byte(plain), 0x2a)
	fromWorld, err := nglog.ParseWorld(encoded)
	if err != nil {
		t.Fatalf("ParseWorld() error = %v", err)
	}

	fromText, err := nglog.ParseText(plain)
	if err != nil {
		t.Fatalf("ParseText() error = %v", err)
	}

	if len(fromWorld.Events) != 1 || len(fromText.Events) != 1 {
		t.Fatalf("event counts = %d and %d, want 1 and 1", len(fromWorld.Events), len(fromText.Events))
	}

	got, want := fromWorld.Events[0], fromText.Events[0]
	if got.Timestamp != want.Timestamp || got.Class != want.Class ||
		got.HasClass != want.HasClass || got.ID != want.ID {
		t.Errorf("world event = %+v, want %+v", got, want)
	}
}

func TestParseWorld_OddLength(t *testing.T) {
	for _, n := range []int{1, 3, 5, 101} {
		_, err := nglog.ParseWorld(bytes.Repeat([]byte{0x00}, n))
		if !errors.Is(err, nglog.ErrMalformedInput) {
			t.Errorf("ParseWorld() with length %d error = %v, want %v", n, err, nglog.ErrMalformedInput)
		}
	}
}

func TestParseWorld_InvalidUTF8AfterDecode(t *testing.T) {
	// Decodes to a lone continuation byte
	_, err := nglog.ParseWorld([]byte{0x80, 0x00})
	if !errors.Is(err, nglog.ErrInvalidEncoding) {
		t.Errorf("ParseWorld() error = %v, want %v", err, nglog.ErrInvalidEncoding)
	}
}

func TestDecodeWorld(t *testing.T) {
	decoded, err := nglog.DecodeWorld(encodeWorld([]byte("2.0\tA\tB"), 0x2a))
	if err != nil {
		t.Fatalf("DecodeWorld() error = %v", err)
	}
	if string(decoded) != "2.0\tA\tB" {
		t.Errorf("DecodeWorld() = %q, want %q", decoded, "2.0\tA\tB")
	}
}

func TestParseReaders(t *testing.T) {
	const plain = "1.5\tplayer\tConnect\tPlayer\t0\n"

	local, err := nglog.ParseLocalReader(bytes.NewReader([]byte(plain)))
	if err != nil {
		t.Fatalf("ParseLocalReader() error = %v", err)
	}
	if len(local.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(local.Events))
	}

	world, err := nglog.ParseWorldReader(bytes.NewReader(encodeWorld([]byte(plain), 0x42)))
	if err != nil {
		t.Fatalf("ParseWorldReader() error = %v", err)
	}
	if world.String() != local.String() {
		t.Errorf("world log = %q, want %q", world.String(), local.String())
	}
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	const plain = "0.0\tgame\tGameStart\n1.5\tplayer\tConnect\tPlayer\t0\n"

	localPath := filepath.Join(dir, "netgame_local.log")
	if err := os.WriteFile(localPath, []byte(plain), 0644); err != nil {
		t.Fatal(err)
	}
	worldPath := filepath.Join(dir, "netgame_world.log")
	if err := os.WriteFile(worldPath, encodeWorld([]byte(plain), 0x2a), 0644); err != nil {
		t.Fatal(err)
	}

	local, err := nglog.ParseLocalFile(localPath)
	if err != nil {
		t.Fatalf("ParseLocalFile() error = %v", err)
	}
	world, err := nglog.ParseWorldFile(worldPath)
	if err != nil {
		t.Fatalf("ParseWorldFile() error = %v", err)
	}

	if local.String() != plain {
		t.Errorf("local log = %q, want %q", local.String(), plain)
	}
	if world.String() != plain {
		t.Errorf("world log = %q, want %q", world.String(), plain)
	}
}

func TestParseText_FailFastLineNumber(t *testing.T) {
	_, err := nglog.ParseText("1.0\tA\nbad\n")
	if err == nil {
		t.Fatal("ParseText() expected error")
	}

	var lineErr *nglog.LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("ParseText() error = %T, want *nglog.LineError", err)
	}
	if lineErr.Line != 2 {
		t.Errorf("LineError.Line = %d, want 2", lineErr.Line)
	}
}
