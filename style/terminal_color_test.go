package style

import (
	"bytes"
	"testing"

	"github.com/lixenwraith/termstyle/screen"
)

// countWriter records every serialized write separately
type countWriter struct {
	writes [][]byte
}

func (w *countWriter) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	w.writes = append(w.writes, cp)
	return len(p), nil
}

func TestFacadeSelectsAnsiForWriterScreen(t *testing.T) {
	var buf bytes.Buffer
	ct := New(screen.NewWriter(&buf), ColorMode256)

	if ct.backend == nil {
		t.Fatal("expected a backend for a writable screen")
	}
	if _, ok := ct.backend.(*ansiBackend); !ok {
		t.Fatalf("expected escape-sequence backend, got %T", ct.backend)
	}
}

func TestFacadeThreeDistinctMutations(t *testing.T) {
	w := &countWriter{}
	ct := New(screen.NewWriter(w), ColorMode256)

	ct.SetFg(Red)
	ct.Reset()
	ct.SetBg(Blue)

	if len(w.writes) != 3 {
		t.Fatalf("expected exactly 3 serialized mutations, got %d", len(w.writes))
	}
	want := []string{"\x1b[91m", "\x1b[0m", "\x1b[104m"}
	for i, seq := range want {
		if string(w.writes[i]) != seq {
			t.Errorf("mutation %d: got %q, want %q", i, w.writes[i], seq)
		}
	}
}

func TestFacadeWithoutBackendIsSilent(t *testing.T) {
	// A screen with no destination yields the degraded, no-backend state
	ct := New(screen.NewWriter(nil), ColorMode256)

	if ct.backend != nil {
		t.Fatalf("expected degraded facade, got backend %T", ct.backend)
	}

	// Every operation must be a silent no-op
	ct.SetFg(Red)
	ct.SetBg(Parse("blue"))
	ct.Reset()
	ct.SetFg(Reset)

	if got := ct.AvailableColorCount(); got != 8 && got != 256 {
		t.Errorf("capability query unavailable on degraded facade: %d", got)
	}
}

func TestFacadeOrderIndependent(t *testing.T) {
	// fg/bg/reset in any order leave no hidden mode state behind
	run := func(ops []func(*TerminalColor)) []byte {
		var buf bytes.Buffer
		ct := New(screen.NewWriter(&buf), ColorMode256)
		for _, op := range ops {
			op(ct)
		}
		return buf.Bytes()
	}

	fg := func(ct *TerminalColor) { ct.SetFg(Cyan) }
	bg := func(ct *TerminalColor) { ct.SetBg(Grey) }
	rs := func(ct *TerminalColor) { ct.Reset() }

	a := run([]func(*TerminalColor){fg, bg, rs})
	b := append(append([]byte{}, run([]func(*TerminalColor){fg})...),
		append(run([]func(*TerminalColor){bg}), run([]func(*TerminalColor){rs})...)...)

	if !bytes.Equal(a, b) {
		t.Errorf("sequence output %q differs from composed output %q", a, b)
	}
}

func TestAvailableColorCount(t *testing.T) {
	tests := []struct {
		name string
		term string
		want int
	}{
		{"Extended palette", "xterm-256color", 256},
		{"Screen extended", "screen-256color", 256},
		{"Base xterm", "xterm", 8},
		{"Unset", "", 8},
		{"Unrecognized", "dumb", 8},
	}

	ct := New(screen.NewWriter(nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERM", tt.term)
			if got := ct.AvailableColorCount(); got != tt.want {
				t.Errorf("TERM=%q: got %d, want %d", tt.term, got, tt.want)
			}
		})
	}
}
