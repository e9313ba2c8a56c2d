package screen

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
)

// lockProbe records whether the screen lock was held during each write
type lockProbe struct {
	s    *Screen
	held []bool
}

func (p *lockProbe) Write(b []byte) (int, error) {
	free := p.s.mu.TryLock()
	if free {
		p.s.mu.Unlock()
	}
	p.held = append(p.held, !free)
	return len(b), nil
}

func TestWriteRawLockScoping(t *testing.T) {
	probe := &lockProbe{}
	s := NewWriter(probe)
	probe.s = s

	for i := 0; i < 3; i++ {
		if _, err := s.WriteRaw([]byte("x")); err != nil {
			t.Fatalf("WriteRaw: %v", err)
		}
		// Lock must be released again after every operation
		if !s.mu.TryLock() {
			t.Fatalf("lock still held after WriteRaw %d", i)
		}
		s.mu.Unlock()
	}

	if len(probe.held) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(probe.held))
	}
	for i, held := range probe.held {
		if !held {
			t.Errorf("write %d performed without holding the screen lock", i)
		}
	}
}

func TestWriteRawSerialized(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf)

	const writers = 8
	const repeats = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			token := bytes.Repeat([]byte{byte('a' + id)}, 4)
			for i := 0; i < repeats; i++ {
				s.WriteRaw(token)
			}
		}(w)
	}
	wg.Wait()

	out := buf.Bytes()
	if len(out) != writers*repeats*4 {
		t.Fatalf("expected %d bytes, got %d", writers*repeats*4, len(out))
	}
	// Each 4-byte token must be homogeneous: no interleaving mid-write
	for i := 0; i < len(out); i += 4 {
		for j := 1; j < 4; j++ {
			if out[i+j] != out[i] {
				t.Fatalf("interleaved write at offset %d: %q", i, out[i:i+4])
			}
		}
	}
}

func TestExclusiveReleasesOnPanic(t *testing.T) {
	s := NewWriter(nil)

	func() {
		defer func() { recover() }()
		s.Exclusive(func() { panic(fmt.Errorf("boom")) })
	}()

	if !s.mu.TryLock() {
		t.Fatal("lock leaked after panic inside Exclusive")
	}
	s.mu.Unlock()
}

func TestNilWriterSwallowsOutput(t *testing.T) {
	s := NewWriter(nil)
	n, err := s.WriteRaw([]byte("\x1b[31m"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 bytes written, got %d", n)
	}
	if s.Writable() {
		t.Error("nil-writer screen reports Writable")
	}
}

func TestWriterBackedScreen(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf)

	if s.File() != nil {
		t.Error("writer-backed screen exposes a console file")
	}
	if s.IsTerminal() {
		t.Error("writer-backed screen reports IsTerminal")
	}
	if !s.Writable() {
		t.Error("writer-backed screen not Writable")
	}

	s.WriteRaw([]byte("abc"))
	if buf.String() != "abc" {
		t.Errorf("expected %q, got %q", "abc", buf.String())
	}
}
