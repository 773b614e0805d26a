package stream

import (
	"fmt"
	"io"
	"testing"
)

func TestBuffer_Interface(t *testing.T) {
	t.Helper()
	// Verify Buffer satisfies the writer interfaces used by callers
	var _ io.Writer = (*Buffer)(nil)
	var _ io.StringWriter = (*Buffer)(nil)
}

func TestBuffer_ZeroValue(t *testing.T) {
	var buf Buffer
	if buf.Len() != 0 {
		t.Errorf("expected empty buffer, got %d bytes", buf.Len())
	}
	if buf.String() != "" {
		t.Errorf("expected empty string, got %q", buf.String())
	}
	if len(buf.Bytes()) != 0 {
		t.Errorf("expected no bytes, got %v", buf.Bytes())
	}
}

func TestBuffer_WriteAppends(t *testing.T) {
	var buf Buffer
	n, err := buf.Write([]byte("hello "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 {
		t.Errorf("expected 6 bytes written, got %d", n)
	}
	if _, err := buf.Write([]byte("world")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "hello world" {
		t.Errorf("expected 'hello world', got %q", got)
	}
}

func TestBuffer_WriteString(t *testing.T) {
	var buf Buffer
	n, err := buf.WriteString("line\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}
	if buf.String() != "line\n" {
		t.Errorf("expected 'line\\n', got %q", buf.String())
	}
}

func TestBuffer_BytesReturnsCopy(t *testing.T) {
	var buf Buffer
	if _, err := buf.WriteString("abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := buf.Bytes()
	snap[0] = 'x'
	if buf.String() != "abc" {
		t.Errorf("mutating snapshot changed buffer: %q", buf.String())
	}
}

func TestBuffer_ReadDoesNotConsume(t *testing.T) {
	var buf Buffer
	if _, err := buf.WriteString("stable"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := buf.String()
	second := buf.String()
	if first != second {
		t.Errorf("repeated reads differ: %q then %q", first, second)
	}
	if buf.Len() != 6 {
		t.Errorf("read consumed buffer, %d bytes left", buf.Len())
	}
}

func TestBuffer_Reset(t *testing.T) {
	var buf Buffer
	if _, err := buf.WriteString("old output"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buf.Reset()
	if buf.Len() != 0 {
		t.Errorf("expected empty buffer after reset, got %d bytes", buf.Len())
	}
	if _, err := buf.WriteString("new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "new" {
		t.Errorf("expected 'new', got %q", buf.String())
	}
}

func TestBuffer_String_InvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"single invalid byte", []byte{0xff}, "�"},
		{"invalid byte after text", []byte("ok\xff"), "ok�"},
		{"invalid byte between text", []byte("a\xffb"), "a�b"},
		{"two invalid bytes", []byte{0xff, 0xfe}, "��"},
		{"valid multibyte preserved", []byte("héllo"), "héllo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf Buffer
			if _, err := buf.Write(tt.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuffer_FprintfCompatible(t *testing.T) {
	var buf Buffer
	fmt.Fprintf(&buf, "%s=%d\n", "answer", 42)
	if buf.String() != "answer=42\n" {
		t.Errorf("expected 'answer=42\\n', got %q", buf.String())
	}
}
