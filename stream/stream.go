package stream

import (
	"io"

	"golang.org/x/text/encoding/unicode"
)

// Buffer is an append-only accumulation of one output stream. Writes
// always land at the end of the buffer and always succeed; nothing
// removes or reorders captured bytes except [Buffer.Reset], which
// truncates the buffer to empty.
//
// The zero value is an empty buffer ready for use. A Buffer is not safe
// for concurrent use; callers sharing one across goroutines must
// serialize access.
type Buffer struct {
	data []byte
}

var _ io.Writer = (*Buffer)(nil)
var _ io.StringWriter = (*Buffer)(nil)

// Write appends p to the buffer. It always returns len(p) and a nil
// error, satisfying io.Writer without a failure path.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString appends s to the buffer. Like [Buffer.Write] it cannot fail.
func (b *Buffer) WriteString(s string) (int, error) {
	b.data = append(b.data, s...)
	return len(s), nil
}

// Len reports the number of captured bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns a copy of the captured bytes. The caller owns the
// returned slice; mutating it does not affect the buffer.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// String returns the captured bytes decoded as UTF-8. Invalid byte
// sequences decode to the Unicode replacement character instead of
// failing, so the result is always well-formed. Reading does not consume
// or alter the buffer.
func (b *Buffer) String() string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b.data)
	if err != nil {
		return string(b.data)
	}
	return string(decoded)
}

// Reset truncates the buffer to empty, retaining allocated capacity for
// reuse.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
