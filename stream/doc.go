// Package stream provides append-only buffers for captured output streams.
//
// A [Buffer] plays the role of one standard stream (stdout or stderr) for
// code that runs without a real process: everything written to it
// accumulates in order until [Buffer.Reset] truncates it. Reads are
// snapshots; they never consume what was captured.
//
// # Permissive Decoding
//
// Captured bytes are not guaranteed to be valid UTF-8. [Buffer.String]
// therefore decodes permissively: byte sequences that are not valid UTF-8
// become the Unicode replacement character (U+FFFD) rather than an error,
// so callers always receive well-formed text.
//
//	var buf stream.Buffer
//	fmt.Fprintln(&buf, "hello")
//	text := buf.String() // "hello\n"
package stream
