package stream_test

import (
	"fmt"

	"github.com/jonwraymond/snipexec/stream"
)

func ExampleBuffer() {
	var buf stream.Buffer
	fmt.Fprintln(&buf, "hello")
	fmt.Fprintln(&buf, "world")

	fmt.Print(buf.String())
	// Output:
	// hello
	// world
}

func ExampleBuffer_Reset() {
	var buf stream.Buffer
	fmt.Fprintln(&buf, "first run")
	buf.Reset()
	fmt.Fprintln(&buf, "second run")

	fmt.Print(buf.String())
	// Output:
	// second run
}

func ExampleBuffer_String() {
	var buf stream.Buffer
	buf.Write([]byte{'o', 'k', 0xff})

	fmt.Println(buf.String() == "ok�")
	// Output:
	// true
}
