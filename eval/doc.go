// Package eval classifies snippets into recognized statement forms and
// evaluates them against captured output streams.
//
// The package defines the [Engine] seam between a runtime instance and the
// logic that decides what a snippet means:
//
//   - [Classify] turns snippet text into a [Form]
//   - [StatementEngine] is the default engine over the built-in forms
//   - [Console] is the output environment an engine writes through
//   - [Register] names engines so hosts can select them by configuration
//
// # Statement Forms
//
// The default engine recognizes three forms. A snippet that trims to
// nothing is empty and produces no output. A snippet beginning with
// "print!" or "println!" emits the marker's argument text: one layer of
// surrounding parentheses is stripped and a newline is appended. Both
// spellings behave identically. Anything else echoes back the trimmed
// snippet followed by a newline.
//
//	print!(hello)    stdout "hello\n", status 0
//	println!(hi)     stdout "hi\n", status 0
//	x + 1            stdout "x + 1\n", status 0
//
// # Failure Path
//
// Every built-in form succeeds. The [Engine] error return and [EvalError]
// exist for engines whose forms can fail; the runtime converts such errors
// into stderr text and exit status 1 rather than letting them escape.
//
// # Custom Engines
//
// Engines register by name, typically from an init function:
//
//	eval.Register("mylang", myEngine)
//
// Hosts resolve names via [Lookup] and fall back to [Default].
package eval
