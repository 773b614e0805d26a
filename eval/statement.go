package eval

import "strings"

// Kind classifies a snippet into one of the statement forms the default
// engine recognizes.
type Kind int

const (
	// KindEmpty is a snippet that is empty after trimming whitespace.
	KindEmpty Kind = iota

	// KindPrint is a snippet beginning with one of the print markers.
	// The payload is the call's argument text.
	KindPrint

	// KindEcho is any other snippet. The payload is the trimmed text.
	KindEcho
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPrint:
		return "print"
	case KindEcho:
		return "echo"
	default:
		return "unknown"
	}
}

// printMarkers are the recognized print-style call spellings. Longer
// spellings come first so a snippet matches its longest marker.
var printMarkers = []string{"println!", "print!"}

// Form is the transient classification of one snippet. It is produced and
// consumed within a single evaluation; nothing retains it.
type Form struct {
	// Kind is the recognized statement form.
	Kind Kind

	// Payload is the text the form emits, without the trailing line
	// terminator. Empty for KindEmpty.
	Payload string
}

// Classify inspects a snippet and returns its recognized form.
//
// The snippet is trimmed of leading and trailing whitespace first. An
// empty result is KindEmpty. A snippet beginning with a print marker is
// KindPrint; its payload is the remaining text after a single layer of
// surrounding parentheses is stripped. Every other snippet is KindEcho
// with the trimmed text as payload.
//
// The parenthesis strip is purely textual: the first leading '(' and the
// first trailing ')' are removed independently when present, even if they
// do not pair. Nested or malformed parentheses pass through untouched
// beyond that single strip, and the payload's internal syntax is never
// validated.
func Classify(snippet string) Form {
	trimmed := strings.TrimSpace(snippet)
	if trimmed == "" {
		return Form{Kind: KindEmpty}
	}
	for _, marker := range printMarkers {
		if strings.HasPrefix(trimmed, marker) {
			rest := strings.TrimPrefix(trimmed, marker)
			return Form{Kind: KindPrint, Payload: stripParens(rest)}
		}
	}
	return Form{Kind: KindEcho, Payload: trimmed}
}

// stripParens removes one leading '(' and one trailing ')' when present.
// The two strips are independent; a lone opener or closer is still removed.
func stripParens(s string) string {
	s = strings.TrimPrefix(s, "(")
	return strings.TrimSuffix(s, ")")
}
