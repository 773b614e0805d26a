package eval

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    Form
	}{
		{"empty string", "", Form{Kind: KindEmpty}},
		{"whitespace only", "  \n\t  ", Form{Kind: KindEmpty}},
		{"print with parens", "print!(hello)", Form{Kind: KindPrint, Payload: "hello"}},
		{"println with parens", "println!(hello)", Form{Kind: KindPrint, Payload: "hello"}},
		{"empty parens", "println!()", Form{Kind: KindPrint, Payload: ""}},
		{"bare marker", "print!", Form{Kind: KindPrint, Payload: ""}},
		{"nested parens keep inner layer", "print!((nested))", Form{Kind: KindPrint, Payload: "(nested)"}},
		{"unclosed paren", "print!(open", Form{Kind: KindPrint, Payload: "open"}},
		{"unopened paren", "print!hello)", Form{Kind: KindPrint, Payload: "hello"}},
		{"space before parens kept", "print! (hello)", Form{Kind: KindPrint, Payload: " (hello"}},
		{"surrounding whitespace trimmed", "  println!(hi)  ", Form{Kind: KindPrint, Payload: "hi"}},
		{"multiline payload", "print!(a\nb)", Form{Kind: KindPrint, Payload: "a\nb"}},
		{"expression echoes", "x + 1", Form{Kind: KindEcho, Payload: "x + 1"}},
		{"expression trimmed", "  x + 1  ", Form{Kind: KindEcho, Payload: "x + 1"}},
		{"marker not at start", "say print!(hi)", Form{Kind: KindEcho, Payload: "say print!(hi)"}},
		{"marker-like word", "printing", Form{Kind: KindEcho, Payload: "printing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.snippet)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.snippet, got, tt.want)
			}
		})
	}
}

func TestClassify_MarkersMatchLongestFirst(t *testing.T) {
	// println! must win over its print! prefix so the payload does not
	// start with "ln!".
	got := Classify("println!(hello)")
	if got.Payload != "hello" {
		t.Errorf("expected payload 'hello', got %q", got.Payload)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "empty"},
		{KindPrint, "print"},
		{KindEcho, "echo"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
