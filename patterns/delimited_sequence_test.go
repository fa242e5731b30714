package patterns

import (
	"testing"

	"github.com/reusee/toklex/lexing"
)

func identifiersOnly(tok *lexing.Token) bool {
	return tok.Kind == lexing.TokenIdentifier
}

func TestDelimitedSequence(t *testing.T) {
	stream := streamOf(t, "a,b,c")

	match, err := NewDelimitedSequence(identifiersOnly, nil).Match(stream)
	if err != nil {
		t.Fatal(err)
	}
	if !match.Matched {
		t.Fatal("expected match")
	}
	expected := []string{"a", "b", "c"}
	if len(match.Groups) != len(expected) {
		t.Fatalf("got %v", match.Groups)
	}
	for i, tok := range match.Groups {
		if tok.Value != expected[i] {
			t.Fatalf("token %d: got %v", i, tok)
		}
	}
}

func TestDelimitedSequenceTrailingDelimiter(t *testing.T) {
	stream := streamOf(t, "a,b,c,")

	match, err := NewDelimitedSequence(identifiersOnly, nil).Match(stream)
	if err != nil {
		t.Fatal(err)
	}
	if !match.Matched {
		t.Fatal("expected match")
	}
	if len(match.Groups) != 3 {
		t.Fatalf("got %v", match.Groups)
	}
	// the trailing delimiter is consumed
	if tok := stream.Peek(); tok.Kind != lexing.TokenEOF {
		t.Fatalf("got %v", tok)
	}
}

func TestDelimitedSequenceStopsAtNonElement(t *testing.T) {
	stream := streamOf(t, "a,b,1,c")

	match, err := NewDelimitedSequence(identifiersOnly, nil).Match(stream)
	if err != nil {
		t.Fatal(err)
	}
	if len(match.Groups) != 2 {
		t.Fatalf("got %v", match.Groups)
	}
	// stops at the rejected element
	if tok := stream.Peek(); tok.Value != "1" {
		t.Fatalf("got %v", tok)
	}
}

func TestDelimitedSequenceEmpty(t *testing.T) {
	stream := streamOf(t, ";")

	match, err := NewDelimitedSequence(identifiersOnly, nil).Match(stream)
	if err != nil {
		t.Fatal(err)
	}
	if !match.Matched {
		t.Fatal("an empty capture is still a match")
	}
	if len(match.Groups) != 0 {
		t.Fatalf("got %v", match.Groups)
	}
	if tok := stream.Peek(); tok.Value != ";" {
		t.Fatalf("got %v", tok)
	}
}

func TestDelimitedSequenceDefaultFilter(t *testing.T) {
	stream := streamOf(t, "a,1")

	match, err := NewDelimitedSequence(nil, nil).Match(stream)
	if err != nil {
		t.Fatal(err)
	}
	if len(match.Groups) != 2 {
		t.Fatalf("got %v", match.Groups)
	}
}

func TestDelimitedSequenceNoDelimiter(t *testing.T) {
	stream := streamOf(t, "a b")

	match, err := NewDelimitedSequence(identifiersOnly, nil).Match(stream)
	if err != nil {
		t.Fatal(err)
	}
	// stops after the first element: the next token is not the delimiter
	if len(match.Groups) != 1 || match.Groups[0].Value != "a" {
		t.Fatalf("got %v", match.Groups)
	}
	if tok := stream.Peek(); tok.Value != "b" {
		t.Fatalf("got %v", tok)
	}
}
