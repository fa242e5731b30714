package patterns

import (
	"errors"
	"testing"

	"github.com/reusee/toklex/lexing"
)

func TestTerminatingSequence(t *testing.T) {
	stream := streamOf(t, "x = 1 ; y")

	match, err := NewTerminatingSequence(nil).Match(stream)
	if err != nil {
		t.Fatal(err)
	}
	if !match.Matched {
		t.Fatal("expected match")
	}
	// everything up to and including the terminator is consumed
	if tok := stream.Peek(); tok.Value != "y" {
		t.Fatalf("got %v", tok)
	}
}

func TestTerminatingSequenceMissing(t *testing.T) {
	stream := streamOf(t, "x = 1")

	_, err := NewTerminatingSequence(nil).Match(stream)
	if !errors.Is(err, ErrMissingTerminator) {
		t.Fatalf("got %v", err)
	}
}

func TestTerminatingSequenceCustomTerminator(t *testing.T) {
	stream := streamOf(t, "a b } c")

	pattern := NewTerminatingSequence(&lexing.Token{
		Kind:  lexing.TokenGrouping,
		Value: "}",
	})
	match, err := pattern.Match(stream)
	if err != nil {
		t.Fatal(err)
	}
	if !match.Matched {
		t.Fatal("expected match")
	}
	if tok := stream.Peek(); tok.Value != "c" {
		t.Fatalf("got %v", tok)
	}
}
