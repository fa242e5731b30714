package logs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestToJournalKey(t *testing.T) {
	for input, expected := range map[string]string{
		"logs.span": "LOGS_SPAN",
		"error":     "ERROR",
		"Key9":      "KEY9",
		"a-b c":     "A_B_C",
	} {
		if str := toJournalKey(input); str != expected {
			t.Fatalf("%q: got %q", input, str)
		}
	}
}
