package configs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModule(t *testing.T) {
	dscope.New(new(Module)).Fork(
		dscope.Provide(FilePaths{"test.cue"}),
		dscope.Provide(Schema(testSchema)),
	).Call(func(
		loader Loader,
	) {
		str := First[string](loader, "str")
		if str != "bar" {
			t.Fatalf("got %v", str)
		}
	})
}
