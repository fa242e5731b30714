package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/toklex/cmds"
	"github.com/reusee/toklex/configs"
	"github.com/reusee/toklex/debugs"
	"github.com/reusee/toklex/lexing"
	"github.com/reusee/toklex/logs"
	"github.com/reusee/toklex/modes"
	"github.com/reusee/toklex/vars"
	"golang.org/x/term"
)

var (
	files       = cmds.Collect[string]("-file")
	configFiles = cmds.Collect[string]("-config")
	tap         = cmds.Switch("-tap")
)

const configSchema = `
source?: string
`

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		dscope.Provide(configs.FilePaths(*configFiles)),
		dscope.Provide(configs.Schema(configSchema)),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		loader configs.Loader,
		tapFunc debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "")

		var parts []string
		if stdin := getStdinContent(); len(stdin) > 0 {
			parts = append(parts, string(stdin))
		}
		for _, filePath := range *files {
			content, err := os.ReadFile(filePath)
			ce(err)
			parts = append(parts, string(content))
			logger.InfoContext(ctx, "file",
				"path", filePath,
			)
		}
		source := strings.Join(parts, "\n")
		if source == "" {
			// only consult the config when nothing else supplied source
			source = configs.First[string](loader, "source")
		}

		logger.InfoContext(ctx, "tokenize", "len", len(source))

		tokens, err := lexing.TokenizeAll(source)
		if err != nil {
			ce(logs.WrapSpan(ctx, err))
		}

		for _, tok := range tokens {
			fmt.Println(tok)
		}

		if vars.DerefOrZero(tap) {
			tapFunc(ctx, "tokens", map[string]any{
				"source": source,
				"tokens": tokens,
				"table":  lexing.FixedLexemes(),
			})
		}
	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}
