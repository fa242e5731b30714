package configs

import "github.com/reusee/dscope"

type FilePaths []string

type Schema string

type Module struct {
	dscope.Module
}

func (Module) FilePaths() FilePaths {
	return nil
}

func (Module) Schema() Schema {
	return ""
}

func (Module) Loader(
	filePaths FilePaths,
	schema Schema,
) Loader {
	return NewLoader(filePaths, string(schema))
}
