package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/toklex/configs"
	"github.com/reusee/toklex/debugs"
	"github.com/reusee/toklex/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
