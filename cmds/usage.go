package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if seen[command] {
			// alias
			continue
		}
		seen[command] = true
		printCommand(name, command, 0)
	}
}

func printCommand(name string, command *Command, indent int) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(name)
	if command != nil {
		if len(command.Aliases) > 0 {
			sb.WriteString(" | ")
			sb.WriteString(strings.Join(command.Aliases, " | "))
		}
		if command.Description != "" {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat("  ", indent+1))
			sb.WriteString(command.Description)
		}
	}
	fmt.Fprintln(os.Stderr, sb.String())
	if command != nil && len(command.Subs) > 0 {
		for _, subname := range slices.Sorted(maps.Keys(command.Subs)) {
			printCommand(subname, command.Subs[subname], indent+1)
		}
	}
}
