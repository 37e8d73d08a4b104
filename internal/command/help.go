package command

import (
	"fmt"
	"strings"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "List available commands" }
func (c *HelpCommand) Aliases() []string   { return nil }
func (c *HelpCommand) Params() []Param     { return nil }

func (c *HelpCommand) Run(ctx *MessageContext) error {
	var sb strings.Builder
	sb.WriteString("**Commands**\n")

	for _, cmd := range All() {
		sb.WriteString(fmt.Sprintf("`%s` — %s\n", usage(ctx.Prefix, cmd), cmd.Description()))
	}

	return ctx.Reply(sb.String())
}

// usage renders an invocation line like "!divide <num1> <num2>".
func usage(prefix string, cmd Command) string {
	parts := []string{prefix + cmd.Name()}
	for _, p := range cmd.Params() {
		if p.Required {
			parts = append(parts, "<"+p.Name+">")
		} else {
			parts = append(parts, "["+p.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	Register(&HelpCommand{})
}
