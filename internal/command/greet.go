package command

import "fmt"

type GreetCommand struct{}

func (c *GreetCommand) Name() string        { return "greet" }
func (c *GreetCommand) Description() string { return "Greet a user by name" }
func (c *GreetCommand) Aliases() []string   { return nil }

func (c *GreetCommand) Params() []Param {
	return []Param{
		{Name: "name", Type: ParamString, Required: true},
	}
}

func (c *GreetCommand) Run(ctx *MessageContext) error {
	return ctx.Reply(fmt.Sprintf("Hello, %s! 👋", ctx.Args.String("name")))
}

func init() {
	Register(&GreetCommand{})
}
