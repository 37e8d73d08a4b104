package command

import "fmt"

type AddCommand struct{}

func (c *AddCommand) Name() string        { return "add" }
func (c *AddCommand) Description() string { return "Add two whole numbers" }
func (c *AddCommand) Aliases() []string   { return nil }

func (c *AddCommand) Params() []Param {
	return []Param{
		{Name: "num1", Type: ParamInt, Required: true},
		{Name: "num2", Type: ParamInt, Required: true},
	}
}

func (c *AddCommand) Run(ctx *MessageContext) error {
	a := ctx.Args.Int("num1")
	b := ctx.Args.Int("num2")
	return ctx.Reply(fmt.Sprintf("%d + %d = %d", a, b, a+b))
}

func init() {
	Register(&AddCommand{})
}
