package command

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Check that the bot is alive" }
func (c *PingCommand) Aliases() []string   { return nil }
func (c *PingCommand) Params() []Param     { return nil }

func (c *PingCommand) Run(ctx *MessageContext) error {
	return ctx.Reply("Pong!")
}

func init() {
	Register(&PingCommand{})
}
