package command

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

const colorBlue = 0x3498DB

type InfoCommand struct{}

func (c *InfoCommand) Name() string        { return "info" }
func (c *InfoCommand) Description() string { return "Show bot information" }
func (c *InfoCommand) Aliases() []string   { return nil }
func (c *InfoCommand) Params() []Param     { return nil }

func (c *InfoCommand) Run(ctx *MessageContext) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "Bot Information",
		Description: "A simple Discord bot written in Go",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Servers", Value: strconv.Itoa(ctx.Session.GuildCount()), Inline: true},
			{Name: "Latency", Value: fmt.Sprintf("%dms", latency), Inline: true},
		},
	})
}

func init() {
	Register(&InfoCommand{})
}
