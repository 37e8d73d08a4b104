package command

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Command is a prefix text command.
type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Params() []Param
	Run(ctx *MessageContext) error
}

// ErrorHandler lets a command answer its own argument-binding failures.
// Commands without it have binding errors dropped silently.
type ErrorHandler interface {
	HandleError(ctx *MessageContext, err error)
}

// ParamType is the declared type of a command parameter.
type ParamType int

const (
	ParamString ParamType = iota
	ParamInt
	ParamFloat
)

// Param declares one positional parameter of a command. Binding consumes
// message tokens in declaration order.
type Param struct {
	Name     string
	Type     ParamType
	Required bool
}

// Session is what a command may do against Discord. *discordgo.Session
// satisfies most of it; the discord package wraps one into a full
// implementation, tests use mocks.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	HeartbeatLatency() time.Duration
	GuildCount() int
	SelfID() string
}

// MessageContext is handed to every command run: the session capabilities,
// the invoking message, the active command prefix and the bound arguments.
type MessageContext struct {
	Session Session
	Message *discordgo.Message
	Prefix  string
	Args    Args
}

// Reply sends plain text to the invoking channel.
func (ctx *MessageContext) Reply(content string) error {
	_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, content)
	return err
}

// ReplyEmbed sends an embed to the invoking channel.
func (ctx *MessageContext) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	_, err := ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embed)
	return err
}

// Args holds bound argument values keyed by parameter name. Optional
// parameters that received no token are absent; accessors return zero values.
type Args map[string]interface{}

func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

func (a Args) Float(name string) float64 {
	v, _ := a[name].(float64)
	return v
}
