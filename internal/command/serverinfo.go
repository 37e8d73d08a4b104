package command

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

const colorGreen = 0x2ECC71

type ServerInfoCommand struct{}

func (c *ServerInfoCommand) Name() string        { return "serverinfo" }
func (c *ServerInfoCommand) Description() string { return "Show information about this server" }
func (c *ServerInfoCommand) Aliases() []string   { return nil }
func (c *ServerInfoCommand) Params() []Param     { return nil }

func (c *ServerInfoCommand) Run(ctx *MessageContext) error {
	if ctx.Message.GuildID == "" {
		return ctx.Reply("This command only works in a server.")
	}

	guild, err := ctx.Session.Guild(ctx.Message.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch guild %s: %w", ctx.Message.GuildID, err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       guild.Name,
		Description: fmt.Sprintf("Server information for %s", guild.Name),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Server ID", Value: guild.ID, Inline: true},
			{Name: "Owner", Value: fmt.Sprintf("<@%s>", guild.OwnerID), Inline: true},
			{Name: "Members", Value: strconv.Itoa(guild.MemberCount), Inline: true},
			{Name: "Created At", Value: guildCreatedAt(guild.ID), Inline: true},
		},
	}

	if guild.Icon != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: guild.IconURL("")}
	}

	return ctx.ReplyEmbed(embed)
}

// guildCreatedAt derives the creation date from the guild snowflake.
func guildCreatedAt(guildID string) string {
	ts, err := discordgo.SnowflakeTimestamp(guildID)
	if err != nil {
		return "unknown"
	}
	return ts.UTC().Format("2006-01-02")
}

func init() {
	Register(&ServerInfoCommand{})
}
