package command

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// mockSession implements Session for tests, recording every send. Behavior
// can be overridden per test through the function fields.
type mockSession struct {
	sent       []string
	sentTo     []string
	embeds     []*discordgo.MessageEmbed
	guildFunc  func(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	latency    time.Duration
	guildCount int
	selfID     string
}

func (m *mockSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sent = append(m.sent, content)
	m.sentTo = append(m.sentTo, channelID)
	return &discordgo.Message{}, nil
}

func (m *mockSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.embeds = append(m.embeds, embed)
	m.sentTo = append(m.sentTo, channelID)
	return &discordgo.Message{}, nil
}

func (m *mockSession) Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if m.guildFunc != nil {
		return m.guildFunc(guildID, options...)
	}
	return &discordgo.Guild{ID: guildID}, nil
}

func (m *mockSession) HeartbeatLatency() time.Duration {
	return m.latency
}

func (m *mockSession) GuildCount() int {
	return m.guildCount
}

func (m *mockSession) SelfID() string {
	return m.selfID
}

// message builds an incoming message authored by the given user.
func message(authorID, channelID, content string) *discordgo.Message {
	return &discordgo.Message{
		Author:    &discordgo.User{ID: authorID},
		ChannelID: channelID,
		Content:   content,
	}
}
