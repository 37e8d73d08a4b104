package discord

import (
	"github.com/bwmarrin/discordgo"
)

// session adapts *discordgo.Session to command.Session, layering the
// state-derived lookups the raw session does not expose directly.
type session struct {
	*discordgo.Session
}

// Guild resolves guild metadata from the state cache first and falls back
// to the REST API on a miss.
func (s *session) Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if guild, err := s.State.Guild(guildID); err == nil {
		return guild, nil
	}
	return s.Session.Guild(guildID, options...)
}

func (s *session) GuildCount() int {
	s.State.RLock()
	defer s.State.RUnlock()
	return len(s.State.Guilds)
}

func (s *session) SelfID() string {
	if s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}
