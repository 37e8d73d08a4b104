package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func newStateSession(t *testing.T) *session {
	t.Helper()

	state := discordgo.NewState()
	state.User = &discordgo.User{ID: "bot-id", Username: "textbot"}

	for _, g := range []*discordgo.Guild{
		{ID: "g1", Name: "First", MemberCount: 10},
		{ID: "g2", Name: "Second", MemberCount: 20},
	} {
		if err := state.GuildAdd(g); err != nil {
			t.Fatalf("Unexpected error seeding state: %v", err)
		}
	}

	return &session{&discordgo.Session{State: state}}
}

func TestSessionSelfID(t *testing.T) {
	s := newStateSession(t)
	if got := s.SelfID(); got != "bot-id" {
		t.Errorf("Expected self id %q, got %q", "bot-id", got)
	}

	empty := &session{&discordgo.Session{State: discordgo.NewState()}}
	if got := empty.SelfID(); got != "" {
		t.Errorf("Expected empty self id before ready, got %q", got)
	}
}

func TestSessionGuildCount(t *testing.T) {
	s := newStateSession(t)
	if got := s.GuildCount(); got != 2 {
		t.Errorf("Expected 2 guilds, got %d", got)
	}
}

func TestSessionGuildFromState(t *testing.T) {
	s := newStateSession(t)

	guild, err := s.Guild("g2")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if guild.Name != "Second" || guild.MemberCount != 20 {
		t.Errorf("Unexpected guild from state: %+v", guild)
	}
}
