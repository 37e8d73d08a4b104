package discord

import (
	"context"
	"fmt"
	"log"

	"textbot/internal/command"
	"textbot/internal/config"

	"github.com/bwmarrin/discordgo"
)

// Bot is a Discord bot
type Bot struct {
	dg  *discordgo.Session
	cfg *config.Config
}

// StartBot connects the bot and blocks until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config) error {
	b := &Bot{cfg: cfg}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
}

// onReady is called when the gateway handshake completes
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ %s has connected to Discord", r.User.Username)
	log.Printf("[INFO] Bot is in %d guilds", len(r.Guilds))
}

// onMessageCreate is called for every incoming message
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	command.HandleMessage(&session{s}, b.cfg.CommandPrefix, m.Message)
}
