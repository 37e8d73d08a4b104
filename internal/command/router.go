package command

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	keywordTrigger = "hello"
	keywordReply   = "Hello! 👋"
)

// HandleMessage routes one incoming message: keyword auto-reply, then prefix
// command dispatch. Messages authored by the bot itself produce nothing.
// Unknown command names are dropped silently on purpose.
func HandleMessage(s Session, prefix string, m *discordgo.Message) {
	if m.Author == nil || m.Author.ID == s.SelfID() {
		return
	}

	if m.Content == keywordTrigger {
		if _, err := s.ChannelMessageSend(m.ChannelID, keywordReply); err != nil {
			log.Println("[ERR] Failed to send keyword reply:", err)
		}
		// Keyword matching does not suppress command processing.
	}

	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(fields) == 0 {
		return
	}

	cmd, ok := Get(fields[0])
	if !ok {
		return
	}

	ctx := &MessageContext{
		Session: s,
		Message: m,
		Prefix:  prefix,
	}

	args, err := bindArgs(cmd.Params(), fields[1:])
	if err != nil {
		if h, ok := cmd.(ErrorHandler); ok {
			h.HandleError(ctx, err)
		}
		return
	}
	ctx.Args = args

	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Error running command %s: %v", cmd.Name(), err)
	}
}
