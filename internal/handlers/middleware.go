package handlers

import (
	"mythic-notifier/internal/formatting"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(CommandHandler) CommandHandler

// WithUser rejects interactions where no acting user can be resolved.
// Registrations are keyed by user ID, so every handler needs one.
func WithUser(next CommandHandler) CommandHandler {
	return func(s DiscordSession, i *discordgo.InteractionCreate) {
		if interactionUserID(i) == "" {
			respond(s, i, formatting.MsgUserRequired, true)
			return
		}
		next(s, i)
	}
}
