package handlers

import (
	"mythic-notifier/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// DiscordSession defines the interface for Discord API operations needed by
// handlers. This interface allows for testing with mocked Discord sessions.
type DiscordSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Scheduler registers a recurring notification job for a registration.
type Scheduler interface {
	Schedule(userID string, ch storage.Character)
}

// Notifier delivers one notification immediately (the test commands).
type Notifier interface {
	Notify(userID string, ch storage.Character) error
}
