package notify

import (
	"mythic-notifier/internal/raiderio"
	"mythic-notifier/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// External API Interfaces - abstractions for external dependencies

// ProfileClient defines the raider.io methods used by the notifier
type ProfileClient interface {
	GetProfile(realm, name string) (*raiderio.Profile, error)
}

// DiscordSession defines the Discord API methods used to deliver DMs
type DiscordSession interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Internal Component Interfaces - abstractions for internal components

// CharacterNotifier delivers one notification for a registration
type CharacterNotifier interface {
	Notify(userID string, ch storage.Character) error
}
