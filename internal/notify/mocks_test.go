package notify

import (
	"mythic-notifier/internal/raiderio"
	"mythic-notifier/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Mock Discord session
type mockDiscordSession struct {
	userChannelCreateFunc  func(recipientID string) (*discordgo.Channel, error)
	channelMessageSendFunc func(channelID, content string) (*discordgo.Message, error)
	sentMessages           []string
	sentChannels           []string
}

func (m *mockDiscordSession) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if m.userChannelCreateFunc != nil {
		return m.userChannelCreateFunc(recipientID)
	}
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (m *mockDiscordSession) ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.channelMessageSendFunc != nil {
		return m.channelMessageSendFunc(channelID, content)
	}
	m.sentChannels = append(m.sentChannels, channelID)
	m.sentMessages = append(m.sentMessages, content)
	return &discordgo.Message{}, nil
}

// Mock raider.io client
type mockProfileClient struct {
	getProfileFunc func(realm, name string) (*raiderio.Profile, error)
}

func (m *mockProfileClient) GetProfile(realm, name string) (*raiderio.Profile, error) {
	if m.getProfileFunc != nil {
		return m.getProfileFunc(realm, name)
	}
	return &raiderio.Profile{Name: name, Realm: realm}, nil
}

// Mock storage
type mockStorage struct {
	characters map[string][]storage.Character
}

func (m *mockStorage) EnsureGuild(guildID, name string) (bool, error) { return false, nil }

func (m *mockStorage) Guilds() map[string]storage.Guild { return nil }

func (m *mockStorage) AddCharacter(userID string, ch storage.Character) error {
	if m.characters == nil {
		m.characters = make(map[string][]storage.Character)
	}
	m.characters[userID] = append(m.characters[userID], ch)
	return nil
}

func (m *mockStorage) RemoveCharacter(userID, key string) (bool, error) { return false, nil }

func (m *mockStorage) ListCharacters(userID string) []storage.Character {
	return m.characters[userID]
}

func (m *mockStorage) AllCharacters() map[string][]storage.Character {
	return m.characters
}

// Mock notifier
type mockNotifier struct {
	notifyFunc func(userID string, ch storage.Character) error
	calls      []string
}

func (m *mockNotifier) Notify(userID string, ch storage.Character) error {
	m.calls = append(m.calls, userID+"/"+ch.Key())
	if m.notifyFunc != nil {
		return m.notifyFunc(userID, ch)
	}
	return nil
}
