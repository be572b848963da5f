package handlers

import (
	"mythic-notifier/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Mock Discord session
type mockDiscordSession struct {
	interactionRespondFunc func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error
	responses              []*discordgo.InteractionResponse
}

func (m *mockDiscordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	m.responses = append(m.responses, resp)
	if m.interactionRespondFunc != nil {
		return m.interactionRespondFunc(interaction, resp)
	}
	return nil
}

func (m *mockDiscordSession) lastResponse() *discordgo.InteractionResponse {
	if len(m.responses) == 0 {
		return nil
	}
	return m.responses[len(m.responses)-1]
}

// Mock Storage implementation
type mockStorage struct {
	ensureGuildFunc     func(guildID, name string) (bool, error)
	addCharacterFunc    func(userID string, ch storage.Character) error
	removeCharacterFunc func(userID, key string) (bool, error)
	listCharactersFunc  func(userID string) []storage.Character
}

func (m *mockStorage) EnsureGuild(guildID, name string) (bool, error) {
	if m.ensureGuildFunc != nil {
		return m.ensureGuildFunc(guildID, name)
	}
	return false, nil
}

func (m *mockStorage) Guilds() map[string]storage.Guild { return nil }

func (m *mockStorage) AddCharacter(userID string, ch storage.Character) error {
	if m.addCharacterFunc != nil {
		return m.addCharacterFunc(userID, ch)
	}
	return nil
}

func (m *mockStorage) RemoveCharacter(userID, key string) (bool, error) {
	if m.removeCharacterFunc != nil {
		return m.removeCharacterFunc(userID, key)
	}
	return false, nil
}

func (m *mockStorage) ListCharacters(userID string) []storage.Character {
	if m.listCharactersFunc != nil {
		return m.listCharactersFunc(userID)
	}
	return nil
}

func (m *mockStorage) AllCharacters() map[string][]storage.Character { return nil }

// Mock scheduler and notifier
type mockScheduler struct {
	scheduled []storage.Character
}

func (m *mockScheduler) Schedule(userID string, ch storage.Character) {
	m.scheduled = append(m.scheduled, ch)
}

type mockNotifier struct {
	notifyFunc func(userID string, ch storage.Character) error
	notified   []storage.Character
}

func (m *mockNotifier) Notify(userID string, ch storage.Character) error {
	m.notified = append(m.notified, ch)
	if m.notifyFunc != nil {
		return m.notifyFunc(userID, ch)
	}
	return nil
}

// Interaction builders

func commandInteraction(name, userID string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func componentInteraction(customID, value, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   []string{value},
			},
			Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
		},
	}
}

func modalInteraction(customID, inputID, value, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionModalSubmit,
			Data: discordgo.ModalSubmitInteractionData{
				CustomID: customID,
				Components: []discordgo.MessageComponent{
					&discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							&discordgo.TextInput{CustomID: inputID, Value: value},
						},
					},
				},
			},
			Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
		},
	}
}
