package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func respond(s DiscordSession, i *discordgo.InteractionCreate, msg string, ephemeral bool) {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   flags,
		},
	})
}

// respondSelect sends an ephemeral follow-up prompt carrying a single
// select menu of mutually exclusive choices.
func respondSelect(s DiscordSession, i *discordgo.InteractionCreate, msg, customID string, options []string) {
	menuOptions := make([]discordgo.SelectMenuOption, len(options))
	for idx, opt := range options {
		menuOptions[idx] = discordgo.SelectMenuOption{Label: opt, Value: opt}
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID: customID,
							Options:  menuOptions,
						},
					},
				},
			},
		},
	})
}

// interactionUserID resolves the acting user for guild and DM interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// optionValue returns the named string option of a slash command.
func optionValue(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// modalInputValue digs the value of a short text input out of a submitted
// modal. Returns "" when the component layout is not the expected one.
func modalInputValue(data discordgo.ModalSubmitInteractionData) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				return input.Value
			}
		}
	}
	return ""
}

// formatKey normalizes a user-typed "name-server" pair so lookups are
// case-insensitive: "lothgow-moknathal" becomes "Lothgow-Moknathal".
func formatKey(raw string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(raw)))
}
