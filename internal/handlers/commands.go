package handlers

import (
	"log/slog"
	"strings"

	"mythic-notifier/internal/dialog"
	"mythic-notifier/internal/formatting"
	"mythic-notifier/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// ModalAddChar is the custom ID of the character registration modal.
const ModalAddChar = "addchar_modal"

const modalInputID = "personagem_servidor"

type BotHandler struct {
	Store     storage.Storage
	Scheduler Scheduler
	Notifier  Notifier
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("Mythic+ notifier is online!", "user", session.State.User.Username, "discriminator", session.State.User.Discriminator)
}

// GuildCreate fires for every guild on connect and again when the bot is
// invited somewhere new, so it doubles as startup reconciliation of the
// guild registry.
func (h *BotHandler) GuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	added, err := h.Store.EnsureGuild(g.ID, g.Name)
	if err != nil {
		slog.Error("Failed to record guild", "guild_id", g.ID, "error", err)
		return
	}
	if added {
		slog.Info("Joined guild", "guild_id", g.ID, "name", g.Name)
	}
}

// AddChar opens the registration modal asking for "Personagem-Servidor".
func (h *BotHandler) AddChar(s DiscordSession, i *discordgo.InteractionCreate) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ModalAddChar,
			Title:    "Vincular Personagem",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    modalInputID,
							Label:       "Personagem-Servidor",
							Style:       discordgo.TextInputShort,
							Placeholder: "Ex: Lothgow-Moknathal",
							Required:    true,
						},
					},
				},
			},
		},
	})
}

func (h *BotHandler) VerificarChars(s DiscordSession, i *discordgo.InteractionCreate) {
	characters := h.Store.ListCharacters(interactionUserID(i))
	if len(characters) == 0 {
		respond(s, i, formatting.MsgNoCharacters, true)
		return
	}

	var sb strings.Builder
	sb.WriteString(formatting.MsgListHeader)
	for idx, ch := range characters {
		sb.WriteString(formatting.MsgListEntry(idx+1, ch.Name, ch.Server, ch.Cadence, ch.Time))
	}
	respond(s, i, sb.String(), true)
}

// DeletarChar removes a registration. The scheduled job, if any, keeps
// firing until the next process restart.
func (h *BotHandler) DeletarChar(s DiscordSession, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	key := formatKey(optionValue(i, "nome_servidor"))

	removed, err := h.Store.RemoveCharacter(userID, key)
	if err != nil {
		slog.Error("Failed to remove character", "user_id", userID, "character", key, "error", err)
		respond(s, i, formatting.MsgSaveError, true)
		return
	}
	if !removed {
		respond(s, i, formatting.MsgCharacterNotFound(key), true)
		return
	}

	respond(s, i, formatting.MsgCharacterRemoved(key), true)
}

// EditarChar restarts the registration dialog for an existing character.
// Completion replaces the stored row (delete then recreate). The flow
// carries the stored key, not the typed one, so the recreate targets the
// row as persisted.
func (h *BotHandler) EditarChar(s DiscordSession, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	key := formatKey(optionValue(i, "nome_servidor"))

	ch, ok := h.findCharacter(userID, key)
	if !ok {
		respond(s, i, formatting.MsgCharacterNotFound(key), true)
		return
	}

	flow, prompt := dialog.Start(ch.Key(), true)
	respondSelect(s, i, formatting.MsgEditing(ch.Key()), flow.Encode(), prompt.Options)
}

func (h *BotHandler) Testar(s DiscordSession, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	characters := h.Store.ListCharacters(userID)
	if len(characters) == 0 {
		respond(s, i, formatting.MsgNoCharacters, true)
		return
	}

	if err := h.Notifier.Notify(userID, characters[0]); err != nil {
		slog.Error("Test notification failed", "user_id", userID, "character", characters[0].Key(), "error", err)
		respond(s, i, formatting.MsgDeliveryError, true)
		return
	}

	respond(s, i, formatting.MsgTestSent, true)
}

func (h *BotHandler) TestarTodas(s DiscordSession, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	characters := h.Store.ListCharacters(userID)
	if len(characters) == 0 {
		respond(s, i, formatting.MsgNoCharacters, true)
		return
	}

	failed := false
	for _, ch := range characters {
		if err := h.Notifier.Notify(userID, ch); err != nil {
			slog.Error("Test notification failed", "user_id", userID, "character", ch.Key(), "error", err)
			failed = true
		}
	}

	if failed {
		respond(s, i, formatting.MsgDeliveryError, true)
		return
	}
	respond(s, i, formatting.MsgTestSent, true)
}

// findCharacter resolves a registration by key, matching
// case-insensitively so legacy snapshot rows that are not title-cased
// stay editable.
func (h *BotHandler) findCharacter(userID, key string) (storage.Character, bool) {
	for _, ch := range h.Store.ListCharacters(userID) {
		if strings.EqualFold(ch.Key(), key) {
			return ch, true
		}
	}
	return storage.Character{}, false
}
