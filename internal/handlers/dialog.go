package handlers

import (
	"log/slog"

	"mythic-notifier/internal/dialog"
	"mythic-notifier/internal/formatting"
	"mythic-notifier/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// CharModalSubmit receives the "Personagem-Servidor" modal and opens the
// first dialog step (cadence choice).
func (h *BotHandler) CharModalSubmit(s DiscordSession, i *discordgo.InteractionCreate) {
	key := formatKey(modalInputValue(i.ModalSubmitData()))
	if key == "" {
		respond(s, i, formatting.MsgSaveError, true)
		return
	}

	flow, prompt := dialog.Start(key, false)
	respondSelect(s, i, prompt.Message, flow.Encode(), prompt.Options)
}

// DialogSelect advances the registration dialog by one choice. Each select
// menu carries the flow state in its custom ID; the final step persists the
// registration and schedules its job.
func (h *BotHandler) DialogSelect(s DiscordSession, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()

	flow, ok := dialog.Decode(data.CustomID)
	if !ok || len(data.Values) == 0 {
		return
	}

	flow, prompt := dialog.Advance(flow, data.Values[0])
	if flow.Step != dialog.StepDone {
		respondSelect(s, i, prompt.Message, flow.Encode(), prompt.Options)
		return
	}

	h.completeFlow(s, i, flow)
}

func (h *BotHandler) completeFlow(s DiscordSession, i *discordgo.InteractionCreate, flow dialog.Flow) {
	userID := interactionUserID(i)
	name, server := flow.SplitKey()
	ch := storage.Character{
		Name:    name,
		Server:  server,
		Cadence: flow.Cadence,
		Time:    flow.TimeSpec(),
	}

	if flow.Edit {
		if _, err := h.Store.RemoveCharacter(userID, flow.Key); err != nil {
			slog.Error("Failed to replace character", "user_id", userID, "character", flow.Key, "error", err)
			respond(s, i, formatting.MsgSaveError, true)
			return
		}
	}

	if err := h.Store.AddCharacter(userID, ch); err != nil {
		slog.Error("Failed to save character", "user_id", userID, "character", ch.Key(), "error", err)
		respond(s, i, formatting.MsgSaveError, true)
		return
	}

	h.Scheduler.Schedule(userID, ch)

	respond(s, i, formatting.MsgCharacterLinked(ch.Name, ch.Server, ch.Cadence, ch.Time), true)
}
