package main

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

func GetApplicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "add_char",
			Description: "Vincule um personagem para notificações",
		},
		{
			Name:        "verificar_chars",
			Description: "Verifique seus personagens vinculados",
		},
		{
			Name:        "deletar_char",
			Description: "Delete um personagem vinculado",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "nome_servidor",
					Description: "Personagem-Servidor (Ex: Lothgow-Moknathal)",
					Required:    true,
				},
			},
		},
		{
			Name:        "editar_char",
			Description: "Edite um personagem vinculado",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "nome_servidor",
					Description: "Personagem-Servidor (Ex: Lothgow-Moknathal)",
					Required:    true,
				},
			},
		},
		{
			Name:        "testar",
			Description: "Testar notificações",
		},
		{
			Name:        "testar_todas",
			Description: "Testar todas as notificações",
		},
	}
}

func RegisterCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID string) []*discordgo.ApplicationCommand {
	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		registered, err := session.ApplicationCommandCreate(userID, "", cmd)
		if err != nil {
			slog.Error("Cannot create command", "name", cmd.Name, "error", err)
			continue
		}
		registeredCommands[i] = registered
		slog.Info("Registered command", "name", cmd.Name)
	}

	return registeredCommands
}

func CleanupCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID string) {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		err := session.ApplicationCommandDelete(userID, "", cmd.ID)
		if err != nil {
			slog.Error("Cannot delete command", "name", cmd.Name, "error", err)
		}
	}
}
