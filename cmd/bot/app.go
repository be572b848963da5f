package main

import (
	"context"
	"log/slog"

	"mythic-notifier/internal/config"
	"mythic-notifier/internal/dialog"
	"mythic-notifier/internal/handlers"
	"mythic-notifier/internal/notify"
	"mythic-notifier/internal/raiderio"
	"mythic-notifier/internal/storage"

	"github.com/bwmarrin/discordgo"
)

type App struct {
	config             *config.Config
	store              *storage.JSONStore
	discord            *discordgo.Session
	notifyService      *notify.Service
	router             *handlers.Router
	notifyCtx          context.Context
	notifyCancel       context.CancelFunc
	registeredCommands []*discordgo.ApplicationCommand
}

func NewApp(cfg *config.Config) (*App, error) {
	store, err := storage.NewJSONStore(cfg.GuildsFile, cfg.CharactersFile)
	if err != nil {
		slog.Error("Failed to load snapshots", "error", err)
		return nil, err
	}

	discord, err := NewDiscordSession(cfg)
	if err != nil {
		return nil, err
	}

	notifier := notify.NewNotifier(discord, raiderio.NewClient(cfg.RaiderIOTimeout))
	notifyService := notify.NewService(store, notifier)

	botHandlers := &handlers.BotHandler{Store: store, Scheduler: notifyService, Notifier: notifier}
	router := handlers.NewRouter()
	router.Register("add_char", handlers.WithUser(botHandlers.AddChar))
	router.Register("verificar_chars", handlers.WithUser(botHandlers.VerificarChars))
	router.Register("deletar_char", handlers.WithUser(botHandlers.DeletarChar))
	router.Register("editar_char", handlers.WithUser(botHandlers.EditarChar))
	router.Register("testar", handlers.WithUser(botHandlers.Testar))
	router.Register("testar_todas", handlers.WithUser(botHandlers.TestarTodas))
	router.RegisterModal(handlers.ModalAddChar, handlers.WithUser(botHandlers.CharModalSubmit))
	router.RegisterComponent(dialog.Prefix, handlers.WithUser(botHandlers.DialogSelect))

	discord.AddHandler(handlers.ReadyHandler)
	discord.AddHandler(botHandlers.GuildCreate)
	discord.AddHandler(router.HandleFunc())

	return &App{
		config:        cfg,
		store:         store,
		discord:       discord,
		notifyService: notifyService,
		router:        router,
	}, nil
}

func (a *App) Run() error {
	err := a.discord.Open()
	if err != nil {
		slog.Error("Failed to open discord session", "error", err)
		return err
	}

	commands := GetApplicationCommands()
	CleanupCommands(a.discord, a.registeredCommands, a.discord.State.User.ID)
	a.registeredCommands = RegisterCommands(a.discord, commands, a.discord.State.User.ID)

	a.notifyCtx, a.notifyCancel = context.WithCancel(context.Background())
	a.notifyService.Start(a.notifyCtx)

	return nil
}

func (a *App) Shutdown() {
	slog.Info("Shutting down...")

	if a.notifyCancel != nil {
		a.notifyCancel()
	}

	if a.notifyService != nil {
		a.notifyService.Stop()
	}

	if a.discord != nil {
		a.discord.Close()
	}
}
