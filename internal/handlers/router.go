package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

type CommandHandler func(s DiscordSession, i *discordgo.InteractionCreate)

// Router dispatches slash commands by name, and component/modal
// interactions by custom-ID prefix.
type Router struct {
	commands   map[string]CommandHandler
	components []prefixRoute
	modals     []prefixRoute
}

type prefixRoute struct {
	prefix  string
	handler CommandHandler
}

func NewRouter() *Router {
	return &Router{
		commands: make(map[string]CommandHandler),
	}
}

func (r *Router) Register(command string, handler CommandHandler) {
	r.commands[command] = handler
}

func (r *Router) RegisterComponent(prefix string, handler CommandHandler) {
	r.components = append(r.components, prefixRoute{prefix: prefix, handler: handler})
}

func (r *Router) RegisterModal(prefix string, handler CommandHandler) {
	r.modals = append(r.modals, prefixRoute{prefix: prefix, handler: handler})
}

// Handle processes interactions using the DiscordSession interface (for testing).
func (r *Router) Handle(s DiscordSession, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if handler, ok := r.commands[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	case discordgo.InteractionMessageComponent:
		dispatchPrefix(r.components, i.MessageComponentData().CustomID, s, i)
	case discordgo.InteractionModalSubmit:
		dispatchPrefix(r.modals, i.ModalSubmitData().CustomID, s, i)
	}
}

func dispatchPrefix(routes []prefixRoute, customID string, s DiscordSession, i *discordgo.InteractionCreate) {
	for _, route := range routes {
		if strings.HasPrefix(customID, route.prefix) {
			route.handler(s, i)
			return
		}
	}
}

// HandleFunc returns a function compatible with discordgo.AddHandler.
func (r *Router) HandleFunc() func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		r.Handle(s, i)
	}
}
