package storage

// Character is one notification registration. The JSON field names match
// the personagens.json snapshots written by earlier deployments of this bot
// and are an interop contract.
type Character struct {
	Name    string `json:"nome"`
	Server  string `json:"servidor"`
	Cadence string `json:"tipo_notificacao"`
	Time    string `json:"horario_notificacao"`
}

// Key is the per-user lookup identity used by the delete and edit commands.
func (c Character) Key() string {
	return c.Name + "-" + c.Server
}

// Guild is one entry in the guild registry snapshot (guilds.json).
type Guild struct {
	GuildName string `json:"guild_name"`
}
