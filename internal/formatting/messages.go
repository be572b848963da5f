package formatting

import "fmt"

// User-facing strings stay in Portuguese, matching what this bot's users
// already receive.
const (
	MsgNoCharacters  = "Você não tem personagens vinculados."
	MsgListHeader    = "Seus personagens vinculados:\n"
	MsgTestSent      = "Teste enviado com sucesso!"
	MsgChooseCadence = "Selecione o tipo de notificação para este personagem:"
	MsgSaveError     = "Não foi possível salvar o personagem. Tente novamente."
	MsgDeliveryError = "Não foi possível enviar a notificação de teste."
	MsgUserRequired  = "Não foi possível identificar o usuário."
)

func MsgRunsCompleted(name, server string, count int) string {
	return fmt.Sprintf("%s-%s completou %d dungeons essa semana!", name, server, count)
}

func MsgNoRuns(name, server string) string {
	return fmt.Sprintf("%s-%s não completou nenhuma dungeon essa semana.", name, server)
}

func MsgNoData(name, server string) string {
	return fmt.Sprintf("Não foi possível encontrar informações de dungeons míticas recentes para %s-%s.", name, server)
}

func MsgCharacterLinked(name, server, cadence, timeSpec string) string {
	return fmt.Sprintf("Personagem %s-%s vinculado com sucesso! Notificações %s em %s.", name, server, cadence, timeSpec)
}

func MsgCharacterRemoved(key string) string {
	return fmt.Sprintf("Personagem %s removido com sucesso.", key)
}

func MsgCharacterNotFound(key string) string {
	return fmt.Sprintf("Personagem %s não encontrado.", key)
}

func MsgListEntry(index int, name, server, cadence, timeSpec string) string {
	return fmt.Sprintf("%d. %s-%s (Notificação: %s em %s)\n", index, name, server, cadence, timeSpec)
}

func MsgEditing(key string) string {
	return fmt.Sprintf("Editando notificações para %s:", key)
}

func MsgChooseDailyTime() string {
	return "Escolha o horário para a notificação diária:"
}

func MsgChooseWeekday() string {
	return "Escolha o dia para a notificação semanal:"
}

func MsgChooseWeeklyTime(day string) string {
	return fmt.Sprintf("Escolha o horário para a notificação semanal no dia %s:", day)
}
