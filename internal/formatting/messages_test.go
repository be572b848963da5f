package formatting

import "testing"

func TestConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{
			name:     "MsgNoCharacters",
			constant: MsgNoCharacters,
			expected: "Você não tem personagens vinculados.",
		},
		{
			name:     "MsgListHeader",
			constant: MsgListHeader,
			expected: "Seus personagens vinculados:\n",
		},
		{
			name:     "MsgTestSent",
			constant: MsgTestSent,
			expected: "Teste enviado com sucesso!",
		},
		{
			name:     "MsgChooseCadence",
			constant: MsgChooseCadence,
			expected: "Selecione o tipo de notificação para este personagem:",
		},
		{
			name:     "MsgSaveError",
			constant: MsgSaveError,
			expected: "Não foi possível salvar o personagem. Tente novamente.",
		},
		{
			name:     "MsgDeliveryError",
			constant: MsgDeliveryError,
			expected: "Não foi possível enviar a notificação de teste.",
		},
		{
			name:     "MsgUserRequired",
			constant: MsgUserRequired,
			expected: "Não foi possível identificar o usuário.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, tt.constant)
			}
		})
	}
}

func TestMsgRunsCompleted(t *testing.T) {
	tests := []struct {
		name     string
		charName string
		server   string
		count    int
		expected string
	}{
		{
			name:     "several runs",
			charName: "Lothgow",
			server:   "Moknathal",
			count:    5,
			expected: "Lothgow-Moknathal completou 5 dungeons essa semana!",
		},
		{
			name:     "single run",
			charName: "Outro",
			server:   "Stormrage",
			count:    1,
			expected: "Outro-Stormrage completou 1 dungeons essa semana!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MsgRunsCompleted(tt.charName, tt.server, tt.count)
			if result != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}

func TestMsgNoRuns(t *testing.T) {
	result := MsgNoRuns("Lothgow", "Moknathal")
	expected := "Lothgow-Moknathal não completou nenhuma dungeon essa semana."
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestMsgNoData(t *testing.T) {
	result := MsgNoData("Lothgow", "Moknathal")
	expected := "Não foi possível encontrar informações de dungeons míticas recentes para Lothgow-Moknathal."
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestMsgCharacterLinked(t *testing.T) {
	tests := []struct {
		name     string
		cadence  string
		timeSpec string
		expected string
	}{
		{
			name:     "daily",
			cadence:  "diária",
			timeSpec: "14:30 UTC",
			expected: "Personagem Lothgow-Moknathal vinculado com sucesso! Notificações diária em 14:30 UTC.",
		},
		{
			name:     "weekly",
			cadence:  "semanal",
			timeSpec: "Terça 10:00 UTC",
			expected: "Personagem Lothgow-Moknathal vinculado com sucesso! Notificações semanal em Terça 10:00 UTC.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MsgCharacterLinked("Lothgow", "Moknathal", tt.cadence, tt.timeSpec)
			if result != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}

func TestMsgCharacterRemoved(t *testing.T) {
	result := MsgCharacterRemoved("Lothgow-Moknathal")
	expected := "Personagem Lothgow-Moknathal removido com sucesso."
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestMsgCharacterNotFound(t *testing.T) {
	result := MsgCharacterNotFound("Desconhecido-Azralon")
	expected := "Personagem Desconhecido-Azralon não encontrado."
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestMsgListEntry(t *testing.T) {
	result := MsgListEntry(1, "Lothgow", "Moknathal", "diária", "14:30 UTC")
	expected := "1. Lothgow-Moknathal (Notificação: diária em 14:30 UTC)\n"
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestMsgEditing(t *testing.T) {
	result := MsgEditing("Lothgow-Moknathal")
	expected := "Editando notificações para Lothgow-Moknathal:"
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestDialogPrompts(t *testing.T) {
	if got := MsgChooseDailyTime(); got != "Escolha o horário para a notificação diária:" {
		t.Errorf("Unexpected daily-time prompt: '%s'", got)
	}

	if got := MsgChooseWeekday(); got != "Escolha o dia para a notificação semanal:" {
		t.Errorf("Unexpected weekday prompt: '%s'", got)
	}

	if got := MsgChooseWeeklyTime("Terça"); got != "Escolha o horário para a notificação semanal no dia Terça:" {
		t.Errorf("Unexpected weekly-time prompt: '%s'", got)
	}
}
