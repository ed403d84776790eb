package events

import (
	"encoding/json"
	"fmt"

	"github.com/JonMunkholm/budget/internal/core"
)

// TypeImportCompleted identifies import-completed messages.
const TypeImportCompleted = "import.completed"

// ImportCompletedMessage is the body published after a CSV import commits.
type ImportCompletedMessage struct {
	Type string `json:"type"`
	core.ImportCompleted
}

func NewImportCompletedMessage(e core.ImportCompleted) *ImportCompletedMessage {
	return &ImportCompletedMessage{Type: TypeImportCompleted, ImportCompleted: e}
}

func (m *ImportCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ImportCompletedFromJSON decodes a message body, rejecting other types.
func ImportCompletedFromJSON(data []byte) (*ImportCompletedMessage, error) {
	var m ImportCompletedMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	if m.Type != TypeImportCompleted {
		return nil, fmt.Errorf("unexpected message type %q", m.Type)
	}
	return &m, nil
}
