package messenger

import (
	"encoding/json"
	"fmt"
)

// ParseJSON decodes one JSON export file into a Conversation. The error wraps
// the underlying syntax error so callers can report it per file without
// aborting a whole batch.
func ParseJSON(data []byte) (*Conversation, error) {
	var conv Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil, fmt.Errorf("messenger: parse json export: %w", err)
	}
	return &conv, nil
}
