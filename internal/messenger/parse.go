package messenger

import "sort"

// Parse maps every raw message in conv 1:1 onto the canonical ParsedMessage
// shape, defaulting absent optional fields to empty lists.
func Parse(conv *Conversation) []ParsedMessage {
	messages := make([]ParsedMessage, 0, len(conv.Messages))
	for _, raw := range conv.Messages {
		messages = append(messages, normalize(raw))
	}
	return messages
}

func normalize(raw RawMessage) ParsedMessage {
	msg := ParsedMessage{
		SenderName: raw.SenderName,
		Timestamp:  raw.TimestampMS,
		Content:    raw.Content,
		Reactions:  raw.Reactions,
		Photos:     raw.Photos,
		Videos:     raw.Videos,
		AudioFiles: raw.AudioFiles,
	}
	if msg.Reactions == nil {
		msg.Reactions = []Reaction{}
	}
	if msg.Photos == nil {
		msg.Photos = []Photo{}
	}
	if msg.Videos == nil {
		msg.Videos = []Video{}
	}
	if msg.AudioFiles == nil {
		msg.AudioFiles = []AudioFile{}
	}
	msg.HasContent = msg.Content != ""
	msg.IsMediaOnly = !msg.HasContent &&
		(len(msg.Photos) > 0 || len(msg.Videos) > 0 || len(msg.AudioFiles) > 0)
	return msg
}

// Merge flattens multiple per-page message slices into one stream sorted by
// timestamp ascending. The sort is stable: equal timestamps keep their
// original relative order, since timestamps alone do not disambiguate.
func Merge(pages [][]ParsedMessage) []ParsedMessage {
	var total int
	for _, page := range pages {
		total += len(page)
	}
	merged := make([]ParsedMessage, 0, total)
	for _, page := range pages {
		merged = append(merged, page...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp < merged[j].Timestamp
	})
	return merged
}
