package analyzer

import (
	"sort"

	"github.com/flemzord/chatwrapped/internal/messenger"
	"github.com/flemzord/chatwrapped/internal/textutil"
)

// CalculateChatStats computes whole-conversation totals in a single linear
// pass. An empty input yields all-zero stats with an empty participant list.
func CalculateChatStats(messages []messenger.ParsedMessage) ChatStats {
	stats := ChatStats{Participants: []string{}}
	if len(messages) == 0 {
		return stats
	}

	seen := make(map[string]struct{})
	minTS, maxTS := messages[0].Timestamp, messages[0].Timestamp

	for _, msg := range messages {
		seen[msg.SenderName] = struct{}{}
		stats.TotalPhotos += len(msg.Photos)
		stats.TotalVideos += len(msg.Videos)
		stats.TotalAudioMinutes += len(msg.AudioFiles)
		if msg.Timestamp < minTS {
			minTS = msg.Timestamp
		}
		if msg.Timestamp > maxTS {
			maxTS = msg.Timestamp
		}
	}

	stats.TotalMessages = len(messages)
	for name := range seen {
		stats.Participants = append(stats.Participants, name)
	}
	sort.Strings(stats.Participants)
	stats.DateRange = DateRange{Start: minTS, End: maxTS}
	return stats
}

// CalculateContributorStats builds one rollup per unique sender name in a
// single linear pass. Senders are keyed by their exact name string; fuzzy
// merging happens only during participant reconciliation. The result is
// sorted descending by message count, ties keeping first-appearance order.
func CalculateContributorStats(messages []messenger.ParsedMessage) []*ContributorStats {
	byName := make(map[string]*ContributorStats)
	var ordered []*ContributorStats

	for _, msg := range messages {
		stats, ok := byName[msg.SenderName]
		if !ok {
			stats = newContributorStats(msg.SenderName)
			byName[msg.SenderName] = stats
			ordered = append(ordered, stats)
		}

		stats.MessageCount++
		stats.PhotoCount += len(msg.Photos)
		stats.VideoCount += len(msg.Videos)
		stats.AudioMinutes += len(msg.AudioFiles)

		if msg.Content == "" {
			continue
		}
		stats.TotalCharacters += len([]rune(msg.Content))
		for _, token := range textutil.Tokenize(msg.Content) {
			stats.UniqueWords[token] = struct{}{}
		}
		for _, emoji := range textutil.ExtractEmojis(msg.Content) {
			stats.EmojiCount++
			stats.Emojis[emoji]++
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MessageCount > ordered[j].MessageCount
	})
	return ordered
}

func newContributorStats(name string) *ContributorStats {
	return &ContributorStats{
		Name:        name,
		UniqueWords: make(map[string]struct{}),
		Emojis:      make(map[string]int),
	}
}
