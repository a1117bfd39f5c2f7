package analyzer

import (
	"math"
	"sort"

	"github.com/flemzord/chatwrapped/internal/messenger"
	"github.com/flemzord/chatwrapped/internal/textutil"
)

// topEmojiLimit caps the per-contributor favorite-emoji list.
const topEmojiLimit = 10

// CalculateLinguisticStats derives vocabulary diversity, average message
// length, and emoji usage for one contributor. Diversity and average length
// come from the already-collected rollup fields; emoji frequencies are
// re-extracted per message so ties can be broken by first-encountered order.
func CalculateLinguisticStats(contributor *ContributorStats, all []messenger.ParsedMessage) LinguisticStats {
	stats := LinguisticStats{}

	if contributor.TotalCharacters > 0 {
		damping := math.Sqrt(float64(contributor.TotalCharacters) / 10)
		if damping < 1 {
			damping = 1
		}
		stats.VocabularyDiversity = float64(len(contributor.UniqueWords)) / damping
	}
	if contributor.MessageCount > 0 {
		stats.AverageMessageLength = float64(contributor.TotalCharacters) / float64(contributor.MessageCount)
	}

	counts := make(map[string]int)
	var order []string // first-encountered order, chronological
	total := 0
	for _, msg := range all {
		if msg.SenderName != contributor.Name || msg.Content == "" {
			continue
		}
		for _, emoji := range textutil.ExtractEmojis(msg.Content) {
			if _, seen := counts[emoji]; !seen {
				order = append(order, emoji)
			}
			counts[emoji]++
			total++
		}
	}

	top := make([]EmojiCount, 0, len(order))
	for _, emoji := range order {
		top = append(top, EmojiCount{Emoji: emoji, Count: counts[emoji]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topEmojiLimit {
		top = top[:topEmojiLimit]
	}

	stats.EmojiUsage = EmojiUsage{
		Count:        total,
		UniqueEmojis: len(counts),
		TopEmojis:    top,
	}
	return stats
}

// CalculateAllLinguisticStats computes linguistic stats for every
// contributor, keyed by exact contributor name.
func CalculateAllLinguisticStats(contributors []*ContributorStats, all []messenger.ParsedMessage) map[string]LinguisticStats {
	result := make(map[string]LinguisticStats, len(contributors))
	for _, contributor := range contributors {
		result[contributor.Name] = CalculateLinguisticStats(contributor, all)
	}
	return result
}
