package analyzer

import (
	"sort"
	"strings"

	"github.com/flemzord/chatwrapped/internal/messenger"
)

// DefaultLeaderboardLimit caps the reaction leaderboards when the caller
// does not supply a limit.
const DefaultLeaderboardLimit = 10

// CalculateReactionStats projects every message with at least one reaction
// into a ReactionStats and sorts descending by reaction count. The sort is
// stable, so ties preserve chronological order.
func CalculateReactionStats(messages []messenger.ParsedMessage) []ReactionStats {
	var stats []ReactionStats
	for _, msg := range messages {
		if len(msg.Reactions) == 0 {
			continue
		}
		stats = append(stats, ReactionStats{
			Message:       msg,
			ReactionCount: len(msg.Reactions),
			Reactions:     msg.Reactions,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].ReactionCount > stats[j].ReactionCount
	})
	return stats
}

// TopReactedPhotos returns the most-reacted messages carrying at least one
// photo, capped at limit (DefaultLeaderboardLimit when limit <= 0).
func TopReactedPhotos(stats []ReactionStats, limit int) []ReactionStats {
	return topReactedBy(stats, limit, func(s ReactionStats) bool {
		return len(s.Message.Photos) > 0
	})
}

// TopReactedVideos returns the most-reacted messages carrying at least one
// video.
func TopReactedVideos(stats []ReactionStats, limit int) []ReactionStats {
	return topReactedBy(stats, limit, func(s ReactionStats) bool {
		return len(s.Message.Videos) > 0
	})
}

// TopReactedText returns the most-reacted pure-text messages: non-blank
// content and no photos, videos, or audio files. A message with both text
// and a photo belongs to the photo leaderboard only.
func TopReactedText(stats []ReactionStats, limit int) []ReactionStats {
	return topReactedBy(stats, limit, func(s ReactionStats) bool {
		return strings.TrimSpace(s.Message.Content) != "" &&
			len(s.Message.Photos) == 0 &&
			len(s.Message.Videos) == 0 &&
			len(s.Message.AudioFiles) == 0
	})
}

func topReactedBy(stats []ReactionStats, limit int, keep func(ReactionStats) bool) []ReactionStats {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	result := []ReactionStats{}
	for _, s := range stats {
		if !keep(s) {
			continue
		}
		result = append(result, s)
		if len(result) == limit {
			break
		}
	}
	return result
}
