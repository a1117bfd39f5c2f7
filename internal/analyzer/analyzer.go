package analyzer

import (
	"github.com/flemzord/chatwrapped/internal/messenger"
	"github.com/flemzord/chatwrapped/internal/textutil"
)

// Options tunes an analysis run. The zero value is usable.
type Options struct {
	// LeaderboardLimit caps the three reaction leaderboards.
	// DefaultLeaderboardLimit when <= 0.
	LeaderboardLimit int

	// ExtraSystemSenders adds configured names to the built-in
	// system-sender list used by the chat-history generator.
	ExtraSystemSenders []string

	// ExtraStopWords extends the built-in stop list used by the
	// most-used-word scorer.
	ExtraStopWords []string

	// GroupPhotoURI is carried through to the result when the parser
	// recovered one.
	GroupPhotoURI string
}

// Analyze composes every calculator into one immutable WrappedData.
// allParticipants optionally declares the full roster: declared participants
// who sent no messages are appended with all-zero stats so full-roster
// displays still show them, matched fuzzily against existing contributors to
// avoid duplicate entries for name variants. Analyze is stateless and
// idempotent given the same input.
func Analyze(messages []messenger.ParsedMessage, chatName string, allParticipants []string, opts Options) *WrappedData {
	stats := CalculateChatStats(messages)
	contributors := CalculateContributorStats(messages)
	contributors = reconcileParticipants(contributors, allParticipants)

	linguistic := CalculateAllLinguisticStats(contributors, messages)

	participantNames := allParticipants
	if len(participantNames) == 0 {
		participantNames = stats.Participants
	}
	mostUsed := CalculateMostUsedWords(messages, participantNames, opts.ExtraStopWords)

	reactions := CalculateReactionStats(messages)

	return &WrappedData{
		ChatName:         chatName,
		Stats:            stats,
		Contributors:     contributors,
		LinguisticStats:  linguistic,
		MostUsedWords:    mostUsed,
		TopReactedPhotos: TopReactedPhotos(reactions, opts.LeaderboardLimit),
		TopReactedVideos: TopReactedVideos(reactions, opts.LeaderboardLimit),
		TopReactedText:   TopReactedText(reactions, opts.LeaderboardLimit),
		ChatHistory:      GenerateChatHistory(messages, opts.ExtraSystemSenders),
		Champions:        FindChampions(linguistic, contributors),
		GroupPhotoURI:    opts.GroupPhotoURI,
	}
}

// reconcileParticipants appends an all-zero rollup for every declared
// participant that no existing contributor fuzzily matches.
func reconcileParticipants(contributors []*ContributorStats, declared []string) []*ContributorStats {
	for _, name := range declared {
		if name == "" {
			continue
		}
		matched := false
		for _, contributor := range contributors {
			if textutil.NamesMatch(contributor.Name, name) {
				matched = true
				break
			}
		}
		if !matched {
			contributors = append(contributors, newContributorStats(name))
		}
	}
	return contributors
}
