// Package analyzer derives year-in-review statistics from a normalized
// message stream: totals, per-contributor rollups, linguistic metrics,
// reaction leaderboards, and a monthly activity timeline. Every function is
// pure; analyzing the same input twice yields the same result.
package analyzer

import (
	"encoding/json"

	"github.com/flemzord/chatwrapped/internal/messenger"
)

// DateRange is the span between the first and last message, in milliseconds
// since epoch.
type DateRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// ChatStats holds whole-conversation totals.
type ChatStats struct {
	TotalMessages int `json:"totalMessages"`
	TotalPhotos   int `json:"totalPhotos"`
	TotalVideos   int `json:"totalVideos"`
	// TotalAudioMinutes counts one audio file as one minute; exports do not
	// reliably carry clip durations.
	TotalAudioMinutes int       `json:"totalAudioMinutes"`
	Participants      []string  `json:"participants"`
	DateRange         DateRange `json:"dateRange"`
}

// ContributorStats is the rollup for one unique sender name, keyed by the
// exact sender string. It is mutated incrementally during a single pass over
// the message stream and read-only afterward.
type ContributorStats struct {
	Name            string `json:"name"`
	MessageCount    int    `json:"messageCount"`
	PhotoCount      int    `json:"photoCount"`
	VideoCount      int    `json:"videoCount"`
	AudioMinutes    int    `json:"audioMinutes"`
	TotalCharacters int    `json:"totalCharacters"`
	EmojiCount      int    `json:"emojiCount"`

	// UniqueWords is the set of lowercase word tokens this contributor has
	// used. Emojis maps emoji glyph to use count.
	UniqueWords map[string]struct{} `json:"-"`
	Emojis      map[string]int      `json:"emojis,omitempty"`
}

// MarshalJSON flattens the unique-word set into a count, which is all
// downstream consumers need.
func (c *ContributorStats) MarshalJSON() ([]byte, error) {
	type alias ContributorStats
	return json.Marshal(struct {
		*alias
		UniqueWordCount int `json:"uniqueWordCount"`
	}{(*alias)(c), len(c.UniqueWords)})
}

// EmojiCount pairs an emoji glyph with its use count.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// EmojiUsage summarizes one contributor's emoji habits.
type EmojiUsage struct {
	Count        int          `json:"count"`
	UniqueEmojis int          `json:"uniqueEmojis"`
	TopEmojis    []EmojiCount `json:"topEmojis"`
}

// LinguisticStats holds the derived language metrics for one contributor.
type LinguisticStats struct {
	// VocabularyDiversity is the unique-word count normalized by a
	// square-root dampening of total character volume, so the score is not
	// simply proportional to talkativeness.
	VocabularyDiversity  float64    `json:"vocabularyDiversity"`
	AverageMessageLength float64    `json:"averageMessageLength"`
	EmojiUsage           EmojiUsage `json:"emojiUsage"`
}

// MostUsedWord is a contributor's single highest-frequency qualifying token.
type MostUsedWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ReactionStats pairs a message with its reaction count.
type ReactionStats struct {
	Message       messenger.ParsedMessage `json:"message"`
	ReactionCount int                     `json:"reactionCount"`
	Reactions     []messenger.Reaction    `json:"reactions"`
}

// ChatHistoryPoint is one calendar month of activity. Date is a zero-padded
// "YYYY-MM" key, so lexicographic order is chronological order.
type ChatHistoryPoint struct {
	Date             string `json:"date"`
	MessageCount     int    `json:"messageCount"`
	ParticipantCount int    `json:"participantCount"`
}

// ChampionScore names the contributor leading one linguistic category.
type ChampionScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// EmojiChampionScore names the heaviest emoji user and their favorites.
type EmojiChampionScore struct {
	Name      string       `json:"name"`
	Count     int          `json:"count"`
	TopEmojis []EmojiCount `json:"topEmojis"`
}

// Champions collects the per-category linguistic leaders.
type Champions struct {
	Wordsmith     ChampionScore      `json:"wordsmith"`
	EmojiChampion EmojiChampionScore `json:"emojiChampion"`
	MessageLength ChampionScore      `json:"messageLength"`
}

// WrappedData is the complete analysis result consumed by the presentation
// layer. It is created once per run and read-only afterward.
type WrappedData struct {
	ChatName         string                     `json:"chatName"`
	Stats            ChatStats                  `json:"stats"`
	Contributors     []*ContributorStats        `json:"contributors"`
	LinguisticStats  map[string]LinguisticStats `json:"linguisticStats"`
	MostUsedWords    map[string]MostUsedWord    `json:"mostUsedWords"`
	TopReactedPhotos []ReactionStats            `json:"topReactedPhotos"`
	TopReactedVideos []ReactionStats            `json:"topReactedVideos"`
	TopReactedText   []ReactionStats            `json:"topReactedText"`
	ChatHistory      []ChatHistoryPoint         `json:"chatHistory"`
	Champions        Champions                  `json:"champions"`
	GroupPhotoURI    string                     `json:"groupPhotoUri,omitempty"`
}
