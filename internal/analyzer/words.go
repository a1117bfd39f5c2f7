package analyzer

import (
	"regexp"
	"strings"

	"github.com/flemzord/chatwrapped/internal/messenger"
	"github.com/flemzord/chatwrapped/internal/textutil"
)

// minWordLength drops short tokens from most-used-word scoring.
const minWordLength = 3

// urlPattern removes whole URLs before tokenization so their fragments
// ("example", "index") never score as vocabulary.
var urlPattern = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)

// urlNoise lists tokens that survive tokenization of URLs and carry no
// vocabulary signal.
var urlNoise = map[string]struct{}{
	"http": {}, "https": {}, "www": {}, "com": {}, "org": {}, "net": {},
}

// CalculateMostUsedWords finds each contributor's single highest-frequency
// qualifying token. participants supplies the names whose own name-parts are
// excluded, so nobody's "most used word" is just someone's name said
// repeatedly. Contributors with no qualifying tokens are omitted.
//
// Reaction echoes, unsend/creation notices, and photo-carrying messages
// (captions) are excluded from scoring entirely. Ties resolve to the first
// maximum encountered in chronological token order. extraStopWords extends
// the built-in stop list with configured, chat-specific noise.
func CalculateMostUsedWords(messages []messenger.ParsedMessage, participants, extraStopWords []string) map[string]MostUsedWord {
	nameParts := participantNameParts(participants)
	extraStops := make(map[string]struct{}, len(extraStopWords))
	for _, word := range extraStopWords {
		extraStops[strings.ToLower(strings.TrimSpace(word))] = struct{}{}
	}

	type tally struct {
		counts map[string]int
		order  []string
	}
	byContributor := make(map[string]*tally)

	for _, msg := range messages {
		if msg.Content == "" || len(msg.Photos) > 0 {
			continue
		}
		if textutil.IsReactionEcho(msg.Content) || textutil.IsUnsentNotice(msg.Content) {
			continue
		}
		if strings.Contains(msg.Content, "You created") || strings.Contains(msg.Content, "You deleted") {
			continue
		}

		t, ok := byContributor[msg.SenderName]
		if !ok {
			t = &tally{counts: make(map[string]int)}
			byContributor[msg.SenderName] = t
		}

		for _, token := range textutil.Tokenize(urlPattern.ReplaceAllString(msg.Content, " ")) {
			if !qualifies(token, nameParts, extraStops) {
				continue
			}
			if _, seen := t.counts[token]; !seen {
				t.order = append(t.order, token)
			}
			t.counts[token]++
		}
	}

	result := make(map[string]MostUsedWord)
	for name, t := range byContributor {
		best := MostUsedWord{}
		for _, token := range t.order {
			if t.counts[token] > best.Count {
				best = MostUsedWord{Word: token, Count: t.counts[token]}
			}
		}
		if best.Word != "" {
			result[name] = best
		}
	}
	return result
}

func qualifies(token string, nameParts, extraStops map[string]struct{}) bool {
	if len(token) < minWordLength {
		return false
	}
	if textutil.IsStopWord(token) {
		return false
	}
	if _, ok := extraStops[token]; ok {
		return false
	}
	// Underscores and pure numbers indicate system identifiers (filenames,
	// IDs), not vocabulary.
	if strings.Contains(token, "_") || textutil.IsNumeric(token) {
		return false
	}
	if _, ok := urlNoise[token]; ok {
		return false
	}
	if _, ok := nameParts[token]; ok {
		return false
	}
	return true
}

// participantNameParts collects every participant's full lowercase name and
// each of its words.
func participantNameParts(participants []string) map[string]struct{} {
	parts := make(map[string]struct{})
	for _, name := range participants {
		lower := strings.ToLower(strings.TrimSpace(name))
		if lower == "" {
			continue
		}
		parts[lower] = struct{}{}
		for _, word := range strings.Fields(lower) {
			parts[word] = struct{}{}
		}
	}
	return parts
}
