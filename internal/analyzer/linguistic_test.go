package analyzer

import (
	"math"
	"testing"

	"github.com/flemzord/chatwrapped/internal/messenger"
)

func TestCalculateLinguisticStats_Diversity(t *testing.T) {
	messages := []messenger.ParsedMessage{
		msg("Alice", 1, "hi"),
		msg("Alice", 2, "hi there you"),
	}
	contributor := CalculateContributorStats(messages)[0]
	stats := CalculateLinguisticStats(contributor, messages)

	// uniqueWords / max(1, sqrt(totalChars/10)) with 3 words, 14 chars.
	want := 3 / math.Sqrt(14.0/10)
	if math.Abs(stats.VocabularyDiversity-want) > 1e-9 {
		t.Errorf("VocabularyDiversity = %v, want %v", stats.VocabularyDiversity, want)
	}
	if got, want := stats.AverageMessageLength, 7.0; got != want {
		t.Errorf("AverageMessageLength = %v, want %v", got, want)
	}
}

func TestCalculateLinguisticStats_DampingFloor(t *testing.T) {
	// 2 chars: sqrt(0.2) < 1, so the divisor clamps to 1.
	messages := []messenger.ParsedMessage{msg("Alice", 1, "hi")}
	contributor := CalculateContributorStats(messages)[0]
	stats := CalculateLinguisticStats(contributor, messages)
	if stats.VocabularyDiversity != 1 {
		t.Errorf("VocabularyDiversity = %v, want 1", stats.VocabularyDiversity)
	}
}

func TestCalculateLinguisticStats_NoContent(t *testing.T) {
	messages := []messenger.ParsedMessage{msg("Alice", 1, "")}
	contributor := CalculateContributorStats(messages)[0]
	stats := CalculateLinguisticStats(contributor, messages)
	if stats.VocabularyDiversity != 0 || stats.AverageMessageLength != 0 {
		t.Errorf("stats = %+v, want zero diversity and length", stats)
	}
	if stats.EmojiUsage.Count != 0 || len(stats.EmojiUsage.TopEmojis) != 0 {
		t.Errorf("EmojiUsage = %+v, want empty", stats.EmojiUsage)
	}
}

func TestCalculateLinguisticStats_EmojiTieBreak(t *testing.T) {
	// 😂 and 🚀 both appear twice; 😀 three times. Ties break by
	// first-encountered (chronological) order.
	messages := []messenger.ParsedMessage{
		msg("Alice", 1, "😂 then 🚀"),
		msg("Alice", 2, "😀😀😀"),
		msg("Alice", 3, "🚀 and 😂"),
	}
	contributor := CalculateContributorStats(messages)[0]
	stats := CalculateLinguisticStats(contributor, messages)

	if stats.EmojiUsage.Count != 7 {
		t.Errorf("Count = %d, want 7", stats.EmojiUsage.Count)
	}
	if stats.EmojiUsage.UniqueEmojis != 3 {
		t.Errorf("UniqueEmojis = %d, want 3", stats.EmojiUsage.UniqueEmojis)
	}
	top := stats.EmojiUsage.TopEmojis
	if len(top) != 3 {
		t.Fatalf("len(TopEmojis) = %d, want 3", len(top))
	}
	if top[0].Emoji != "😀" || top[0].Count != 3 {
		t.Errorf("TopEmojis[0] = %+v, want 😀 x3", top[0])
	}
	if top[1].Emoji != "😂" || top[2].Emoji != "🚀" {
		t.Errorf("tie order = [%s, %s], want first-encountered [😂, 🚀]", top[1].Emoji, top[2].Emoji)
	}
}

func TestFindChampions(t *testing.T) {
	messages := []messenger.ParsedMessage{
		msg("Alice", 1, "unique varied vocabulary throughout here"),
		msg("Bob", 2, "😀😀😀😀"),
		msg("Bob", 3, "ok"),
	}
	contributors := CalculateContributorStats(messages)
	linguistic := CalculateAllLinguisticStats(contributors, messages)

	champions := FindChampions(linguistic, contributors)
	if champions.Wordsmith.Name != "Alice" {
		t.Errorf("Wordsmith = %q, want Alice", champions.Wordsmith.Name)
	}
	if champions.EmojiChampion.Name != "Bob" || champions.EmojiChampion.Count != 4 {
		t.Errorf("EmojiChampion = %+v, want Bob x4", champions.EmojiChampion)
	}
	if champions.MessageLength.Name != "Alice" {
		t.Errorf("MessageLength = %q, want Alice", champions.MessageLength.Name)
	}
}
