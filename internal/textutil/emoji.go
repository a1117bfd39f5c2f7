// Package textutil provides the pure text-normalization helpers shared by the
// parsers and analyzers: emoji extraction, system-sender classification,
// stop-word filtering, fuzzy name matching, and reaction-text scrubbing.
package textutil

import (
	"regexp"
	"strings"
)

// emojiPattern matches a single emoji glyph. The ranges cover Miscellaneous
// Symbols and Pictographs through Supplemental Symbols, Dingbats, Emoticons,
// Transport, and Regional Indicators — the same ranges the Messenger export
// uses for reactions.
var emojiPattern = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}]|[\x{2600}-\x{27FF}]|[\x{1F600}-\x{1F64F}]|[\x{1F680}-\x{1F6FF}]|[\x{1F1E0}-\x{1F1FF}]`)

// leadingEmojiPattern matches a run of emoji glyphs at the start of a string.
var leadingEmojiPattern = regexp.MustCompile(`^(?:[\x{1F300}-\x{1F9FF}]|[\x{2600}-\x{27FF}]|[\x{1F600}-\x{1F64F}]|[\x{1F680}-\x{1F6FF}]|[\x{1F1E0}-\x{1F1FF}])+`)

// ExtractEmojis returns every emoji glyph in text, in order of appearance.
func ExtractEmojis(text string) []string {
	return emojiPattern.FindAllString(text, -1)
}

// ContainsEmoji reports whether text contains at least one emoji glyph.
func ContainsEmoji(text string) bool {
	return emojiPattern.MatchString(text)
}

// LeadingEmoji returns the run of emoji glyphs at the start of text, or ""
// when text does not begin with an emoji. Used to split HTML reaction entries
// of the form "<emoji><actor name>" where no delimiter separates the two.
func LeadingEmoji(text string) string {
	return leadingEmojiPattern.FindString(text)
}

// StripEmojis removes every emoji glyph from text.
func StripEmojis(text string) string {
	return emojiPattern.ReplaceAllString(text, "")
}

// IsEmojiOnly reports whether text consists solely of emoji glyphs and
// whitespace. Such blocks inside an HTML message container are reaction
// annotations, not content.
func IsEmojiOnly(text string) bool {
	stripped := strings.TrimSpace(StripEmojis(text))
	return stripped == "" && strings.TrimSpace(text) != ""
}
