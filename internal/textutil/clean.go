package textutil

import (
	"regexp"
	"strings"
)

var (
	// reactionPhrasePattern matches reaction echo notices the export embeds
	// in message bodies: "Alice reacted ❤ to your message".
	reactionPhrasePattern = regexp.MustCompile(`(?i)\S+(?:\s+\S+)*?\s+reacted\s+\S+\s+to\s+(?:your|their|a)\s+message`)

	// unsentPattern matches the unsend system notice.
	unsentPattern = regexp.MustCompile(`(?i)This message was unsent`)

	// whitespacePattern collapses runs of whitespace.
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// IsReactionEcho reports whether text is a reaction notification rather than
// real content ("<name> reacted <emoji> to <your/their/a> message").
func IsReactionEcho(text string) bool {
	return reactionPhrasePattern.MatchString(text)
}

// IsUnsentNotice reports whether text is an unsend system notice.
func IsUnsentNotice(text string) bool {
	return unsentPattern.MatchString(text)
}

// CleanMessageText scrubs reaction artifacts out of text recovered from
// presentational markup. Pass order matters and must be preserved:
// reaction-actor names, then reaction phrases, then unsend notices, then
// emoji glyphs, then whitespace collapse.
func CleanMessageText(text string, reactionActors []string) string {
	cleaned := text

	for _, name := range reactionActors {
		if strings.TrimSpace(name) == "" {
			continue
		}
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			continue
		}
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	cleaned = reactionPhrasePattern.ReplaceAllString(cleaned, "")
	cleaned = unsentPattern.ReplaceAllString(cleaned, "")
	cleaned = StripEmojis(cleaned)
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")

	return strings.TrimSpace(cleaned)
}
