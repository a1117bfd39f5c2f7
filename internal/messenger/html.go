package messenger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/flemzord/chatwrapped/internal/textutil"
)

// ErrNoMessages is returned when neither structural scraping nor the embedded
// JSON fallback recovers a single message from an HTML export page.
var ErrNoMessages = errors.New("messenger: no messages found in html export")

// Selectors and patterns for the Messenger HTML export layout. One
// <section class="_a6-g"> per message: an <h2> sender heading, a
// <div class="_a6-p"> content block, an optional <ul class="_a6-q"> reaction
// list, and a footer timestamp.
const (
	sectionSelector      = "section._a6-g"
	contentSelector      = `div._2ph._a6-p, div._a6-p, div[class*="_a6-p"]`
	reactionListSelector = "ul._a6-q"
	timestampSelector    = "footer ._a72d"
	headerImageSelector  = "header img, .thread img, h1 + img, .chat-header img"
)

// Footer timestamps read "Apr 22, 2025 12:28:58 pm". Month and meridiem are
// matched case-insensitively by the time package.
const footerTimeLayout = "Jan 2, 2006 3:04:05 pm"

var (
	participantsLinePattern = regexp.MustCompile(`(?i)Participants:\s*([^<\n]+)`)
	participantsSplit       = regexp.MustCompile(`,\s*(?:and\s+)?`)

	audioExtPattern  = regexp.MustCompile(`(?i)\.(m4a|mp3|ogg|wav|aac)$`)
	audioPathPattern = regexp.MustCompile(`(?i)audio[/\\]([^\s"']+\.(?:m4a|mp3|ogg|wav|aac))`)

	// Embedded-JSON recovery, tightest to loosest.
	embeddedMessagesPattern = regexp.MustCompile(`(?s)\{[^{}]*"messages"\s*:\s*\[.*?\][^{}]*\}`)
	embeddedFullPattern     = regexp.MustCompile(`(?s)\{.*"participants".*"messages".*\}`)
	embeddedBodyPattern     = regexp.MustCompile(`(?s)\{.*"messages".*\}`)
)

// HTMLParser recovers a Conversation from one Messenger HTML export page by
// reverse-engineering message boundaries, sender attribution, reactions, and
// timestamps out of presentational markup. A single parser may be reused
// across pages; it accumulates a timestamp-fallback diagnostic counter.
type HTMLParser struct {
	extraSystemSenders []string
	now                func() time.Time
	timestampFallbacks atomic.Int64
}

// NewHTMLParser creates a parser. extraSystemSenders adds configured names to
// the built-in system-sender list.
func NewHTMLParser(extraSystemSenders ...string) *HTMLParser {
	return &HTMLParser{
		extraSystemSenders: extraSystemSenders,
		now:                time.Now,
	}
}

// TimestampFallbacks reports how many message timestamps could not be parsed
// and were defaulted to the wall clock. Losing precise ordering for one
// message is preferred over dropping it, but callers should surface the count.
func (p *HTMLParser) TimestampFallbacks() int64 {
	return p.timestampFallbacks.Load()
}

// Parse converts one HTML export page into a Conversation. When structural
// scraping finds nothing it falls back to a JSON payload embedded in a script
// tag before returning ErrNoMessages.
func (p *HTMLParser) Parse(raw []byte) (*Conversation, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("messenger: parse html export: %w", err)
	}

	declared := extractParticipantsLine(raw)
	roster := newRoster(declared)
	groupPhoto := extractGroupPhoto(doc)

	var messages []RawMessage
	doc.Find(sectionSelector).Each(func(_ int, section *goquery.Selection) {
		msg, ok := p.parseSection(section, roster)
		if ok {
			messages = append(messages, msg)
		}
	})

	if len(messages) == 0 {
		if conv, ok := recoverEmbeddedJSON(doc); ok {
			return conv, nil
		}
		return nil, ErrNoMessages
	}

	// Export pages list newest messages first; reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	conv := &Conversation{
		Messages:      messages,
		GroupPhotoURI: groupPhoto,
	}
	for _, name := range roster.names {
		conv.Participants = append(conv.Participants, Participant{Name: name})
	}
	return conv, nil
}

// parseSection extracts one message from its container. ok is false when the
// section is a system notification or yields no content, media, or reactions.
func (p *HTMLParser) parseSection(section *goquery.Selection, roster *roster) (RawMessage, bool) {
	sender := strings.TrimSpace(section.Find("h2").First().Text())
	if sender == "" {
		sender = "Unknown"
	}

	// System entries (placeholder rows, "You" aliases, the platform
	// assistant) are never participants and their messages carry no
	// analyzable content. Classify before fuzzy matching so a label like
	// "You" cannot substring-match a real participant.
	if textutil.IsSystemSender(sender, p.extraSystemSenders) {
		return RawMessage{}, false
	}

	// Per-message headings drift from the declared participant list
	// ("Bob Smith" vs "Bob A. Smith"), so attribute fuzzily. Unmatched but
	// plausible senders are kept and join the live roster: exports are
	// observed to contain legitimate name variants.
	if canonical, ok := roster.match(sender); ok {
		sender = canonical
	}

	timestamp := p.parseTimestamp(section)
	reactions, reactionActors := parseReactions(section, sender)
	content := extractContent(section, reactionActors)

	if isSystemNotification(content) {
		return RawMessage{}, false
	}

	photos := extractPhotos(section, timestamp)
	videos := extractVideos(section, timestamp)
	audio := extractAudio(section, content, timestamp)

	// Empty or whitespace-only artifacts are common in markup and must not
	// become phantom messages.
	if content == "" && len(photos) == 0 && len(videos) == 0 && len(audio) == 0 && len(reactions) == 0 {
		return RawMessage{}, false
	}

	roster.add(sender)

	return RawMessage{
		SenderName:  sender,
		TimestampMS: timestamp,
		Content:     content,
		Reactions:   reactions,
		Photos:      photos,
		Videos:      videos,
		AudioFiles:  audio,
	}, true
}

// parseTimestamp reads the footer timestamp. On any parse failure it falls
// back to the current wall-clock time rather than dropping the message, and
// counts the approximation.
func (p *HTMLParser) parseTimestamp(section *goquery.Selection) int64 {
	text := strings.TrimSpace(section.Find(timestampSelector).First().Text())
	if text != "" {
		// Lowercase so an uppercase "PM" still satisfies the "pm" layout;
		// month names match case-insensitively either way.
		normalized := strings.ToLower(text)
		if ts, err := time.ParseInLocation(footerTimeLayout, normalized, time.Local); err == nil {
			return ts.UnixMilli()
		}
		// Some variants drop the seconds field.
		if ts, err := time.ParseInLocation("Jan 2, 2006 3:04 pm", normalized, time.Local); err == nil {
			return ts.UnixMilli()
		}
	}
	p.timestampFallbacks.Add(1)
	return p.now().UnixMilli()
}

// parseReactions splits each reaction entry's "<emoji><actor name>" text on
// the trailing edge of the leading emoji run, since the export provides no
// delimiter. Entries with no recoverable actor default to the message sender.
func parseReactions(section *goquery.Selection, sender string) ([]Reaction, []string) {
	var reactions []Reaction
	var actors []string

	section.Find(reactionListSelector).First().Find("li span").Each(func(_ int, span *goquery.Selection) {
		text := strings.TrimSpace(span.Text())
		if text == "" {
			return
		}
		if emoji := textutil.LeadingEmoji(text); emoji != "" {
			// Variation selectors ride along after the glyph.
			actor := strings.TrimSpace(strings.TrimLeft(text[len(emoji):], "️‍"))
			if actor != "" {
				reactions = append(reactions, Reaction{Reaction: emoji, Actor: actor})
				actors = append(actors, actor)
			} else {
				reactions = append(reactions, Reaction{Reaction: emoji, Actor: sender})
			}
			return
		}
		// A short glyph-only entry with an emoji somewhere in it is still a
		// reaction from the sender.
		if len([]rune(text)) <= 3 && textutil.ContainsEmoji(text) {
			reactions = append(reactions, Reaction{Reaction: text, Actor: sender})
		}
	})

	return reactions, actors
}

// extractContent recovers the message body while positively excluding
// reaction-list text nested inside the same container.
func extractContent(section *goquery.Selection, reactionActors []string) string {
	contentDiv := section.Find(contentSelector).First()

	if contentDiv.Length() > 0 {
		clone := contentDiv.Clone()
		removeReactionSubtree(clone)

		if text := collectBlockText(clone, reactionActors); text != "" {
			return text
		}
		if text := textutil.CleanMessageText(clone.Text(), reactionActors); text != "" {
			return text
		}
		if text := collectLinkText(clone); text != "" {
			return text
		}
	}

	// Second fallback: the whole container minus header, footer, and
	// reaction list, cleaned the same way.
	clone := section.Clone()
	clone.Find("h2, h3").Remove()
	clone.Find("footer").Remove()
	clone.Find(reactionListSelector).Remove()
	return textutil.CleanMessageText(clone.Text(), reactionActors)
}

// removeReactionSubtree strips the reaction list from a cloned content node.
// When the list sits inside a wrapper div that is a direct child of the
// clone, the whole wrapper goes; otherwise just the list.
func removeReactionSubtree(clone *goquery.Selection) {
	list := clone.Find(reactionListSelector)
	if list.Length() == 0 {
		return
	}
	wrapper := list.Closest("div")
	if wrapper.Length() > 0 && isDirectChild(clone, wrapper) {
		wrapper.Remove()
		return
	}
	list.Remove()
}

func isDirectChild(parent, child *goquery.Selection) bool {
	if len(parent.Nodes) == 0 || len(child.Nodes) == 0 {
		return false
	}
	return child.Nodes[0].Parent == parent.Nodes[0]
}

// collectBlockText gathers text from direct child block elements, filtering
// out blocks that are reaction annotations: text composed entirely of known
// reaction-actor names, or entirely of emoji glyphs.
func collectBlockText(clone *goquery.Selection, reactionActors []string) string {
	actorSet := make(map[string]struct{}, len(reactionActors))
	for _, actor := range reactionActors {
		for _, word := range strings.Fields(actor) {
			actorSet[word] = struct{}{}
		}
		actorSet[actor] = struct{}{}
	}

	var parts []string
	clone.Children().Each(func(_ int, child *goquery.Selection) {
		if !child.Is("div") {
			return
		}
		if child.Find(reactionListSelector).Length() > 0 {
			return
		}
		text := strings.TrimSpace(child.Text())
		if text == "" {
			return
		}
		if isOnlyActorNames(text, actorSet) || textutil.IsEmojiOnly(text) {
			return
		}
		if strings.Contains(text, "reacted") || strings.Contains(text, "unsent") {
			return
		}
		parts = append(parts, text)
	})
	return strings.TrimSpace(strings.Join(parts, " "))
}

func isOnlyActorNames(text string, actorWords map[string]struct{}) bool {
	words := strings.Fields(text)
	if len(words) == 0 || len(actorWords) == 0 {
		return false
	}
	for _, word := range words {
		if _, ok := actorWords[word]; !ok {
			return false
		}
	}
	return true
}

// collectLinkText falls back to anchor hrefs when a content block holds only
// links (shared URLs render this way).
func collectLinkText(clone *goquery.Selection) string {
	var parts []string
	clone.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		if href := link.AttrOr("href", ""); href != "" {
			parts = append(parts, href)
		} else if text := strings.TrimSpace(link.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// isSystemNotification reports whether recovered content is purely a system
// notice (unsent marker, album/group membership change, reaction echo) whose
// message should be dropped entirely.
func isSystemNotification(content string) bool {
	if content == "" {
		return false
	}
	return textutil.IsUnsentNotice(content) ||
		textutil.IsReactionEcho(content) ||
		strings.Contains(content, "You created") ||
		strings.Contains(content, "You deleted")
}

func extractPhotos(section *goquery.Selection, timestamp int64) []Photo {
	var photos []Photo
	section.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := img.AttrOr("src", "")
		if src == "" {
			src = img.AttrOr("data-src", "")
		}
		if src == "" || looksLikeIcon(src) {
			return
		}
		photos = append(photos, Photo{URI: src, CreationTimestamp: timestamp})
	})
	return photos
}

func extractVideos(section *goquery.Selection, timestamp int64) []Video {
	var videos []Video
	section.Find("video").Each(func(_ int, video *goquery.Selection) {
		src := video.AttrOr("src", "")
		if src == "" {
			src = video.AttrOr("data-src", "")
		}
		if src == "" {
			return
		}
		videos = append(videos, Video{URI: src, CreationTimestamp: timestamp})
	})
	return videos
}

func extractAudio(section *goquery.Selection, content string, timestamp int64) []AudioFile {
	var audio []AudioFile

	section.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href := link.AttrOr("href", "")
		if audioExtPattern.MatchString(href) {
			audio = append(audio, AudioFile{URI: href, CreationTimestamp: timestamp})
		}
	})
	section.Find("audio").Each(func(_ int, el *goquery.Selection) {
		src := el.AttrOr("src", "")
		if src == "" {
			src = el.AttrOr("data-src", "")
		}
		if audioExtPattern.MatchString(src) {
			audio = append(audio, AudioFile{URI: src, CreationTimestamp: timestamp})
		}
	})

	// A voice clip sometimes survives only as a path inside the content text.
	if len(audio) == 0 && content != "" {
		if m := audioPathPattern.FindStringSubmatch(content); m != nil {
			audio = append(audio, AudioFile{URI: m[1], CreationTimestamp: timestamp})
		}
	}
	return audio
}

// looksLikeIcon filters out emoji sprites, UI icons, and inline data URIs
// that appear as <img> elements but are not photo attachments.
func looksLikeIcon(src string) bool {
	return strings.Contains(src, "emoji") ||
		strings.Contains(src, "icon") ||
		strings.HasPrefix(src, "data:")
}

// extractParticipantsLine pulls the literal "Participants: a, b, and c" line
// out of the raw page, building the authoritative participant set.
func extractParticipantsLine(raw []byte) []string {
	m := participantsLinePattern.FindSubmatch(raw)
	if m == nil {
		return nil
	}
	var names []string
	for _, part := range participantsSplit.Split(string(m[1]), -1) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func extractGroupPhoto(doc *goquery.Document) string {
	img := doc.Find(headerImageSelector).First()
	if img.Length() == 0 {
		return ""
	}
	src := img.AttrOr("src", "")
	if src == "" {
		src = img.AttrOr("data-src", "")
	}
	if src == "" || looksLikeIcon(src) {
		return ""
	}
	return src
}

// recoverEmbeddedJSON hunts for a full conversation payload inside script
// tags (some export variants ship one) and, failing that, the document body.
func recoverEmbeddedJSON(doc *goquery.Document) (*Conversation, bool) {
	tryDecode := func(blob string) (*Conversation, bool) {
		var conv Conversation
		if err := json.Unmarshal([]byte(blob), &conv); err != nil {
			return nil, false
		}
		if len(conv.Messages) == 0 {
			return nil, false
		}
		return &conv, true
	}

	var found *Conversation
	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		text := script.Text()
		for _, blob := range embeddedMessagesPattern.FindAllString(text, -1) {
			if conv, ok := tryDecode(blob); ok {
				found = conv
				return false
			}
		}
		if blob := embeddedFullPattern.FindString(text); blob != "" {
			if conv, ok := tryDecode(blob); ok {
				found = conv
				return false
			}
		}
		return true
	})
	if found != nil {
		return found, true
	}

	body := doc.Find("body").Text()
	if blob := embeddedBodyPattern.FindString(body); blob != "" {
		if conv, ok := tryDecode(blob); ok {
			return conv, true
		}
	}
	return nil, false
}

// roster tracks the live participant set in first-seen order.
type roster struct {
	names []string
	seen  map[string]struct{}
}

func newRoster(declared []string) *roster {
	r := &roster{seen: make(map[string]struct{})}
	for _, name := range declared {
		r.add(name)
	}
	return r
}

func (r *roster) add(name string) {
	if _, ok := r.seen[name]; ok {
		return
	}
	r.seen[name] = struct{}{}
	r.names = append(r.names, name)
}

// match fuzzy-matches name against the roster and returns the canonical
// spelling when one exists.
func (r *roster) match(name string) (string, bool) {
	if _, ok := r.seen[name]; ok {
		return name, true
	}
	return textutil.MatchName(name, r.names)
}
