package textutil

import (
	"reflect"
	"testing"
)

func TestExtractEmojis(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no emoji", "hello world", nil},
		{"single emoji", "nice 😀 day", []string{"😀"}},
		{"multiple emojis", "😀😂 wow 🚀", []string{"😀", "😂", "🚀"}},
		{"heart dingbat", "love ❤ this", []string{"❤"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEmojis(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractEmojis(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLeadingEmoji(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"❤Bob Smith", "❤"},
		{"😀😂Jane Doe", "😀😂"},
		{"Bob Smith ❤", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LeadingEmoji(tt.text); got != tt.want {
			t.Errorf("LeadingEmoji(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestIsEmojiOnly(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"😀😂", true},
		{"😀 😂 ", true},
		{"😀 hi", false},
		{"hi", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := IsEmojiOnly(tt.text); got != tt.want {
			t.Errorf("IsEmojiOnly(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsSystemSender(t *testing.T) {
	tests := []struct {
		name  string
		extra []string
		want  bool
	}{
		{"Group photo", nil, true},
		{"You", nil, true},
		{"Meta AI", nil, true},
		{"meta ai", nil, true},
		{"Alice Johnson", nil, false},
		{"Helper Bot", []string{"Helper Bot"}, true},
		{"Alice Johnson", []string{"Helper Bot"}, false},
	}
	for _, tt := range tests {
		if got := IsSystemSender(tt.name, tt.extra); got != tt.want {
			t.Errorf("IsSystemSender(%q, %v) = %v, want %v", tt.name, tt.extra, got, tt.want)
		}
	}
}

func TestNamesMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Bob Smith", "Bob Smith", true},
		{"bob smith", "Bob Smith", true},
		{"BobSmith", "Bob Smith", true},
		{"Bob", "Bob Smith", true},
		{"Smith", "Bob Smith", true},
		{"Bob A. Smith", "Bob Smith", true},
		{"Alice", "Bob Smith", false},
		{"", "Bob", false},
		{"Bob", "", false},
		// Single-letter overlap alone must not match.
		{"A Johnson", "A Williams", false},
	}
	for _, tt := range tests {
		if got := NamesMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("NamesMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Hi there!", []string{"hi", "there"}},
		{"hi, HI. hi", []string{"hi", "hi", "hi"}},
		{"it's fine", []string{"it", "s", "fine"}},
		{"photo_123.jpg", []string{"photo_123", "jpg"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestCleanMessageText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		actors []string
		want   string
	}{
		{
			name: "plain text untouched",
			text: "see you tomorrow",
			want: "see you tomorrow",
		},
		{
			name:   "reaction actor removed",
			text:   "great idea Bob Smith",
			actors: []string{"Bob Smith"},
			want:   "great idea",
		},
		{
			name: "reaction phrase removed",
			text: "Alice reacted ❤ to your message",
			want: "",
		},
		{
			name: "their variant removed",
			text: "Bob reacted 😂 to their message",
			want: "",
		},
		{
			name: "unsend notice removed",
			text: "This message was unsent",
			want: "",
		},
		{
			name: "emoji stripped and whitespace collapsed",
			text: "so   good 😀😀",
			want: "so good",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanMessageText(tt.text, tt.actors); got != tt.want {
				t.Errorf("CleanMessageText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsReactionEcho(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Bob Smith reacted ❤ to your message", true},
		{"Alice reacted 😂 to a message", true},
		{"we reacted quickly to the news", false},
		{"hello", false},
	}
	for _, tt := range tests {
		if got := IsReactionEcho(tt.text); got != tt.want {
			t.Errorf("IsReactionEcho(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
