// Package messenger parses Messenger data-export files (JSON and HTML) into
// a normalized conversation model. Both formats ship inconsistent,
// presentation-oriented data; the parsers here recover a canonical message
// stream from them and nothing downstream ever sees the raw export shapes.
package messenger

// Participant is one declared member of a conversation.
type Participant struct {
	Name string `json:"name"`
}

// Reaction is an emoji acknowledgment one participant attached to a message.
type Reaction struct {
	Reaction string `json:"reaction"`
	Actor    string `json:"actor"`
}

// Photo is a photo attachment reference.
type Photo struct {
	URI               string `json:"uri"`
	CreationTimestamp int64  `json:"creation_timestamp,omitempty"`
}

// Thumbnail is a preview image reference for a video attachment.
type Thumbnail struct {
	URI string `json:"uri"`
}

// Video is a video attachment reference.
type Video struct {
	URI               string     `json:"uri"`
	CreationTimestamp int64      `json:"creation_timestamp,omitempty"`
	Thumbnail         *Thumbnail `json:"thumbnail,omitempty"`
}

// AudioFile is a voice-clip or audio attachment reference.
type AudioFile struct {
	URI               string `json:"uri"`
	CreationTimestamp int64  `json:"creation_timestamp,omitempty"`
}

// RawMessage is one platform-native message record as it appears in the
// export schema. Field names follow the documented JSON export format.
// RawMessage never escapes this package; Parse converts it to ParsedMessage.
type RawMessage struct {
	SenderName  string      `json:"sender_name"`
	TimestampMS int64       `json:"timestamp_ms"`
	Content     string      `json:"content,omitempty"`
	Reactions   []Reaction  `json:"reactions,omitempty"`
	Photos      []Photo     `json:"photos,omitempty"`
	Videos      []Video     `json:"videos,omitempty"`
	AudioFiles  []AudioFile `json:"audio_files,omitempty"`
}

// Conversation is the content of one export file: the declared participant
// list plus every message on that page. Multi-page exports produce several
// Conversations that are merged before analysis.
type Conversation struct {
	Participants []Participant `json:"participants"`
	Messages     []RawMessage  `json:"messages"`
	Title        string        `json:"title,omitempty"`
	ThreadPath   string        `json:"thread_path,omitempty"`

	// GroupPhotoURI is recovered from HTML header imagery. It is not part
	// of the JSON export schema.
	GroupPhotoURI string `json:"-"`
}

// ParticipantNames returns the declared participant names in order.
func (c *Conversation) ParticipantNames() []string {
	names := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		names = append(names, p.Name)
	}
	return names
}

// ParsedMessage is the canonical message record every analyzer consumes.
// It is immutable after creation.
type ParsedMessage struct {
	SenderName string      `json:"senderName"`
	Timestamp  int64       `json:"timestamp"` // milliseconds since epoch
	Content    string      `json:"content,omitempty"`
	Reactions  []Reaction  `json:"reactions"`
	Photos     []Photo     `json:"photos"`
	Videos     []Video     `json:"videos"`
	AudioFiles []AudioFile `json:"audioFiles"`

	// HasContent is true iff Content is a non-empty string. IsMediaOnly is
	// true iff Content is absent and at least one media list is non-empty.
	HasContent  bool `json:"hasContent"`
	IsMediaOnly bool `json:"isMediaOnly"`
}
