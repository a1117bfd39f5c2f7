package archive

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	messageFilePattern  = regexp.MustCompile(`(?i)messages/inbox/[^/]+/message_\d+\.(?:json|html)$`)
	messageIndexPattern = regexp.MustCompile(`message_(\d+)\.(?:json|html)$`)
	inboxFolderPattern  = regexp.MustCompile(`inbox[/\\]([^/\\]+)`)
)

// MessageFile is one message_N.json or message_N.html file from an export.
type MessageFile struct {
	Path string
	Data []byte
}

// IsHTML reports whether the file is an HTML export page.
func (f MessageFile) IsHTML() bool {
	return hasSuffixFold(f.Path, ".html")
}

// MessageFiles finds every messages/inbox/<chat>/message_N.{json,html} file
// in the set, ordered by numeric suffix so multi-page exports replay in the
// order the exporter wrote them.
func MessageFiles(files FileSet) []MessageFile {
	var matched []MessageFile
	for path, data := range files {
		if messageFilePattern.MatchString(path) {
			matched = append(matched, MessageFile{Path: path, Data: data})
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, aOK := messageIndex(matched[i].Path)
		b, bOK := messageIndex(matched[j].Path)
		if aOK && bOK && a != b {
			return a < b
		}
		return matched[i].Path < matched[j].Path
	})
	return matched
}

func messageIndex(path string) (int, bool) {
	m := messageIndexPattern.FindStringSubmatch(path)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Chats lists the distinct conversations found under messages/inbox, by
// display name, sorted.
func Chats(files FileSet) []string {
	seen := make(map[string]struct{})
	for path := range files {
		m := inboxFolderPattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		seen[displayName(m[1])] = struct{}{}
	}
	chats := make([]string, 0, len(seen))
	for chat := range seen {
		chats = append(chats, chat)
	}
	sort.Strings(chats)
	return chats
}

// FilterChat keeps only the files belonging to the named conversation.
// The export folder usually carries an underscore-joined hash-suffixed form
// of the name, so both spellings are tried.
func FilterChat(files FileSet, chatName string) FileSet {
	underscored := strings.ReplaceAll(chatName, " ", "_")
	filtered := make(FileSet)
	for path, data := range files {
		if strings.Contains(path, "inbox/"+underscored) || strings.Contains(path, "inbox/"+chatName) {
			filtered[path] = data
		}
	}
	return filtered
}

// ChatName derives a display name for the conversation a file belongs to.
// A title parsed out of the conversation data wins; otherwise the inbox
// folder name is used with its hash suffix stripped. "Unknown Chat" when
// neither is available.
func ChatName(path, title string) string {
	if title != "" {
		return title
	}
	m := inboxFolderPattern.FindStringSubmatch(path)
	if m != nil {
		return displayName(m[1])
	}
	return "Unknown Chat"
}

// displayName strips the exporter's _<hash> suffix from an inbox folder name.
func displayName(folder string) string {
	name, _, _ := strings.Cut(folder, "_")
	return name
}
