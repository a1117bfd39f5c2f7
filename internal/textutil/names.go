package textutil

import "strings"

// systemSenders are the heading names the Messenger export uses for entries
// that are not real participants: system notices, placeholder rows, the
// exporting user's own "You" alias, and the platform assistant.
var systemSenders = []string{
	"Group photo",
	"Unknown",
	"Word effects",
	"You",
	"System",
	"Meta AI",
	"Group Invite Link: Off",
}

// IsSystemSender reports whether name identifies a system entry rather than a
// real participant. extra lists additional configured system names. Matching
// is by case-insensitive containment, mirroring how export headings embed the
// system label inside longer strings.
func IsSystemSender(name string, extra []string) bool {
	lower := strings.ToLower(name)
	for _, sys := range systemSenders {
		if name == sys || strings.Contains(lower, strings.ToLower(sys)) {
			return true
		}
	}
	for _, sys := range extra {
		if sys == "" {
			continue
		}
		if name == sys || strings.Contains(lower, strings.ToLower(sys)) {
			return true
		}
	}
	return false
}

// NamesMatch reports whether two participant names plausibly refer to the
// same person. Export files drift between name spellings (the participant
// list may carry "Bob A. Smith" while message headings carry "Bob Smith"),
// so comparison runs through progressively looser strategies: exact,
// case-insensitive, whitespace-insensitive, substring containment, and
// per-word overlap.
func NamesMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == lb {
		return true
	}

	ca, cb := collapseSpaces(la), collapseSpaces(lb)
	if ca == cb {
		return true
	}
	if strings.Contains(ca, cb) || strings.Contains(cb, ca) {
		return true
	}

	// Per-word overlap: any shared word of two or more characters counts.
	// Single letters (middle initials) are too weak a signal.
	for _, wa := range strings.Fields(la) {
		if len(wa) < 2 {
			continue
		}
		for _, wb := range strings.Fields(lb) {
			if wa == wb {
				return true
			}
		}
	}
	return false
}

// MatchName returns the first candidate that NamesMatch considers the same
// person as name, and whether one was found.
func MatchName(name string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if NamesMatch(name, c) {
			return c, true
		}
	}
	return "", false
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
