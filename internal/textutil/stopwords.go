package textutil

// stopWords lists tokens excluded from most-used-word scoring: articles,
// pronouns, prepositions, conjunctions, auxiliary verbs, common filler, and
// messaging-export noise ("reacted", "unsent", "message").
var stopWords = map[string]struct{}{
	// articles and determiners
	"the": {}, "and": {}, "for": {}, "not": {}, "but": {}, "all": {},
	"any": {}, "this": {}, "that": {}, "these": {}, "those": {}, "some": {},
	// pronouns
	"you": {}, "your": {}, "yours": {}, "our": {}, "ours": {}, "their": {},
	"theirs": {}, "she": {}, "her": {}, "hers": {}, "him": {}, "his": {},
	"they": {}, "them": {}, "its": {}, "who": {}, "what": {}, "which": {},
	// prepositions and conjunctions
	"with": {}, "from": {}, "into": {}, "onto": {}, "out": {}, "off": {},
	"over": {}, "under": {}, "about": {}, "after": {}, "before": {},
	"between": {}, "because": {}, "while": {}, "when": {}, "where": {},
	"then": {}, "than": {}, "also": {}, "just": {}, "like": {},
	// auxiliary and common verbs
	"are": {}, "was": {}, "were": {}, "been": {}, "being": {}, "have": {},
	"has": {}, "had": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"can": {}, "could": {}, "should": {}, "shall": {}, "may": {},
	"might": {}, "must": {}, "get": {}, "got": {}, "going": {},
	// conversational filler
	"yeah": {}, "yes": {}, "nah": {}, "okay": {}, "lol": {}, "lmao": {},
	"haha": {}, "hahaha": {}, "omg": {}, "idk": {}, "tho": {}, "dont": {},
	"cant": {}, "wont": {}, "thats": {}, "there": {}, "here": {}, "now": {},
	"one": {}, "how": {}, "why": {}, "too": {}, "very": {}, "really": {},
	// export noise
	"reacted": {}, "unsent": {}, "message": {}, "sent": {}, "attachment": {},
}

// IsStopWord reports whether token (already lowercased) is excluded from
// word-frequency scoring.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
