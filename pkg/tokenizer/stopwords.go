package tokenizer

// commonWords is a map of frequently occurring words that add little signal
// to a frequency ranking. Entries are stored in normalized form (lowercase,
// punctuation stripped), so contractions appear without apostrophes.
// This list can be extended as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "also": {}, "am": {}, "an": {}, "and": {},
	"another": {}, "any": {}, "are": {}, "arent": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "cant": {}, "could": {}, "couldnt": {},

	"did": {}, "didnt": {}, "do": {}, "does": {}, "doesnt": {},
	"doing": {}, "done": {}, "dont": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "even": {}, "ever": {},
	"every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "hadnt": {}, "has": {}, "hasnt": {}, "have": {},
	"havent": {}, "having": {}, "he": {}, "her": {}, "here": {},
	"hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "however": {},

	"i": {}, "if": {}, "im": {}, "in": {}, "into": {}, "is": {},
	"isnt": {}, "it": {}, "its": {}, "itself": {}, "ive": {},

	"just": {},

	"let": {}, "lets": {}, "like": {},

	"may": {}, "me": {}, "might": {}, "more": {}, "most": {}, "much": {},
	"must": {}, "my": {}, "myself": {},

	"never": {}, "no": {}, "nor": {}, "not": {}, "nothing": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "or": {}, "other": {}, "our": {}, "ours": {},
	"ourselves": {}, "out": {}, "over": {}, "own": {},

	"same": {}, "shall": {}, "she": {}, "should": {}, "shouldnt": {},
	"since": {}, "so": {}, "some": {}, "such": {},

	"than": {}, "that": {}, "thats": {}, "the": {}, "their": {},
	"theirs": {}, "them": {}, "themselves": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"thus": {}, "to": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {},

	"was": {}, "wasnt": {}, "we": {}, "well": {}, "were": {},
	"werent": {}, "what": {}, "when": {}, "where": {}, "whether": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "whose": {},
	"why": {}, "will": {}, "with": {}, "within": {}, "without": {},
	"wont": {}, "would": {}, "wouldnt": {},

	"yet": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},
}

// IsStopword checks if a normalized token is a common word that the
// filtered tokenizer drops.
func IsStopword(word string) bool {
	_, exists := commonWords[word]
	return exists
}
