package textanalysis

import "strings"

// stopWords is the English stop-word list applied before keyword
// extraction. Tokens are matched after lowercasing and punctuation
// stripping, so contracted forms appear without apostrophes.
var stopWords = buildStopWords()

func buildStopWords() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "arent", "as", "at", "be", "because",
		"been", "before", "being", "below", "between", "both", "but",
		"by", "cant", "could", "couldnt", "did", "didnt", "do", "does",
		"doesnt", "doing", "dont", "down", "during", "each", "few",
		"for", "from", "further", "had", "hadnt", "has", "hasnt",
		"have", "havent", "having", "he", "her", "here", "hers",
		"herself", "him", "himself", "his", "how", "i", "if", "in",
		"into", "is", "isnt", "it", "its", "itself", "just", "me",
		"more", "most", "my", "myself", "no", "nor", "not", "now", "of",
		"off", "on", "once", "only", "or", "other", "our", "ours",
		"ourselves", "out", "over", "own", "same", "she", "should",
		"shouldnt", "so", "some", "such", "than", "that", "the",
		"their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "to", "too",
		"under", "until", "up", "very", "was", "wasnt", "we", "were",
		"werent", "what", "when", "where", "which", "while", "who",
		"whom", "why", "will", "with", "wont", "would", "wouldnt",
		"you", "your", "yours", "yourself", "yourselves",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// isStopWord reports whether the token is in the stop-word list.
func isStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}
