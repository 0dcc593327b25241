package textanalysis

import (
	"math"
	"sort"

	"github.com/vibeplace/vibeplace/pkg/types"
)

// Keywords extracts the top representative terms for a document corpus
// using TF-IDF over unigrams and bigrams, with stop words removed.
// The score of a term is its mean tf-idf across documents, so terms
// frequent in one document but rare in the corpus rank highest.
//
// Fewer than max terms may be returned when the vocabulary is small;
// an unusable corpus (empty, all stop words) yields an empty slice.
// Ties are broken alphabetically so extraction is deterministic.
func (a *Analyzer) Keywords(docs []string, max int) []types.Keyword {
	if max <= 0 {
		max = a.maxKeywords
	}

	terms := make([][]string, 0, len(docs))
	for _, doc := range docs {
		t := extractTerms(doc)
		if len(t) > 0 {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return []types.Keyword{}
	}

	// Document frequency per term.
	df := make(map[string]int)
	for _, docTerms := range terms {
		seen := make(map[string]struct{}, len(docTerms))
		for _, term := range docTerms {
			if _, ok := seen[term]; !ok {
				df[term]++
				seen[term] = struct{}{}
			}
		}
	}

	// idf = log(N / (df + 1)) + 1, smoothed so corpus-wide terms still
	// carry a small positive weight.
	n := float64(len(terms))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(n/(float64(count)+1)) + 1
	}

	// Mean tf-idf across documents.
	scores := make(map[string]float64, len(df))
	for _, docTerms := range terms {
		tf := make(map[string]float64, len(docTerms))
		for _, term := range docTerms {
			tf[term]++
		}
		total := float64(len(docTerms))
		for term, count := range tf {
			scores[term] += (count / total) * idf[term] / n
		}
	}

	keywords := make([]types.Keyword, 0, len(scores))
	for term, score := range scores {
		keywords = append(keywords, types.Keyword{Word: term, Score: score})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Word < keywords[j].Word
	})

	if len(keywords) > max {
		keywords = keywords[:max]
	}
	return keywords
}

// extractTerms tokenizes a document and returns its candidate terms:
// non-stop-word unigrams plus bigrams of adjacent non-stop-word tokens.
func extractTerms(doc string) []string {
	tokens := Tokenize(doc)

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isStopWord(tok) && len(tok) > 1 {
			kept = append(kept, tok)
		}
	}

	terms := make([]string, 0, len(kept)*2)
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}
