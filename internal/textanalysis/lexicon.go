package textanalysis

// sentimentLexicon maps tokens to polarity weights in [-1, 1]. The list
// is weighted toward vocabulary that actually shows up in venue reviews:
// food, service, atmosphere, noise, crowding.
var sentimentLexicon = map[string]float64{
	// Strongly positive
	"amazing": 0.9, "awesome": 0.9, "excellent": 0.9, "fantastic": 0.9,
	"incredible": 0.9, "outstanding": 0.9, "perfect": 0.9, "superb": 0.9,
	"wonderful": 0.9, "phenomenal": 0.9, "exceptional": 0.9,

	// Positive
	"beautiful": 0.7, "delicious": 0.8, "delightful": 0.7, "enjoyable": 0.6,
	"excited": 0.6, "fabulous": 0.8, "favorite": 0.7, "fresh": 0.5,
	"friendly": 0.7, "fun": 0.7, "good": 0.5, "great": 0.7, "happy": 0.6,
	"helpful": 0.6, "impressive": 0.6, "lovely": 0.7, "loved": 0.8,
	"love": 0.7, "nice": 0.5, "pleasant": 0.6, "recommend": 0.6,
	"recommended": 0.6, "tasty": 0.7, "welcoming": 0.6, "best": 0.8,
	"clean": 0.5, "cozy": 0.5, "charming": 0.6, "attentive": 0.6,
	"affordable": 0.4, "generous": 0.5, "authentic": 0.5, "vibrant": 0.5,
	"lively": 0.5, "relaxing": 0.5, "comfortable": 0.5, "gem": 0.7,
	"worth": 0.4, "quick": 0.3, "fast": 0.3, "polite": 0.5, "warm": 0.4,
	"spacious": 0.4, "stunning": 0.8, "enjoyed": 0.6, "like": 0.3,
	"liked": 0.4, "solid": 0.3, "reasonable": 0.3, "pretty": 0.3,

	// Negative
	"bad": -0.6, "bland": -0.5, "boring": -0.5, "broken": -0.5,
	"cold": -0.3, "crowded": -0.3, "dirty": -0.7, "disappointed": -0.7,
	"disappointing": -0.7, "expensive": -0.4, "greasy": -0.4,
	"loud": -0.3, "mediocre": -0.5, "messy": -0.4, "noisy": -0.4,
	"overpriced": -0.6, "poor": -0.6, "rude": -0.8, "slow": -0.4,
	"stale": -0.6, "uncomfortable": -0.5, "unfriendly": -0.7,
	"waited": -0.3, "waiting": -0.3, "worse": -0.7, "wrong": -0.5,
	"meh": -0.4, "average": -0.2, "underwhelming": -0.5,
	"overcooked": -0.5, "undercooked": -0.6, "smelly": -0.6,
	"cramped": -0.4, "sketchy": -0.5, "ignored": -0.6,

	// Strongly negative
	"awful": -0.9, "disgusting": -0.9, "horrible": -0.9, "terrible": -0.9,
	"worst": -0.9, "filthy": -0.9, "inedible": -0.9, "unacceptable": -0.8,
	"avoid": -0.7, "never": -0.3, "hate": -0.8, "hated": -0.8,
	"nightmare": -0.8, "scam": -0.8,
}

// negators flip the polarity of a lexicon hit when they appear within
// the negation window immediately before it.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nor": {},
	"hardly": {}, "barely": {}, "without": {},
	"dont": {}, "doesnt": {}, "didnt": {}, "isnt": {}, "wasnt": {},
	"arent": {}, "werent": {}, "wont": {}, "cant": {}, "couldnt": {},
	"wouldnt": {}, "shouldnt": {},
}

// isNegator reports whether the token negates following sentiment.
func isNegator(token string) bool {
	_, ok := negators[token]
	return ok
}
