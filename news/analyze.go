package news

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Analysis bundles the heuristic checks run over one article.
type Analysis struct {
	ContentLength int          `json:"content_length"`
	WordCount     int          `json:"word_count"`
	Title         string       `json:"title"`
	KeyPoints     []string     `json:"key_points,omitempty"`
	Sentiment     *Sentiment   `json:"sentiment,omitempty"`
	Credibility   *Credibility `json:"credibility,omitempty"`
	Bias          *Bias        `json:"bias,omitempty"`
}

type Sentiment struct {
	Sentiment          string  `json:"sentiment"`
	Confidence         float64 `json:"confidence"`
	PositiveIndicators int     `json:"positive_indicators"`
	NegativeIndicators int     `json:"negative_indicators"`
	NeutralIndicators  int     `json:"neutral_indicators"`
	SentimentDensity   float64 `json:"sentiment_density"`
}

type Credibility struct {
	Score          float64  `json:"credibility_score"`
	Indicators     []string `json:"indicators"`
	Assessment     string   `json:"assessment"`
	Recommendation string   `json:"recommendation"`
}

type Bias struct {
	Score      float64  `json:"bias_score"`
	Indicators []string `json:"bias_indicators"`
	Assessment string   `json:"bias_assessment"`
}

// AnalysisKind selects which checks Analyze runs.
type AnalysisKind string

const (
	AnalyzeAll         AnalysisKind = "all"
	AnalyzeSummary     AnalysisKind = "summary"
	AnalyzeSentiment   AnalysisKind = "sentiment"
	AnalyzeCredibility AnalysisKind = "credibility"
	AnalyzeBias        AnalysisKind = "bias"
)

// Analyze runs keyword-count heuristics over article content. The checks are
// deterministic: the same content and title always score the same.
func Analyze(content, title string, kind AnalysisKind) Analysis {
	if kind == "" {
		kind = AnalyzeAll
	}

	result := Analysis{
		ContentLength: len(content),
		WordCount:     len(strings.Fields(content)),
		Title:         title,
	}

	if kind == AnalyzeSummary || kind == AnalyzeAll {
		result.KeyPoints = ExtractKeyPoints(content)
	}
	if kind == AnalyzeSentiment || kind == AnalyzeAll {
		s := AnalyzeSentimentOf(content)
		result.Sentiment = &s
	}
	if kind == AnalyzeCredibility || kind == AnalyzeAll {
		c := AssessCredibility(content, title)
		result.Credibility = &c
	}
	if kind == AnalyzeBias || kind == AnalyzeAll {
		b := AnalyzeBiasOf(content, title)
		result.Bias = &b
	}
	return result
}

var keyIndicators = []string{
	"according to", "reported that", "announced", "revealed", "discovered",
	"found that", "concluded", "stated that", "research shows", "study found",
	"data indicates", "experts say", "officials confirmed", "breaking news",
	"investigation reveals", "sources indicate", "poll shows", "survey results",
}

var statPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\d+\s*percent`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+\s*million`),
	regexp.MustCompile(`\d+\s*billion`),
	regexp.MustCompile(`\d+\s*thousand`),
	regexp.MustCompile(`increased by \d+`),
	regexp.MustCompile(`decreased by \d+`),
	regexp.MustCompile(`rose \d+%`),
}

// ExtractKeyPoints scores the leading sentences by indicator phrases,
// statistical mentions, position and length, and returns the top five.
func ExtractKeyPoints(content string) []string {
	if content == "" {
		return nil
	}

	sentences := strings.Split(content, ".")
	if len(sentences) > 30 {
		sentences = sentences[:30]
	}

	type scored struct {
		text  string
		score float64
		index int
	}
	var candidates []scored

	for i, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 20 {
			continue
		}
		lower := strings.ToLower(sentence)

		score := 0.0
		for _, indicator := range keyIndicators {
			if strings.Contains(lower, indicator) {
				score += 2
			}
		}
		for _, re := range statPatterns {
			if re.MatchString(sentence) {
				score++
			}
		}
		switch {
		case i < 5:
			score++
		case i < 10:
			score += 0.5
		}
		if len(sentence) > 50 && len(sentence) < 200 {
			score += 0.5
		}

		if score > 0 {
			candidates = append(candidates, scored{text: sentence, score: score, index: i})
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	// Present points in article order.
	sort.Slice(candidates, func(a, b int) bool {
		return candidates[a].index < candidates[b].index
	})

	points := make([]string, 0, len(candidates))
	for _, c := range candidates {
		points = append(points, c.text+".")
	}
	return points
}

var positiveWords = []string{
	"good", "great", "excellent", "positive", "success", "achievement", "breakthrough",
	"improvement", "progress", "beneficial", "advantage", "victory", "triumph",
	"outstanding", "remarkable", "impressive", "effective", "efficient", "innovative",
	"promising", "encouraging", "optimistic", "thriving", "flourishing",
}

var negativeWords = []string{
	"bad", "terrible", "negative", "failure", "problem", "issue", "crisis",
	"decline", "harmful", "disadvantage", "concern", "worry", "alarming",
	"devastating", "tragic", "catastrophic", "disappointing", "concerning",
	"troubling", "disturbing", "challenging", "difficult", "struggling",
}

var neutralWords = []string{
	"stated", "reported", "according", "official", "announced", "confirmed",
	"data", "statistics", "research", "study", "analysis", "findings",
}

// AnalyzeSentimentOf classifies the content's tone from weighted keyword hits.
func AnalyzeSentimentOf(content string) Sentiment {
	if content == "" {
		return Sentiment{Sentiment: "neutral"}
	}

	lower := strings.ToLower(content)
	countHits := func(words []string, weight int) int {
		total := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				total += weight
			}
		}
		return total
	}

	positive := countHits(positiveWords, 2)
	negative := countHits(negativeWords, 2)
	neutral := countHits(neutralWords, 1)

	totalSentimentWords := positive + negative + neutral
	totalWords := len(strings.Fields(content))

	sentiment := "neutral"
	confidence := 0.5
	if totalSentimentWords > 0 {
		positiveRatio := float64(positive) / float64(totalSentimentWords)
		negativeRatio := float64(negative) / float64(totalSentimentWords)
		switch {
		case positiveRatio > negativeRatio+0.1:
			sentiment = "positive"
			confidence = min(positiveRatio*0.8+0.2, 0.9)
		case negativeRatio > positiveRatio+0.1:
			sentiment = "negative"
			confidence = min(negativeRatio*0.8+0.2, 0.9)
		default:
			confidence = 0.6
		}
	}

	density := 0.0
	if totalWords > 0 {
		density = round2(float64(totalSentimentWords) / float64(totalWords) * 100)
	}

	return Sentiment{
		Sentiment:          sentiment,
		Confidence:         round2(confidence),
		PositiveIndicators: positive,
		NegativeIndicators: negative,
		NeutralIndicators:  neutral,
		SentimentDensity:   density,
	}
}

type credibilitySignal struct {
	name     string
	keywords []string
	weight   float64
}

var positiveCredibilitySignals = []credibilitySignal{
	{"direct quotes", []string{`"`, "said", "stated", "commented", "told reporters"}, 0.15},
	{"official sources", []string{"official", "spokesperson", "representative", "ministry", "department"}, 0.2},
	{"expert sources", []string{"expert", "professor", "researcher", "analyst", "scientist", "doctor"}, 0.2},
	{"data evidence", []string{"data shows", "statistics", "percentage", "survey found", "poll indicates"}, 0.15},
	{"specific details", []string{"on monday", "tuesday", "wednesday", "thursday", "friday", "january", "february"}, 0.1},
	{"verification", []string{"confirmed", "verified", "authenticated", "corroborated"}, 0.1},
	{"citations", []string{"according to", "source:", "study by", "research from", "report by"}, 0.1},
}

var negativeCredibilitySignals = []credibilitySignal{
	{"uncertainty", []string{"rumor", "allegedly", "unconfirmed", "speculation", "claims"}, 0.2},
	{"anonymous sources", []string{"anonymous source", "unnamed source", "insider claims"}, 0.15},
	{"sensational language", []string{"shocking", "unbelievable", "you wont believe"}, 0.1},
	{"clickbait titles", []string{"this will", "you need to", "doctors hate"}, 0.1},
}

// AssessCredibility scores the text against positive and negative credibility
// signals, starting from a neutral 0.5.
func AssessCredibility(content, title string) Credibility {
	if content == "" {
		return Credibility{Assessment: assessCredibilityScore(0), Recommendation: recommendForScore(0)}
	}

	combined := strings.ToLower(title) + " " + strings.ToLower(content)
	score := 0.5
	var indicators []string

	for _, sig := range positiveCredibilitySignals {
		found := matchingKeywords(combined, sig.keywords, 3)
		if len(found) > 0 {
			score += sig.weight
			indicators = append(indicators, fmt.Sprintf("+ %s: %s", sig.name, strings.Join(found, ", ")))
		}
	}
	for _, sig := range negativeCredibilitySignals {
		found := matchingKeywords(combined, sig.keywords, 2)
		if len(found) > 0 {
			score -= sig.weight
			indicators = append(indicators, fmt.Sprintf("- %s: %s", sig.name, strings.Join(found, ", ")))
		}
	}

	if len(strings.Fields(content)) < 100 {
		score -= 0.1
		indicators = append(indicators, "- very short article content")
	}
	lowerTitle := strings.ToLower(title)
	for _, word := range []string{"breaking", "urgent", "alert"} {
		if strings.Contains(lowerTitle, word) {
			score += 0.05
			indicators = append(indicators, "+ breaking news indicators")
			break
		}
	}

	score = clamp01(score)
	return Credibility{
		Score:          round2(score),
		Indicators:     indicators,
		Assessment:     assessCredibilityScore(score),
		Recommendation: recommendForScore(score),
	}
}

var emotionalWords = []string{
	"outrageous", "ridiculous", "absurd", "shocking", "devastating",
	"brilliant", "amazing", "terrible", "horrible", "wonderful",
}

var politicalTerms = []string{
	"liberal", "conservative", "left-wing", "right-wing", "progressive", "traditional",
}

var balanceIndicators = []string{
	"however", "on the other hand", "alternatively", "critics argue",
	"supporters claim", "both sides", "different perspectives",
}

// AnalyzeBiasOf scores potential bias from emotional language, political
// terminology and the presence (or absence) of balanced-reporting markers.
func AnalyzeBiasOf(content, title string) Bias {
	if content == "" {
		return Bias{Score: 0.5, Assessment: assessBiasScore(0.5)}
	}

	combined := strings.ToLower(title) + " " + strings.ToLower(content)
	score := 0.5
	var indicators []string

	emotionalCount := countOccurring(combined, emotionalWords)
	if emotionalCount > 3 {
		score += 0.2
		indicators = append(indicators, fmt.Sprintf("High emotional language usage (%d instances)", emotionalCount))
	}

	politicalCount := countOccurring(combined, politicalTerms)
	if politicalCount > 2 {
		indicators = append(indicators, fmt.Sprintf("Political terminology present (%d instances)", politicalCount))
	}

	balanceCount := countOccurring(combined, balanceIndicators)
	if balanceCount > 0 {
		score -= 0.1
		indicators = append(indicators, fmt.Sprintf("Balanced reporting indicators present (%d)", balanceCount))
	} else {
		score += 0.1
		indicators = append(indicators, "Limited perspective balance")
	}

	score = clamp01(score)
	return Bias{
		Score:      round2(score),
		Indicators: indicators,
		Assessment: assessBiasScore(score),
	}
}

func matchingKeywords(text string, keywords []string, limit int) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
			if len(found) == limit {
				break
			}
		}
	}
	return found
}

func countOccurring(text string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			count++
		}
	}
	return count
}

func assessCredibilityScore(score float64) string {
	switch {
	case score >= 0.8:
		return "Very High Credibility"
	case score >= 0.65:
		return "High Credibility"
	case score >= 0.5:
		return "Moderate Credibility"
	case score >= 0.35:
		return "Low Credibility"
	default:
		return "Very Low Credibility"
	}
}

func recommendForScore(score float64) string {
	switch {
	case score >= 0.8:
		return "Highly reliable source with strong credibility indicators"
	case score >= 0.65:
		return "Generally reliable with good credibility markers"
	case score >= 0.5:
		return "Moderately reliable - verify claims with additional sources"
	case score >= 0.35:
		return "Low reliability - cross-reference with multiple trusted sources"
	default:
		return "Very low reliability - treat with significant skepticism"
	}
}

func assessBiasScore(score float64) string {
	switch {
	case score <= 0.3:
		return "Low bias - appears balanced and objective"
	case score <= 0.5:
		return "Moderate bias - some subjective elements present"
	case score <= 0.7:
		return "High bias - significant subjective language or perspective"
	default:
		return "Very high bias - heavily subjective or one-sided reporting"
	}
}

func clamp01(v float64) float64 {
	return max(0.0, min(1.0, v))
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
