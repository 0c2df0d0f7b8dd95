package sentiment

import (
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/tidewatch/internal/models"
	"github.com/spacesedan/tidewatch/internal/observability"
)

// Word lists that bias the base polarity toward disaster context.
// Presence counts, not frequency: each word contributes at most once.
var (
	disasterNegative = []string{
		"disaster", "devastation", "destroyed", "catastrophic", "emergency",
		"urgent", "crisis", "collapse", "dying", "death", "evacuation",
	}
	disasterPositive = []string{
		"restored", "recovery", "saved", "protection", "resilient",
		"amazing", "incredible", "hope", "success", "working",
	}
)

const (
	thresholdPositive = 0.15
	thresholdNegative = -0.15
)

// Result is one scored text: polarity in [-1, 1], a label derived from
// the thresholds above, and a confidence in [0, 1].
type Result struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Scorer computes sentiment with VADER plus an ocean-hazard lexicon
// adjustment. Each Scorer owns its memoization cache; the cache is
// mutex-guarded so a Scorer can be shared by concurrent workers.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer

	mu    sync.Mutex
	cache map[string]Result
}

func NewScorer() *Scorer {
	return &Scorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
		cache:    make(map[string]Result),
	}
}

// fallbackResult is returned whenever the underlying analyzer fails.
// It is a fixed triple, bypassing lexicon adjustment and the cache, so
// a transient failure never leaves a tainted memoized entry behind.
var fallbackResult = Result{Score: -0.2, Label: models.LabelNegative, Confidence: 0.6}

// Score analyzes a text and returns its sentiment triple. Results are
// memoized on the lowercased, trimmed text, so repeated content (and
// case/whitespace variants of it) hits the cache. Never fails: if the
// underlying analyzer panics on malformed input, the fixed fallback
// triple is returned instead.
func (s *Scorer) Score(text string) Result {
	key := strings.ToLower(strings.TrimSpace(text))

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		observability.SentimentCacheHits.Inc()
		return cached
	}
	s.mu.Unlock()

	polarity, ok := s.basePolarity(text)
	if !ok {
		return fallbackResult
	}

	var posHits, negHits int
	for _, word := range disasterNegative {
		if strings.Contains(key, word) {
			negHits++
		}
	}
	for _, word := range disasterPositive {
		if strings.Contains(key, word) {
			posHits++
		}
	}

	polarity += float64(posHits)*0.2 - float64(negHits)*0.3
	polarity = clamp(polarity)

	var label string
	switch {
	case polarity > thresholdPositive:
		label = models.LabelPositive
	case polarity < thresholdNegative:
		label = models.LabelNegative
	default:
		label = models.LabelNeutral
	}

	confidence := abs(polarity) + 0.2
	if confidence > 1.0 {
		confidence = 1.0
	}

	result := Result{Score: polarity, Label: label, Confidence: confidence}

	s.mu.Lock()
	s.cache[key] = result
	s.mu.Unlock()

	return result
}

// CacheSize reports how many distinct texts have been scored.
func (s *Scorer) CacheSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// basePolarity runs VADER over the cleaned text. VADER itself does not
// return errors, so failure shows up as a panic; recover and report it
// so the caller can fall back rather than abort a batch.
func (s *Scorer) basePolarity(text string) (score float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[SentimentScorer] analyzer failed, using fallback result",
				slog.Any("panic", r))
			ok = false
		}
	}()

	plain := ConvertMarkdownToText(text)
	return s.analyzer.PolarityScores(plain).Compound, true
}

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
