package classify

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/spacesedan/tidewatch/internal/models"
	"github.com/spacesedan/tidewatch/internal/observability"
	"github.com/spacesedan/tidewatch/internal/sentiment"
)

// Mode controls what happens to posts that match no vocabulary term.
type Mode int

const (
	// MatchedOnly drops posts without keyword hits, the policy of the
	// live collection path where unmatched content is just noise.
	MatchedOnly Mode = iota
	// KeepAll annotates every post; zero-match posts get the unknown
	// category. Used by the demo corpus and for offline re-analysis.
	KeepAll
)

// Classifier combines keyword matching, hazard categorization and
// sentiment scoring into one pass over a raw post.
type Classifier struct {
	vocab  []string
	scorer *sentiment.Scorer
	mode   Mode
}

func NewClassifier(vocab []string, scorer *sentiment.Scorer, mode Mode) *Classifier {
	return &Classifier{vocab: vocab, scorer: scorer, mode: mode}
}

// Classify annotates one raw post. The second return is false when the
// post was skipped under the current mode; classification itself never
// fails, a malformed record is dropped rather than fabricated.
func (c *Classifier) Classify(raw models.RawPost) (models.AnnotatedPost, bool) {
	if raw.Content == "" && c.mode == MatchedOnly {
		observability.PostsSkipped.WithLabelValues("empty_content").Inc()
		return models.AnnotatedPost{}, false
	}

	matched := FindMatches(raw.Content, c.vocab)
	if len(matched) == 0 && c.mode == MatchedOnly {
		observability.PostsSkipped.WithLabelValues("no_keywords").Inc()
		return models.AnnotatedPost{}, false
	}

	result := c.scorer.Score(raw.Content)
	category := Categorize(matched)

	observability.PostsClassified.WithLabelValues(category).Inc()

	return models.AnnotatedPost{
		RawPost:         sanitize(raw),
		MatchedKeywords: matched,
		HazardCategory:  category,
		SentimentScore:  result.Score,
		SentimentLabel:  result.Label,
		Confidence:      result.Confidence,
	}, true
}

// sanitize applies the defaulting rules for loosely collected records:
// engagement counts are never negative.
func sanitize(raw models.RawPost) models.RawPost {
	if raw.Likes < 0 {
		raw.Likes = 0
	}
	if raw.Retweets < 0 {
		raw.Retweets = 0
	}
	if raw.Replies < 0 {
		raw.Replies = 0
	}
	return raw
}

// Dedupe drops posts whose content hash was already seen, keeping the
// first occurrence. Input order is otherwise preserved.
func Dedupe(posts []models.RawPost) []models.RawPost {
	seen := make(map[string]struct{}, len(posts))
	unique := make([]models.RawPost, 0, len(posts))

	for _, post := range posts {
		hash := contentHash(post.Content)
		if _, ok := seen[hash]; ok {
			observability.DuplicatesDropped.Inc()
			slog.Debug("[Classifier] Dropping duplicate post",
				slog.String("post_id", post.PostID))
			continue
		}
		seen[hash] = struct{}{}
		unique = append(unique, post)
	}

	return unique
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
