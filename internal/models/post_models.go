package models

// RawPost is a social media post as handed over by a collector,
// before any classification has run. Engagement counts are already
// parsed to integers; missing fields default to their zero value.
type RawPost struct {
	Username  string `json:"username"`
	Handle    string `json:"handle"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Retweets  int    `json:"retweets"`
	Replies   int    `json:"replies"`
	PostID    string `json:"post_id"`
	Verified  bool   `json:"verified"`
	Source    string `json:"source"`
}

// AnnotatedPost is a RawPost after keyword matching, hazard
// categorization and sentiment scoring. Treated as immutable once built.
type AnnotatedPost struct {
	RawPost
	MatchedKeywords []string `json:"matched_keywords"`
	HazardCategory  string   `json:"hazard_category"`
	SentimentScore  float64  `json:"sentiment_score"`
	SentimentLabel  string   `json:"sentiment_label"`
	Confidence      float64  `json:"confidence"`
}

// Sentiment labels produced by the scorer.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)
