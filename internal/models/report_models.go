package models

// Report is the corpus-level summary built from a finished batch of
// annotated posts. It is derived data, built once, never fed back
// into the pipeline.
type Report struct {
	Summary     ReportSummary            `json:"summary"`
	ByCategory  map[string]CategoryStats `json:"by_hazard_category"`
	TopKeywords []KeywordCount           `json:"top_keywords"`
	Notable     NotablePosts             `json:"notable_posts"`
}

type ReportSummary struct {
	TotalPosts            int             `json:"total_posts"`
	SentimentDistribution map[string]int  `json:"sentiment_distribution"`
	AvgSentimentScore     float64         `json:"avg_sentiment_score"`
	TotalEngagement       EngagementTotal `json:"total_engagement"`
}

type EngagementTotal struct {
	Likes    int `json:"likes"`
	Retweets int `json:"retweets"`
	Replies  int `json:"replies"`
}

type CategoryStats struct {
	TotalPosts            int            `json:"total_posts"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	AvgSentimentScore     float64        `json:"avg_sentiment_score"`
	AvgEngagement         EngagementAvg  `json:"avg_engagement"`
}

type EngagementAvg struct {
	Likes    float64 `json:"likes"`
	Retweets float64 `json:"retweets"`
	Replies  float64 `json:"replies"`
}

// KeywordCount keeps top-keyword output ordered; a JSON object would
// lose the frequency ranking.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

type NotablePosts struct {
	MostNegative NotablePost `json:"most_negative"`
	MostPositive NotablePost `json:"most_positive"`
	MostEngaging NotablePost `json:"most_engaging"`
}

type NotablePost struct {
	Content        string  `json:"content"`
	Handle         string  `json:"handle"`
	HazardCategory string  `json:"hazard_category"`
	SentimentScore float64 `json:"sentiment_score"`
	Likes          int     `json:"likes"`
	Retweets       int     `json:"retweets"`
}
