// Package report builds corpus-level statistics from annotated posts.
package report

import (
	"errors"
	"math"
	"sort"

	"github.com/spacesedan/tidewatch/internal/models"
)

// ErrNoData marks an aggregation over an empty corpus. It is a normal
// outcome callers must branch on, not a pipeline failure.
var ErrNoData = errors.New("no posts to aggregate")

const topKeywordLimit = 15

// Aggregate computes the summary report for a finished batch. The
// input is read in order; every tie-break (top keywords, notable
// posts) resolves to the earliest record, so identical input always
// produces an identical report.
func Aggregate(posts []models.AnnotatedPost) (*models.Report, error) {
	if len(posts) == 0 {
		return nil, ErrNoData
	}

	summary := buildSummary(posts)
	byCategory := buildCategoryStats(posts)
	topKeywords := buildTopKeywords(posts)
	notable := buildNotable(posts)

	return &models.Report{
		Summary:     summary,
		ByCategory:  byCategory,
		TopKeywords: topKeywords,
		Notable:     notable,
	}, nil
}

func buildSummary(posts []models.AnnotatedPost) models.ReportSummary {
	distribution := emptyDistribution()
	var scoreSum float64
	var totals models.EngagementTotal

	for _, p := range posts {
		distribution[p.SentimentLabel]++
		scoreSum += p.SentimentScore
		totals.Likes += p.Likes
		totals.Retweets += p.Retweets
		totals.Replies += p.Replies
	}

	return models.ReportSummary{
		TotalPosts:            len(posts),
		SentimentDistribution: distribution,
		AvgSentimentScore:     round3(scoreSum / float64(len(posts))),
		TotalEngagement:       totals,
	}
}

func buildCategoryStats(posts []models.AnnotatedPost) map[string]models.CategoryStats {
	grouped := make(map[string][]models.AnnotatedPost)
	for _, p := range posts {
		grouped[p.HazardCategory] = append(grouped[p.HazardCategory], p)
	}

	stats := make(map[string]models.CategoryStats, len(grouped))
	for category, group := range grouped {
		distribution := emptyDistribution()
		var scoreSum float64
		var likes, retweets, replies int

		for _, p := range group {
			distribution[p.SentimentLabel]++
			scoreSum += p.SentimentScore
			likes += p.Likes
			retweets += p.Retweets
			replies += p.Replies
		}

		n := float64(len(group))
		stats[category] = models.CategoryStats{
			TotalPosts:            len(group),
			SentimentDistribution: distribution,
			AvgSentimentScore:     round3(scoreSum / n),
			AvgEngagement: models.EngagementAvg{
				Likes:    round1(float64(likes) / n),
				Retweets: round1(float64(retweets) / n),
				Replies:  round1(float64(replies) / n),
			},
		}
	}

	return stats
}

// buildTopKeywords counts keyword mentions across the corpus and keeps
// the 15 most frequent. The sort is stable over first-encounter order,
// so equally frequent keywords rank by where they first appeared.
func buildTopKeywords(posts []models.AnnotatedPost) []models.KeywordCount {
	counts := make(map[string]int)
	order := []string{}

	for _, p := range posts {
		for _, kw := range p.MatchedKeywords {
			if counts[kw] == 0 {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}

	ranked := make([]models.KeywordCount, 0, len(order))
	for _, kw := range order {
		ranked = append(ranked, models.KeywordCount{Keyword: kw, Count: counts[kw]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topKeywordLimit {
		ranked = ranked[:topKeywordLimit]
	}
	return ranked
}

// buildNotable selects the sentiment extremes and the most engaging
// post. Strict comparisons keep the first record on ties.
func buildNotable(posts []models.AnnotatedPost) models.NotablePosts {
	mostNegative := posts[0]
	mostPositive := posts[0]
	mostEngaging := posts[0]

	for _, p := range posts[1:] {
		if p.SentimentScore < mostNegative.SentimentScore {
			mostNegative = p
		}
		if p.SentimentScore > mostPositive.SentimentScore {
			mostPositive = p
		}
		if p.Likes+p.Retweets > mostEngaging.Likes+mostEngaging.Retweets {
			mostEngaging = p
		}
	}

	return models.NotablePosts{
		MostNegative: toNotable(mostNegative),
		MostPositive: toNotable(mostPositive),
		MostEngaging: toNotable(mostEngaging),
	}
}

func toNotable(p models.AnnotatedPost) models.NotablePost {
	return models.NotablePost{
		Content:        p.Content,
		Handle:         p.Handle,
		HazardCategory: p.HazardCategory,
		SentimentScore: p.SentimentScore,
		Likes:          p.Likes,
		Retweets:       p.Retweets,
	}
}

func emptyDistribution() map[string]int {
	return map[string]int{
		models.LabelPositive: 0,
		models.LabelNegative: 0,
		models.LabelNeutral:  0,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
