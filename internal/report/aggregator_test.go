package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tidewatch/internal/classify"
	"github.com/spacesedan/tidewatch/internal/models"
	"github.com/spacesedan/tidewatch/internal/sentiment"
	"github.com/spacesedan/tidewatch/internal/vocabulary"
)

func annotated(id, category, label string, score float64, likes, retweets int, keywords ...string) models.AnnotatedPost {
	return models.AnnotatedPost{
		RawPost: models.RawPost{
			PostID:   id,
			Handle:   id,
			Content:  "content of " + id,
			Likes:    likes,
			Retweets: retweets,
			Replies:  1,
		},
		MatchedKeywords: keywords,
		HazardCategory:  category,
		SentimentScore:  score,
		SentimentLabel:  label,
		Confidence:      0.5,
	}
}

func TestAggregate(t *testing.T) {
	posts := []models.AnnotatedPost{
		annotated("a", "tsunami", models.LabelNegative, -0.8, 100, 50, "tsunami"),
		annotated("b", "storms", models.LabelNeutral, 0.0, 20, 10, "hurricane", "storm surge"),
		annotated("c", "storms", models.LabelPositive, 0.5, 30, 5, "hurricane"),
		annotated("d", "climate", models.LabelPositive, 0.9, 10, 0, "coral bleaching"),
	}

	rep, err := Aggregate(posts)
	require.NoError(t, err)

	t.Run("summary totals", func(t *testing.T) {
		assert.Equal(t, 4, rep.Summary.TotalPosts)
		assert.Equal(t, 160, rep.Summary.TotalEngagement.Likes)
		assert.Equal(t, 65, rep.Summary.TotalEngagement.Retweets)
		assert.Equal(t, 4, rep.Summary.TotalEngagement.Replies)
		assert.Equal(t, 0.15, rep.Summary.AvgSentimentScore)
	})

	t.Run("sentiment distribution sums to total and lists all labels", func(t *testing.T) {
		dist := rep.Summary.SentimentDistribution
		require.Len(t, dist, 3)

		total := 0
		for _, label := range []string{models.LabelPositive, models.LabelNegative, models.LabelNeutral} {
			count, ok := dist[label]
			assert.True(t, ok, label)
			total += count
		}
		assert.Equal(t, rep.Summary.TotalPosts, total)
	})

	t.Run("per-category counts sum to total", func(t *testing.T) {
		total := 0
		for _, stats := range rep.ByCategory {
			total += stats.TotalPosts

			distTotal := 0
			for _, count := range stats.SentimentDistribution {
				distTotal += count
			}
			assert.Equal(t, stats.TotalPosts, distTotal)
		}
		assert.Equal(t, rep.Summary.TotalPosts, total)
	})

	t.Run("category stats rounded", func(t *testing.T) {
		storms := rep.ByCategory["storms"]
		assert.Equal(t, 2, storms.TotalPosts)
		assert.Equal(t, 0.25, storms.AvgSentimentScore)
		assert.Equal(t, 25.0, storms.AvgEngagement.Likes)
		assert.Equal(t, 7.5, storms.AvgEngagement.Retweets)
		assert.Equal(t, 1.0, storms.AvgEngagement.Replies)
	})

	t.Run("top keywords ranked by frequency, ties by first encounter", func(t *testing.T) {
		require.NotEmpty(t, rep.TopKeywords)
		assert.Equal(t, models.KeywordCount{Keyword: "hurricane", Count: 2}, rep.TopKeywords[0])
		// tsunami, storm surge and coral bleaching all count 1; tsunami came first
		assert.Equal(t, "tsunami", rep.TopKeywords[1].Keyword)
		assert.Equal(t, "storm surge", rep.TopKeywords[2].Keyword)
		assert.Equal(t, "coral bleaching", rep.TopKeywords[3].Keyword)
	})

	t.Run("notable picks", func(t *testing.T) {
		assert.Equal(t, "a", rep.Notable.MostNegative.Handle)
		assert.Equal(t, "d", rep.Notable.MostPositive.Handle)
		assert.Equal(t, "a", rep.Notable.MostEngaging.Handle)
	})
}

func TestAggregateEmptyInput(t *testing.T) {
	rep, err := Aggregate(nil)
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, ErrNoData)

	rep, err = Aggregate([]models.AnnotatedPost{})
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAggregateIdempotent(t *testing.T) {
	posts := []models.AnnotatedPost{
		annotated("a", "tsunami", models.LabelNegative, -0.8, 100, 50, "tsunami"),
		annotated("b", "flooding", models.LabelNeutral, 0.1, 20, 10, "flood"),
		annotated("c", "climate", models.LabelPositive, 0.6, 30, 5, "coral bleaching", "ocean warming"),
	}

	first, err := Aggregate(posts)
	require.NoError(t, err)
	second, err := Aggregate(posts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregateTieBreaks(t *testing.T) {
	posts := []models.AnnotatedPost{
		annotated("first", "storms", models.LabelNeutral, 0.0, 50, 50, "hurricane"),
		annotated("second", "storms", models.LabelNeutral, 0.0, 50, 50, "cyclone"),
	}

	rep, err := Aggregate(posts)
	require.NoError(t, err)

	// equal scores and equal engagement resolve to the earliest record
	assert.Equal(t, "first", rep.Notable.MostNegative.Handle)
	assert.Equal(t, "first", rep.Notable.MostPositive.Handle)
	assert.Equal(t, "first", rep.Notable.MostEngaging.Handle)
}

func TestTopKeywordLimit(t *testing.T) {
	keywords := []string{
		"ocean hazard", "tsunami", "storm surge", "hurricane", "cyclone", "typhoon",
		"flood", "coastal erosion", "sea level rise", "marine pollution", "oil spill",
		"red tide", "whirlpool", "rip current", "underwater earthquake",
		"coral bleaching", "marine heatwave", "ocean warming",
	}

	posts := make([]models.AnnotatedPost, 0, len(keywords))
	for i, kw := range keywords {
		posts = append(posts, annotated(kw, "general", models.LabelNeutral, 0, i, 0, kw))
	}

	rep, err := Aggregate(posts)
	require.NoError(t, err)
	assert.Len(t, rep.TopKeywords, 15)
}

// End-to-end scenario: one clearly negative tsunami post and one
// clearly hopeful climate post through the full classification and
// aggregation path.
func TestAggregateScenario(t *testing.T) {
	classifier := classify.NewClassifier(vocabulary.All(), sentiment.NewScorer(), classify.KeepAll)

	negative, ok := classifier.Classify(models.RawPost{
		Handle:   "stormdesk",
		Content:  "Devastating tsunami disaster: entire villages destroyed, death toll rising, emergency evacuation underway",
		Likes:    500,
		Retweets: 300,
	})
	require.True(t, ok)

	positive, ok := classifier.Classify(models.RawPost{
		Handle:  "reefnews",
		Content: "Coral bleaching recovery is amazing: restored reefs, resilient corals, hope and success for our ocean",
		Likes:   50,
	})
	require.True(t, ok)

	assert.Equal(t, "tsunami", negative.HazardCategory)
	assert.Equal(t, models.LabelNegative, negative.SentimentLabel)
	assert.Equal(t, "climate", positive.HazardCategory)
	assert.Equal(t, models.LabelPositive, positive.SentimentLabel)

	rep, err := Aggregate([]models.AnnotatedPost{negative, positive})
	require.NoError(t, err)

	assert.Equal(t, "stormdesk", rep.Notable.MostNegative.Handle)
	assert.Equal(t, "reefnews", rep.Notable.MostPositive.Handle)
	assert.Equal(t, "stormdesk", rep.Notable.MostEngaging.Handle)
}
