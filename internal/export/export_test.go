package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tidewatch/internal/models"
)

func testPosts() []models.AnnotatedPost {
	return []models.AnnotatedPost{
		{
			RawPost: models.RawPost{
				Username: "FloodWatch", Handle: "floodwatch",
				Content: "flood warning, with \"quotes\" and, commas",
				Likes:   12, Retweets: 3, Replies: 1,
				PostID: "p1", Source: "scraper",
			},
			MatchedKeywords: []string{"flood", "coastal flooding"},
			HazardCategory:  "flooding",
			SentimentScore:  -0.42,
			SentimentLabel:  models.LabelNegative,
			Confidence:      0.62,
		},
		{
			RawPost: models.RawPost{
				Username: "ReefNews", Handle: "reefnews",
				Content: "reefs recovering nicely",
				PostID:  "p2", Source: "scraper", Verified: true,
			},
			MatchedKeywords: []string{},
			HazardCategory:  "unknown",
			SentimentScore:  0.3,
			SentimentLabel:  models.LabelPositive,
			Confidence:      0.5,
		},
	}
}

func testReport() *models.Report {
	return &models.Report{
		Summary: models.ReportSummary{
			TotalPosts: 2,
			SentimentDistribution: map[string]int{
				models.LabelPositive: 1, models.LabelNegative: 1, models.LabelNeutral: 0,
			},
			AvgSentimentScore: -0.06,
		},
		ByCategory:  map[string]models.CategoryStats{},
		TopKeywords: []models.KeywordCount{{Keyword: "flood", Count: 1}},
	}
}

func TestWriterSave(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	writer := NewWriter(dir, "ocean_hazard", clock)

	results, err := writer.Save(testPosts(), testReport())
	require.NoError(t, err)

	t.Run("filenames carry the clock timestamp", func(t *testing.T) {
		assert.Contains(t, results.PostsJSON, "ocean_hazard_posts_20260314_092653.json")
		assert.Contains(t, results.AnalysisCSV, "ocean_hazard_analysis_20260314_092653.csv")
		assert.Contains(t, results.ReportJSON, "ocean_hazard_report_20260314_092653.json")
	})

	t.Run("posts json round-trips", func(t *testing.T) {
		data, err := os.ReadFile(results.PostsJSON)
		require.NoError(t, err)

		var decoded []models.AnnotatedPost
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, testPosts(), decoded)
	})

	t.Run("csv has header plus one row per post", func(t *testing.T) {
		f, err := os.Open(results.AnalysisCSV)
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, csvHeader, rows[0])
		assert.Equal(t, "flood; coastal flooding", rows[1][10])
		assert.Equal(t, "flooding", rows[1][11])
		assert.Equal(t, "-0.42", rows[1][12])
		assert.Equal(t, "", rows[2][10])
		assert.Equal(t, "true", rows[2][8])
	})

	t.Run("report json round-trips", func(t *testing.T) {
		data, err := os.ReadFile(results.ReportJSON)
		require.NoError(t, err)

		var decoded models.Report
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, testReport().Summary, decoded.Summary)
		assert.Equal(t, testReport().TopKeywords, decoded.TopKeywords)
	})

	t.Run("creates missing output directory", func(t *testing.T) {
		nested := NewWriter(dir+"/a/b", "x", clock)
		_, err := nested.Save(testPosts(), testReport())
		assert.NoError(t, err)
	})
}
