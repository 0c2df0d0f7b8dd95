package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/spacesedan/tidewatch/config"
	"github.com/spacesedan/tidewatch/internal/classify"
	"github.com/spacesedan/tidewatch/internal/collect"
	"github.com/spacesedan/tidewatch/internal/corpus"
	"github.com/spacesedan/tidewatch/internal/export"
	"github.com/spacesedan/tidewatch/internal/logging"
	"github.com/spacesedan/tidewatch/internal/models"
	"github.com/spacesedan/tidewatch/internal/report"
	"github.com/spacesedan/tidewatch/internal/sentiment"
	"github.com/spacesedan/tidewatch/internal/vocabulary"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()
	scorer := sentiment.NewScorer()
	rng := rand.New(rand.NewSource(clock.Now().UnixNano()))
	demo := corpus.NewGenerator(scorer, clock, rng)

	posts, usedDemo := collectPosts(ctx)

	var annotated []models.AnnotatedPost
	if usedDemo {
		// demo content carries hand-labeled keywords and categories;
		// the labeled path keeps terms that are not literal substrings
		// of the content, which rediscovery would drop
		annotated = demo.Annotated()
	} else {
		mode := classify.MatchedOnly
		if os.Getenv("CLASSIFY_MODE") == "keep_all" {
			mode = classify.KeepAll
		}

		posts = classify.Dedupe(posts)

		classifier := classify.NewClassifier(vocabulary.All(), scorer, mode)
		var err error
		annotated, err = classifier.ClassifyBatch(ctx, posts, envInt("WORKERS", 4))
		if err != nil {
			slog.Error("[Main] Classification aborted",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slog.Info("[Main] Classification finished",
		slog.Int("annotated", len(annotated)),
		slog.Int("cached_texts", scorer.CacheSize()))

	rep, err := report.Aggregate(annotated)
	if errors.Is(err, report.ErrNoData) {
		slog.Warn("[Main] Nothing to report, no posts were annotated")
		return
	}
	if err != nil {
		slog.Error("[Main] Aggregation failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	displayReport(rep)

	writer := export.NewWriter(
		envOrDefault("OUTPUT_DIR", "."),
		envOrDefault("OUTPUT_PREFIX", "ocean_hazard"),
		clock,
	)
	if _, err := writer.Save(annotated, rep); err != nil {
		slog.Error("[Main] Failed to save results",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// collectPosts runs the configured collector and reports whether the
// demo corpus should substitute for it — a plain conditional, so a
// thin live run degrades gracefully instead of failing the whole job.
func collectPosts(ctx context.Context) ([]models.RawPost, bool) {
	minCollected := envInt("MIN_COLLECTED", 5)

	var posts []models.RawPost
	if path := os.Getenv("INPUT_FILE"); path != "" {
		collected, err := collect.FileCollector{Path: path}.Collect(ctx)
		if err != nil {
			slog.Warn("[Main] Collection failed, falling back to demo corpus",
				slog.String("error", err.Error()))
		}
		posts = collected
	}

	if len(posts) >= minCollected {
		return posts, false
	}

	slog.Info("[Main] Using demo corpus",
		slog.Int("collected", len(posts)),
		slog.Int("min_required", minCollected))
	return nil, true
}

func displayReport(rep *models.Report) {
	summary := rep.Summary

	fmt.Println("\n================ OCEAN HAZARD SENTIMENT REPORT ================")
	fmt.Printf("Total posts:       %d\n", summary.TotalPosts)
	fmt.Printf("Average sentiment: %.3f\n", summary.AvgSentimentScore)
	fmt.Printf("Total likes:       %d\n", summary.TotalEngagement.Likes)
	fmt.Printf("Total retweets:    %d\n", summary.TotalEngagement.Retweets)
	fmt.Printf("Total replies:     %d\n", summary.TotalEngagement.Replies)

	fmt.Println("\nSentiment distribution:")
	for _, label := range []string{models.LabelPositive, models.LabelNegative, models.LabelNeutral} {
		count := summary.SentimentDistribution[label]
		pct := float64(count) / float64(summary.TotalPosts) * 100
		fmt.Printf("  %-8s %d (%.1f%%)\n", label, count, pct)
	}

	fmt.Println("\nHazard categories:")
	for _, category := range categoriesByCount(rep.ByCategory) {
		stats := rep.ByCategory[category]
		fmt.Printf("  %-10s %d posts (avg sentiment %.2f)\n",
			category, stats.TotalPosts, stats.AvgSentimentScore)
	}

	fmt.Println("\nTop keywords:")
	for i, kc := range rep.TopKeywords {
		if i >= 10 {
			break
		}
		fmt.Printf("  %-22s %d mentions\n", kc.Keyword, kc.Count)
	}

	fmt.Println("\nNotable posts:")
	fmt.Printf("  most negative (%.2f): @%s\n    %s\n",
		rep.Notable.MostNegative.SentimentScore, rep.Notable.MostNegative.Handle,
		truncate(rep.Notable.MostNegative.Content, 100))
	fmt.Printf("  most positive (%.2f): @%s\n    %s\n",
		rep.Notable.MostPositive.SentimentScore, rep.Notable.MostPositive.Handle,
		truncate(rep.Notable.MostPositive.Content, 100))
	fmt.Printf("  most engaging (%d likes, %d retweets): @%s\n    %s\n",
		rep.Notable.MostEngaging.Likes, rep.Notable.MostEngaging.Retweets,
		rep.Notable.MostEngaging.Handle,
		truncate(rep.Notable.MostEngaging.Content, 100))
	fmt.Println("===============================================================")
}

func categoriesByCount(stats map[string]models.CategoryStats) []string {
	categories := make([]string, 0, len(stats))
	for category := range stats {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if stats[categories[i]].TotalPosts != stats[categories[j]].TotalPosts {
			return stats[categories[i]].TotalPosts > stats[categories[j]].TotalPosts
		}
		return categories[i] < categories[j]
	})
	return categories
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
